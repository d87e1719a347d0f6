package exit

type CreateExitRequest struct {
	Employee string `json:"employee" binding:"required"`
	ExitDate string `json:"exit_date" binding:"required"`
	Reason   string `json:"reason"`
}

type GetExitsFilterRequest struct {
	Employee string `form:"employee"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ExitResponse struct {
	ID        int64  `json:"id"`
	Employee  string `json:"employee"`
	ExitDate  string `json:"exit_date"`
	Reason    string `json:"reason"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}
