package approval

type CreateApprovalRequest struct {
	RequestType string `json:"request_type" binding:"required"`
	RequestedBy string `json:"requested_by" binding:"required"`
	ApprovedBy  string `json:"approved_by"`
	Status      string `json:"status" binding:"required"`
}

type GetApprovalsFilterRequest struct {
	RequestType string `form:"request_type"`
	Status      string `form:"status"`
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
}

type ApprovalResponse struct {
	ID          int64  `json:"id"`
	RequestType string `json:"request_type"`
	RequestedBy string `json:"requested_by"`
	ApprovedBy  string `json:"approved_by"`
	Status      string `json:"status"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}
