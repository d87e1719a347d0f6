package employee

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	JoinDate   string `json:"join_date" binding:"required"`
	Department string `json:"department" binding:"required"`
	Status     string `json:"status" binding:"required"`
}

type GetEmployeesFilterRequest struct {
	Department string `form:"department"`
	Status     string `form:"status"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type EmployeeResponse struct {
	ID             int64  `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	JoinDate       string `json:"join_date"`
	Department     string `json:"department"`
	Status         string `json:"status"`
	CreatedBy      string `json:"created_by"`
	CreatedAt      string `json:"created_at"`
}
