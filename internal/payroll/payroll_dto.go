package payroll

// BaseSalary is a pointer so an explicit 0 passes the required check.
type CreatePayrollRequest struct {
	Employee   string   `json:"employee" binding:"required"`
	Month      string   `json:"month" binding:"required"`
	BaseSalary *float64 `json:"base_salary" binding:"required"`
}

type PreviewPayrollRequest struct {
	BaseSalary *float64 `json:"base_salary" binding:"required"`
}

type GetPayrollsFilterRequest struct {
	Employee string `form:"employee"`
	Month    string `form:"month"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type PayrollResponse struct {
	ID                    int64   `json:"id"`
	Employee              string  `json:"employee"`
	Month                 string  `json:"month"`
	BaseSalary            float64 `json:"base_salary"`
	ProvidentFund         float64 `json:"provident_fund"`
	InsuranceContribution float64 `json:"insurance_contribution"`
	NetSalary             float64 `json:"net_salary"`
	CreatedBy             string  `json:"created_by"`
	PayslipPath           *string `json:"payslip_path,omitempty"`
	PayslipGeneratedAt    *string `json:"payslip_generated_at,omitempty"`
	CreatedAt             string  `json:"created_at"`
}

type Payslip struct {
	FileName string
	Content  []byte
}
