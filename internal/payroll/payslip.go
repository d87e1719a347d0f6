package payroll

import (
	"fmt"
	"strconv"

	"go-hrdesk/internal/report"
	"go-hrdesk/internal/shared/storage"
)

func payslipLines(p Payroll) []string {
	return []string{
		"Payslip",
		fmt.Sprintf("Employee: %s", p.Employee),
		fmt.Sprintf("Month: %s", p.Month),
		fmt.Sprintf("Base Salary: %.2f", p.BaseSalary),
		fmt.Sprintf("Provident Fund (12%%): %.2f", p.PF),
		fmt.Sprintf("Insurance (3.25%%): %.2f", p.ESIC),
		fmt.Sprintf("Net Salary: %.2f", p.TotalSalary),
	}
}

// PayslipFileName is payslip_<employee>_<month>.pdf.
func PayslipFileName(p Payroll) string {
	return fmt.Sprintf("payslip_%s_%s.pdf", storage.SafeFileName(p.Employee), storage.SafeFileName(p.Month))
}

// ArchiveFileName is <id>_payslip_<employee>_<month>.pdf. Several payroll
// runs may exist for one employee and month, so the id keeps them apart.
func ArchiveFileName(p Payroll) string {
	return strconv.FormatInt(p.ID, 10) + "_" + PayslipFileName(p)
}

func renderPayslip(p Payroll) (Payslip, error) {
	content, err := report.RenderPDF(payslipLines(p))
	if err != nil {
		return Payslip{}, err
	}
	return Payslip{FileName: PayslipFileName(p), Content: content}, nil
}
