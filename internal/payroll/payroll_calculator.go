package payroll

import (
	"math"

	payrollerrors "go-hrdesk/internal/payroll/errors"
)

// Statutory deduction rates applied to the base salary.
const (
	ProvidentFundRate = 0.12
	InsuranceRate     = 0.0325
)

var (
	ErrNegativeBaseSalary = payrollerrors.ErrNegativeBaseSalary
	ErrInvalidBaseSalary  = payrollerrors.ErrInvalidBaseSalary
)

type Breakdown struct {
	BaseSalary            float64 `json:"base_salary"`
	ProvidentFund         float64 `json:"provident_fund"`
	InsuranceContribution float64 `json:"insurance_contribution"`
	NetSalary             float64 `json:"net_salary"`
}

// Compute derives the provident fund, insurance contribution and net pay for
// baseSalary. The three components sum to baseSalary within float rounding.
func Compute(baseSalary float64) (Breakdown, error) {
	if math.IsNaN(baseSalary) || math.IsInf(baseSalary, 0) {
		return Breakdown{}, ErrInvalidBaseSalary
	}
	if baseSalary < 0 {
		return Breakdown{}, ErrNegativeBaseSalary
	}

	pf := baseSalary * ProvidentFundRate
	insurance := baseSalary * InsuranceRate

	return Breakdown{
		BaseSalary:            baseSalary,
		ProvidentFund:         pf,
		InsuranceContribution: insurance,
		NetSalary:             baseSalary - (pf + insurance),
	}, nil
}
