package payroll_test

import (
	"math"
	"testing"

	"go-hrdesk/internal/payroll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	t.Run("reference salary", func(t *testing.T) {
		b, err := payroll.Compute(10000)
		require.NoError(t, err)

		assert.InDelta(t, 1200, b.ProvidentFund, 1e-9)
		assert.InDelta(t, 325, b.InsuranceContribution, 1e-9)
		assert.InDelta(t, 8475, b.NetSalary, 1e-9)
		assert.Equal(t, 10000.0, b.BaseSalary)
	})

	t.Run("zero yields zeros", func(t *testing.T) {
		b, err := payroll.Compute(0)
		require.NoError(t, err)

		assert.Equal(t, payroll.Breakdown{}, b)
	})

	t.Run("components sum to base", func(t *testing.T) {
		for _, base := range []float64{0.01, 1, 999.99, 12345.67, 1e9} {
			b, err := payroll.Compute(base)
			require.NoError(t, err)

			assert.InDelta(t, base*payroll.ProvidentFundRate, b.ProvidentFund, 1e-9)
			assert.InDelta(t, base*payroll.InsuranceRate, b.InsuranceContribution, 1e-9)
			assert.InDelta(t, base, b.NetSalary+b.ProvidentFund+b.InsuranceContribution, 1e-6)
		}
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := payroll.Compute(-1)
		assert.ErrorIs(t, err, payroll.ErrNegativeBaseSalary)
	})

	t.Run("non finite rejected", func(t *testing.T) {
		_, err := payroll.Compute(math.NaN())
		assert.ErrorIs(t, err, payroll.ErrInvalidBaseSalary)

		_, err = payroll.Compute(math.Inf(1))
		assert.ErrorIs(t, err, payroll.ErrInvalidBaseSalary)
	})
}
