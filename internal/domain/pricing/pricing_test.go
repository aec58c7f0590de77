package pricing

import (
	"math"
	"testing"

	"propostas_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	lines := []Line{{MonthlyFee: 100, SetupFee: 0}, {MonthlyFee: 0, SetupFee: 50}}

	t.Run("no discount", func(t *testing.T) {
		got := Compute(lines, Discount{})
		assert.Equal(t, Totals{Monthly: 100, Setup: 50, Subtotal: 150, DiscountAmount: 0, Final: 150}, got)
	})

	t.Run("absolute discount", func(t *testing.T) {
		got := Compute(lines, Amount(20))
		assert.Equal(t, 20.0, got.DiscountAmount)
		assert.Equal(t, 130.0, got.Final)
	})

	t.Run("percentage discount applies to monthly plus setup", func(t *testing.T) {
		got := Compute(lines, Percent(10))
		assert.Equal(t, 15.0, got.DiscountAmount)
		assert.Equal(t, 135.0, got.Final)
	})

	t.Run("empty lines", func(t *testing.T) {
		got := Compute(nil, Percent(50))
		assert.Equal(t, Totals{}, got)
	})

	t.Run("discount above subtotal is not clamped", func(t *testing.T) {
		got := Compute(lines, Amount(200))
		assert.Equal(t, -50.0, got.Final)
		assert.True(t, got.Negative())
	})

	t.Run("cents do not drift", func(t *testing.T) {
		got := Compute([]Line{{MonthlyFee: 0.1}, {MonthlyFee: 0.2}}, Discount{})
		assert.Equal(t, 0.3, got.Monthly)
	})
}

func TestCompute_FinalIdentity(t *testing.T) {
	lines := []Line{{MonthlyFee: 1999.9, SetupFee: 450}, {MonthlyFee: 320.55, SetupFee: 0}, {MonthlyFee: 0, SetupFee: 1200}}
	for _, d := range []Discount{Amount(0), Amount(99.99), Percent(0), Percent(7.5), Percent(33), Percent(100)} {
		got := Compute(lines, d)
		assert.InDelta(t, got.Monthly+got.Setup-got.DiscountAmount, got.Final, 1e-9, "discount %+v", d)
	}
}

func TestCompute_PercentageMonotonic(t *testing.T) {
	lines := []Line{{MonthlyFee: 733.33, SetupFee: 120.01}}
	prev := -1.0
	for p := 0.0; p <= 100; p += 0.5 {
		got := Compute(lines, Percent(p))
		require.GreaterOrEqual(t, got.DiscountAmount, prev, "p=%v", p)
		prev = got.DiscountAmount
	}
	assert.Equal(t, 853.34, prev)
}

func TestDiscount_Absolute(t *testing.T) {
	assert.Equal(t, 30.0, Percent(20).Absolute(150))
	assert.Equal(t, 12.5, Amount(12.5).Absolute(150))
	assert.Equal(t, 0.0, Discount{}.Absolute(150))
}

func TestDiscount_Validate(t *testing.T) {
	assert.NoError(t, Percent(100).Validate())
	assert.NoError(t, Amount(5000).Validate())
	assert.ErrorIs(t, Percent(101).Validate(), ErrPercentOutOfRange)
	assert.ErrorIs(t, Amount(-1).Validate(), ErrNegativeAmount)
	assert.ErrorIs(t, Amount(math.NaN()).Validate(), ErrInvalidAmount)
	assert.ErrorIs(t, Percent(math.Inf(1)).Validate(), ErrInvalidAmount)
}

func TestCheckLines(t *testing.T) {
	assert.NoError(t, CheckLines([]Line{{MonthlyFee: 1, SetupFee: 0}}))
	assert.ErrorIs(t, CheckLines([]Line{{MonthlyFee: math.NaN()}}), ErrInvalidAmount)
	assert.ErrorIs(t, CheckLines([]Line{{SetupFee: -3}}), ErrNegativeAmount)
}

func TestLinesFromItems(t *testing.T) {
	items := []entities.CartItem{
		{ServicePlan: entities.ServicePlan{ID: "p1", MonthlyFee: 100}},
		{ServicePlan: entities.ServicePlan{ID: "p2", SetupFee: 50}},
	}
	assert.Equal(t, []Line{{MonthlyFee: 100}, {SetupFee: 50}}, LinesFromItems(items))
}

func TestFormatBRL(t *testing.T) {
	cases := map[float64]string{
		0:        "R$ 0,00",
		150:      "R$ 150,00",
		130.5:    "R$ 130,50",
		1234.567: "R$ 1234,57",
		-20:      "R$ -20,00",
		1e6:      "R$ 1000000,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatBRL(in), "amount %v", in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "10%", FormatPercent(10))
	assert.Equal(t, "12,5%", FormatPercent(12.5))
}
