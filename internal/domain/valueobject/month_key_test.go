package valueobject

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestMonthKey(t *testing.T) {
	t.Run("MonthKeyFor formats as YYYY-MM", func(t *testing.T) {
		key := MonthKeyFor(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
		assert.Equal(t, "2026-08", key.String())
	})

	t.Run("Contains matches dates inside the month", func(t *testing.T) {
		key := MonthKey("2026-08")
		assert.True(t, key.Contains(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
		assert.True(t, key.Contains(time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)))
		assert.False(t, key.Contains(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("Valid accepts well-formed keys", func(t *testing.T) {
		assert.True(t, MonthKey("2026-08").Valid())
		assert.True(t, MonthKey("2026-12").Valid())
	})

	t.Run("Valid rejects malformed keys", func(t *testing.T) {
		assert.False(t, MonthKey("08-2026").Valid())
		assert.False(t, MonthKey("2026-13").Valid())
		assert.False(t, MonthKey("2026-8").Valid())
		assert.False(t, MonthKey("").Valid())
	})
}

func TestClampSavingsRate(t *testing.T) {
	t.Run("in-range rates pass through", func(t *testing.T) {
		rate := ClampSavingsRate(dec(15))
		assert.True(t, rate.Equal(dec(15)))
	})

	t.Run("negative rates clamp to zero", func(t *testing.T) {
		assert.True(t, ClampSavingsRate(dec(-10)).IsZero())
	})

	t.Run("rates above 100 clamp to 100", func(t *testing.T) {
		assert.True(t, ClampSavingsRate(dec(250)).Equal(dec(100)))
	})
}
