package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEven(t *testing.T) {
	tests := []struct {
		name      string
		total     decimal.Decimal
		n         int
		expected  []string
		expectErr bool
	}{
		{name: "divides evenly", total: d("1.50"), n: 3, expected: []string{"0.50", "0.50", "0.50"}},
		{name: "remainder cent goes to the first share", total: d("1.00"), n: 3, expected: []string{"0.34", "0.33", "0.33"}},
		{name: "two remainder cents go to the first two shares", total: d("1.70"), n: 3, expected: []string{"0.57", "0.57", "0.56"}},
		{name: "single recipient takes all", total: d("1.70"), n: 1, expected: []string{"1.70"}},
		{name: "fewer cents than recipients", total: d("0.02"), n: 3, expected: []string{"0.01", "0.01", "0"}},
		{name: "sub-cent total is rounded first", total: d("1.005"), n: 2, expected: []string{"0.51", "0.50"}},
		{name: "no recipients", total: d("1.00"), n: 0, expectErr: true},
		{name: "negative total", total: d("-1.00"), n: 2, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := SplitEven(tt.total, tt.n, 2)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, shares, len(tt.expected))

			sum := decimal.Zero
			for i, share := range shares {
				assert.True(t, d(tt.expected[i]).Equal(share), "share %d: expected %s, got %s", i, tt.expected[i], share)
				sum = sum.Add(share)
			}
			assert.True(t, tt.total.Round(2).Equal(sum), "shares must sum to the total")
		})
	}
}
