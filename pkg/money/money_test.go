package money_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"integer", "1000", "1000", false},
		{"dot decimal", "10.50", "10.5", false},
		{"comma decimal", "10,50", "10.5", false},
		{"surrounding spaces", "  42 ", "42", false},
		{"negative kept", "-5", "-5", false},
		{"zero", "0", "0", false},
		{"empty", "", "", true},
		{"blank", "   ", "", true},
		{"letters", "abc", "", true},
		{"two commas", "1,000,00", "", true},
		{"scientific within range", "1e3", "1000", false},
		{"cents", "0.01", "0.01", false},
		{"sub-cent", "0.001", "", true},
		{"tiny exponent", "1e-400000000", "", true},
		{"huge exponent", "1e400000000", "", true},
		{"exponent past 10^18", "1e19", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := money.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestMustParse(t *testing.T) {
	t.Parallel()
	assert.True(t, money.MustParse("500").Equal(decimal.NewFromInt(500)))
	assert.Panics(t, func() { money.MustParse("five hundred") })
}

func TestFormat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "R$ 1000.00", money.Format("", decimal.NewFromInt(1000)))
	assert.Equal(t, "US$ 10.50", money.Format("US$", decimal.RequireFromString("10.5")))
	assert.Equal(t, "R$ 0.00", money.Format(money.DefaultSymbol, decimal.Zero))
}
