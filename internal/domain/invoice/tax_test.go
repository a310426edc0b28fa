package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "100", want: "100"},
		{name: "fractional", input: "19.99", want: "19.99"},
		{name: "negative", input: "-5.5", want: "-5.5"},
		{name: "surrounding whitespace", input: " 20 ", want: "20"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "non numeric", input: "abc", wantErr: true},
		{name: "trailing garbage", input: "12.5x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := parseDecimal(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestLineTax(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice string
		vatRate   string
		quantity  int
		want      string
	}{
		{name: "whole amounts", unitPrice: "100", vatRate: "20", quantity: 2, want: "40.00"},
		{name: "single unit", unitPrice: "50", vatRate: "10", quantity: 1, want: "5.00"},
		{name: "zero rate", unitPrice: "100", vatRate: "0", quantity: 3, want: "0.00"},
		{name: "fractional rate", unitPrice: "19.99", vatRate: "5.5", quantity: 3, want: "3.30"},
		{name: "rounding only at the end", unitPrice: "0.333", vatRate: "10", quantity: 3, want: "0.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := parseDecimal(tt.unitPrice)
			require.NoError(t, err)
			rate, err := parseDecimal(tt.vatRate)
			require.NoError(t, err)

			got := lineTax(price, rate, tt.quantity)
			assert.Equal(t, tt.want, formatAmount(got))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "pads to two places", input: "5", want: "5.00"},
		{name: "truncates nothing exact", input: "5.25", want: "5.25"},
		{name: "rounds down below half", input: "5.254", want: "5.25"},
		{name: "rounds half away from zero", input: "5.255", want: "5.26"},
		{name: "negative half away from zero", input: "-5.255", want: "-5.26"},
		{name: "zero", input: "0", want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, formatAmount(d))
		})
	}
}
