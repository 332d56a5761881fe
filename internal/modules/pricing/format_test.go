package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "inklusive"},
		{900, "+900,00 €"},
		{1200, "+1.200,00 €"},
		{12.5, "+12,50 €"},
		{-350, "-350,00 €"},
		{-1234.56, "-1.234,56 €"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPrice(tc.in), "FormatPrice(%v)", tc.in)
	}
}

func TestFormatTotal(t *testing.T) {
	assert.Equal(t, "2.100,00 €", FormatTotal(2100))
	assert.Equal(t, "0,00 €", FormatTotal(0))
	assert.Equal(t, "-350,00 €", FormatTotal(-350))
}
