package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{150, "$150.00"},
		{614.25, "$614.25"},
		{6500, "$6,500.00"},
		{9447.75, "$9,447.75"},
		{1234567.5, "$1,234,567.50"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatCurrency(c.in))
	}
}

func TestFormatDateOr(t *testing.T) {
	assert.Equal(t, "1/15/2024", formatDateOr("2024-01-15", "x"))
	assert.Equal(t, "2/15/2024", formatDateOr("2024-02-15", "x"))
	assert.Equal(t, "12/3/2025", formatDateOr("2025-12-03", "x"))
	assert.Equal(t, "1/15/2024", formatDateOr("", "1/15/2024"), "empty field uses the placeholder")
	assert.Equal(t, "soon", formatDateOr("soon", "x"), "unparsable input passes through")
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, rgb{26, 115, 232}, parseHexColor("#1a73e8", defaultBrand))
	assert.Equal(t, rgb{255, 0, 0}, parseHexColor("ff0000", defaultBrand))
	assert.Equal(t, defaultBrand, parseHexColor("", defaultBrand))
	assert.Equal(t, defaultBrand, parseHexColor("#zzz", defaultBrand))
	assert.Equal(t, defaultBrand, parseHexColor("#12345", defaultBrand))
}

func TestDeriveFilename(t *testing.T) {
	assert.Equal(t, "invoice-INV-7.pdf", deriveFilename("INV-7"))
	assert.Equal(t, "invoice-INV-2024-001.pdf", deriveFilename(""))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "1", formatQuantity(1))
	assert.Equal(t, "10", formatQuantity(10))
	assert.Equal(t, "2.5", formatQuantity(2.5))
}
