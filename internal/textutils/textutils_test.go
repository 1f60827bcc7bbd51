package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_ComposesAccents(t *testing.T) {
	decomposed := "Cre\u0301dito y De\u0301bito"
	assert.Equal(t, "Crédito y Débito", NormalizeText(decomposed))
}

func TestNormalizeText_FoldsSpaces(t *testing.T) {
	assert.Equal(t, "$ 1.000,00\nx\ny", NormalizeText("$\u00a01.000,00\r\nx\fy"))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "only blanks", in: "\n   \n\t\n", want: []string{}},
		{
			name: "pages joined with newline",
			in:   "  15 ene 2024 Débito  \n\nCompra\n" + "Página 2\n",
			want: []string{"15 ene 2024 Débito", "Compra", "Página 2"},
		},
		{
			name: "crlf and form feed",
			in:   "a\r\nb\fc",
			want: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.in))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "Compra en tienda", CollapseWhitespace("  Compra \t en   tienda "))
	assert.Equal(t, "", CollapseWhitespace(" \n "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Débi", Truncate("Débito", 4))
	assert.Equal(t, "abc", Truncate("abc", 50))
	assert.Equal(t, "", Truncate("abc", 0))
}
