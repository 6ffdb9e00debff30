package nutrient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "single item",
			input: "Bílkoviny(1 g)",
			want:  []Entry{{Name: "Bílkoviny", Quantity: "1 g"}},
		},
		{
			name:  "decimal comma stays inside quantity",
			input: "Tuky(0,5 g), Bílkoviny(1 g)",
			want: []Entry{
				{Name: "Tuky", Quantity: "0,5 g"},
				{Name: "Bílkoviny", Quantity: "1 g"},
			},
		},
		{
			name:  "multi word names with decimal commas",
			input: "Bílkoviny(1 g), Tuky(0,5 g), Nasycené mastné kyseliny(0,1 g)",
			want: []Entry{
				{Name: "Bílkoviny", Quantity: "1 g"},
				{Name: "Tuky", Quantity: "0,5 g"},
				{Name: "Nasycené mastné kyseliny", Quantity: "0,1 g"},
			},
		},
		{
			name:  "bare name falls back to empty quantity",
			input: "JustAName",
			want:  []Entry{{Name: "JustAName", Quantity: ""}},
		},
		{
			name:  "bare name between proper items",
			input: "Tuky(0,5 g), JustAName, Sůl(0,01 g)",
			want: []Entry{
				{Name: "Tuky", Quantity: "0,5 g"},
				{Name: "JustAName", Quantity: ""},
				{Name: "Sůl", Quantity: "0,01 g"},
			},
		},
		{
			name:  "unclosed parenthesis falls back to full item",
			input: "Tuky(0,5 g",
			want:  []Entry{{Name: "Tuky(0,5 g", Quantity: ""}},
		},
		{
			name:  "empty quantity",
			input: "Vláknina()",
			want:  []Entry{{Name: "Vláknina", Quantity: ""}},
		},
		{
			name:  "whitespace around items and inside parts",
			input: "  Tuky ( 0,5 g ) ,  Sůl(0,01 g)  ",
			want: []Entry{
				{Name: "Tuky", Quantity: "0,5 g"},
				{Name: "Sůl", Quantity: "0,01 g"},
			},
		},
		{
			name:  "trailing comma",
			input: "Tuky(0,5 g),",
			want:  []Entry{{Name: "Tuky", Quantity: "0,5 g"}},
		},
		{
			name:  "trailing text after close paren is discarded",
			input: "Tuky(0,5 g) navíc, Sůl(0,01 g)",
			want: []Entry{
				{Name: "Tuky", Quantity: "0,5 g"},
				{Name: "Sůl", Quantity: "0,01 g"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only input",
			input: "   ",
			want:  nil,
		},
		{
			name:  "commas only",
			input: ",,,",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_OrderPreserved(t *testing.T) {
	input := "C(3), A(1), B(2), A(1)"
	got := Parse(input)
	require.Len(t, got, 4)

	names := make([]string, len(got))
	for i, e := range got {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"C", "A", "B", "A"}, names, "no sorting, no de-duplication")
}

func TestParse_Idempotent(t *testing.T) {
	input := "Bílkoviny(1 g), Tuky(0,5 g), JustAName"
	first := Parse(input)
	second := Parse(input)
	assert.Equal(t, first, second)
}
