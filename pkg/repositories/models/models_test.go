package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		scores map[string]int
		want   string
	}{
		{name: "single best", scores: map[string]int{"quentin": 4, "yann": 2}, want: "quentin"},
		{name: "tie", scores: map[string]int{"quentin": 4, "yann": 4, "mathurin": 1}, want: ""},
		{name: "nobody scored", scores: map[string]int{"quentin": 0, "yann": 0}, want: ""},
		{name: "empty", scores: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Winner(tt.scores))
		})
	}
}
