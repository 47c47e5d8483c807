package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPage(t *testing.T) {
	tests := []struct {
		name       string
		in         PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"cero usa valores por defecto", PageRequest{}, 20, 0},
		{"limit negativo usa el defecto", PageRequest{Limit: -5, Offset: 10}, 20, 10},
		{"offset negativo se normaliza", PageRequest{Limit: 50, Offset: -1}, 50, 0},
		{"limit dentro del tope se respeta", PageRequest{Limit: 100, Offset: 200}, 100, 200},
		{"limit gigante se acota al tope", PageRequest{Limit: 100000}, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.DefaultPage()
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}
