package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrinter(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "Folders shared successfully: 2 folders, 1 recipients.\n"},
		{"es", "Los grupos de carpetas se compartieron exitosamente: 2 carpetas, 1 destinatarios.\n"},
		{"not a tag!", "Folders shared successfully: 2 folders, 1 recipients.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, newPrinter(tt.lang).Sprintf(msgShareSucceeded, 2, 1))
		})
	}
}

func TestNewPrinter_SpanishFailure(t *testing.T) {
	got := newPrinter("es").Sprintf(msgShareFailed, `{"error_summary":"x"}`)
	assert.Equal(t, "Error al compartir los grupos de carpetas: {\"error_summary\":\"x\"}\n", got)
}
