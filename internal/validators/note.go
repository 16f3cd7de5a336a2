package validators

import (
	"fmt"

	"github.com/puravida-ops/casitas-api/internal/models"
)

// ValidateNewNote mirrors the note form: casita, usuario and nota are
// all required; the evidence photo is optional.
func ValidateNewNote(n *models.Note) error {
	fields := []struct {
		name  string
		value string
	}{
		{"casita", n.Casita},
		{"usuario", n.Usuario},
		{"nota", n.Nota},
	}
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("El campo %q es obligatorio.", HumanizeField(f.name)),
			}
		}
	}
	return nil
}
