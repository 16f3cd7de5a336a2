package validators

import (
	"fmt"
	"strings"

	"github.com/puravida-ops/casitas-api/internal/models"
)

// RequiredFields is the fixed validation order for a new revision.
// Validation stops at the first empty field; the order is part of the
// contract, not an accident.
var RequiredFields = []string{
	"casita",
	"quien_revisa",
	"caja_fuerte",
	"puertas_ventanas",
	"chromecast",
	"binoculares",
	"trapo_binoculares",
	"speaker",
	"usb_speaker",
	"controles_tv",
	"secadora",
	"accesorios_secadora",
	"steamer",
	"bolsa_vapor",
	"plancha_cabello",
	"bulto",
	"sombrero",
	"bolso_yute",
	"camas_ordenadas",
	"cola_caballo",
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateNewRevision checks the required fields in order and reports
// only the first missing one. hasEvidencia01 is true when the first
// evidence slot has either a pending file or an already-set URL.
func ValidateNewRevision(r *models.Revision, hasEvidencia01 bool) error {
	for _, field := range RequiredFields {
		if r.FieldValue(field) == "" {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("El campo %q es obligatorio.", HumanizeField(field)),
			}
		}
	}

	if models.EvidenceRequired(r.CajaFuerte) && !hasEvidencia01 {
		return &ValidationError{
			Field:   "evidencia_01",
			Message: `El campo "Evidencia 1" es obligatorio cuando se selecciona Check in, Upsell, o Back to Back.`,
		}
	}

	return nil
}

// HumanizeField turns a column name into its display name:
// underscores become spaces and each word is capitalized
// ("bulto" -> "Bulto", "usb_speaker" -> "Usb Speaker").
func HumanizeField(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
