package models

import "time"

// Revision is one inspection of a casita. Checklist values are stored
// as the form submits them: counts like "01".."04", "Si"/"No" flags,
// or free text.
type Revision struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Casita      string `gorm:"size:10;not null;index" json:"casita"`
	QuienRevisa string `gorm:"size:100;not null" json:"quien_revisa"`

	CajaFuerte      string `gorm:"size:30;not null" json:"caja_fuerte"`
	PuertasVentanas string `gorm:"size:255" json:"puertas_ventanas"`

	Chromecast         string `gorm:"size:30" json:"chromecast"`
	Binoculares        string `gorm:"size:30" json:"binoculares"`
	TrapoBinoculares   string `gorm:"size:30" json:"trapo_binoculares"`
	Speaker            string `gorm:"size:30" json:"speaker"`
	USBSpeaker         string `gorm:"size:30" json:"usb_speaker"`
	ControlesTV        string `gorm:"size:30" json:"controles_tv"`
	Secadora           string `gorm:"size:30" json:"secadora"`
	AccesoriosSecadora string `gorm:"size:30" json:"accesorios_secadora"`
	Steamer            string `gorm:"size:30" json:"steamer"`
	BolsaVapor         string `gorm:"size:30" json:"bolsa_vapor"`
	PlanchaCabello     string `gorm:"size:30" json:"plancha_cabello"`
	Bulto              string `gorm:"size:30" json:"bulto"`
	Sombrero           string `gorm:"size:30" json:"sombrero"`
	BolsoYute          string `gorm:"size:30" json:"bolso_yute"`
	CamasOrdenadas     string `gorm:"size:30" json:"camas_ordenadas"`
	ColaCaballo        string `gorm:"size:30" json:"cola_caballo"`

	Notas string `gorm:"type:text" json:"notas"`

	Evidencia01 string `gorm:"size:500" json:"evidencia_01"`
	Evidencia02 string `gorm:"size:500" json:"evidencia_02"`
	Evidencia03 string `gorm:"size:500" json:"evidencia_03"`

	FechaEdicion *time.Time `json:"fecha_edicion"`
	QuienEdito   string     `gorm:"size:100" json:"quien_edito"`
}

// AuditableFields is the fixed set of fields the edit recorder
// compares, in a stable order. Identity, creation timestamp and edit
// metadata are deliberately absent.
var AuditableFields = []string{
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
	"notas",
	"evidencia_01",
	"evidencia_02",
	"evidencia_03",
}

// FieldValue returns the value of an auditable field by its column
// name. Unknown names return "".
func (r *Revision) FieldValue(name string) string {
	switch name {
	case "casita":
		return r.Casita
	case "quien_revisa":
		return r.QuienRevisa
	case "caja_fuerte":
		return r.CajaFuerte
	case "puertas_ventanas":
		return r.PuertasVentanas
	case "chromecast":
		return r.Chromecast
	case "binoculares":
		return r.Binoculares
	case "trapo_binoculares":
		return r.TrapoBinoculares
	case "speaker":
		return r.Speaker
	case "usb_speaker":
		return r.USBSpeaker
	case "controles_tv":
		return r.ControlesTV
	case "secadora":
		return r.Secadora
	case "accesorios_secadora":
		return r.AccesoriosSecadora
	case "steamer":
		return r.Steamer
	case "bolsa_vapor":
		return r.BolsaVapor
	case "plancha_cabello":
		return r.PlanchaCabello
	case "bulto":
		return r.Bulto
	case "sombrero":
		return r.Sombrero
	case "bolso_yute":
		return r.BolsoYute
	case "camas_ordenadas":
		return r.CamasOrdenadas
	case "cola_caballo":
		return r.ColaCaballo
	case "notas":
		return r.Notas
	case "evidencia_01":
		return r.Evidencia01
	case "evidencia_02":
		return r.Evidencia02
	case "evidencia_03":
		return r.Evidencia03
	}
	return ""
}

// SetFieldValue assigns an auditable field by its column name.
// Unknown names are ignored.
func (r *Revision) SetFieldValue(name, value string) {
	switch name {
	case "casita":
		r.Casita = value
	case "quien_revisa":
		r.QuienRevisa = value
	case "caja_fuerte":
		r.CajaFuerte = value
	case "puertas_ventanas":
		r.PuertasVentanas = value
	case "chromecast":
		r.Chromecast = value
	case "binoculares":
		r.Binoculares = value
	case "trapo_binoculares":
		r.TrapoBinoculares = value
	case "speaker":
		r.Speaker = value
	case "usb_speaker":
		r.USBSpeaker = value
	case "controles_tv":
		r.ControlesTV = value
	case "secadora":
		r.Secadora = value
	case "accesorios_secadora":
		r.AccesoriosSecadora = value
	case "steamer":
		r.Steamer = value
	case "bolsa_vapor":
		r.BolsaVapor = value
	case "plancha_cabello":
		r.PlanchaCabello = value
	case "bulto":
		r.Bulto = value
	case "sombrero":
		r.Sombrero = value
	case "bolso_yute":
		r.BolsoYute = value
	case "camas_ordenadas":
		r.CamasOrdenadas = value
	case "cola_caballo":
		r.ColaCaballo = value
	case "notas":
		r.Notas = value
	case "evidencia_01":
		r.Evidencia01 = value
	case "evidencia_02":
		r.Evidencia02 = value
	case "evidencia_03":
		r.Evidencia03 = value
	}
}

// CajaFuerteOptions are the accepted safe-status values.
var CajaFuerteOptions = []string{
	"Si", "No", "Check in", "Check out", "Upsell",
	"Guardar Upsell", "Back to Back", "Show Room",
}

// EvidenceRequired reports whether the safe-status makes the first
// evidence photo mandatory.
func EvidenceRequired(cajaFuerte string) bool {
	switch cajaFuerte {
	case "Check in", "Upsell", "Back to Back":
		return true
	}
	return false
}
