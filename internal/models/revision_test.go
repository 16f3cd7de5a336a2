package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldValueRoundTrip(t *testing.T) {
	var r Revision
	for i, name := range AuditableFields {
		want := string(rune('a' + i))
		r.SetFieldValue(name, want)
		assert.Equal(t, want, r.FieldValue(name), "field %s", name)
	}
}

func TestFieldValueUnknownName(t *testing.T) {
	var r Revision
	assert.Equal(t, "", r.FieldValue("no_such_field"))

	// Setting an unknown name is a no-op, not a panic.
	r.SetFieldValue("no_such_field", "x")
}

func TestEvidenceRequired(t *testing.T) {
	assert.True(t, EvidenceRequired("Check in"))
	assert.True(t, EvidenceRequired("Upsell"))
	assert.True(t, EvidenceRequired("Back to Back"))

	assert.False(t, EvidenceRequired("Si"))
	assert.False(t, EvidenceRequired("No"))
	assert.False(t, EvidenceRequired("Check out"))
	assert.False(t, EvidenceRequired("Guardar Upsell"))
	assert.False(t, EvidenceRequired(""))
}
