// Package privacy decides which contact fields leave the process and how
// masked values round-trip back through a save.
package privacy

import (
	"strings"

	"github.com/bubtcse/retakewizard/internal/models"
	"github.com/bubtcse/retakewizard/internal/sanitize"
)

// Lookup responses never carry real contact details. The form re-displays
// these placeholders and sends them back verbatim unless the student types
// a new value; both pass submission validation so a masked round-trip is a
// no-op save. The phone placeholder is exactly 11 digits for that reason.
const (
	SentinelEmail = "hidden@example.com"
	SentinelPhone = "00000000000"
)

// MaskStudent replaces contact fields with the sentinels. The email
// sentinel is shown even when no email is stored, so a lookup never
// reveals whether one exists.
func MaskStudent(s *models.StudentSubmission) *models.StudentSubmission {
	if s == nil {
		return nil
	}
	masked := *s
	masked.Phone = SentinelPhone
	masked.Email = SentinelEmail
	return &masked
}

// ResolveUpdate turns a raw form payload into a field-level update,
// translating the sentinels into "unchanged" intents and a blanked email
// into a removal. Course codes always replace the stored set in full.
func ResolveUpdate(in models.StudentInput) models.StudentUpdate {
	intake := in.Intake
	update := models.StudentUpdate{
		Name:        models.SetField(sanitize.Clean(in.Name)),
		Section:     models.SetField(sanitize.Section(in.Section)),
		Intake:      &intake,
		CourseCodes: in.CourseCodes,
	}

	switch {
	case strings.TrimSpace(in.Email) == "":
		update.Email = models.ClearField()
	case in.Email == SentinelEmail:
		// round-tripped mask, keep whatever is stored
	default:
		update.Email = models.SetField(sanitize.Clean(in.Email))
	}

	if in.Phone != SentinelPhone {
		update.Phone = models.SetField(sanitize.Clean(in.Phone))
	}

	return update
}
