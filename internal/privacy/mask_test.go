package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bubtcse/retakewizard/internal/models"
)

func TestMaskStudent(t *testing.T) {
	t.Run("replaces contact fields with sentinels", func(t *testing.T) {
		sub := &models.StudentSubmission{
			ID:          "20235103055",
			Name:        "Jane Doe",
			Intake:      50,
			Section:     "7",
			Phone:       "01712345678",
			Email:       "jane@student.bubt.edu.bd",
			CourseCodes: []string{"CSE101"},
		}

		masked := MaskStudent(sub)
		require.NotNil(t, masked)
		assert.Equal(t, SentinelPhone, masked.Phone)
		assert.Equal(t, SentinelEmail, masked.Email)
		assert.Equal(t, sub.ID, masked.ID)
		assert.Equal(t, sub.Name, masked.Name)
		assert.Equal(t, sub.CourseCodes, masked.CourseCodes)

		// original untouched
		assert.Equal(t, "01712345678", sub.Phone)
	})

	t.Run("sentinel email shown even with no stored email", func(t *testing.T) {
		masked := MaskStudent(&models.StudentSubmission{ID: "x", Phone: "01712345678"})
		require.NotNil(t, masked)
		assert.Equal(t, SentinelEmail, masked.Email)
	})

	t.Run("absent stays absent", func(t *testing.T) {
		assert.Nil(t, MaskStudent(nil))
	})
}

func TestResolveUpdate(t *testing.T) {
	base := models.StudentInput{
		ID:          "20235103055",
		Name:        " Jane  Doe ",
		Intake:      50,
		Section:     " 007",
		Phone:       " 01712 345678 ",
		Email:       "jane@student.bubt.edu.bd",
		CourseCodes: []string{"CSE101", "CSE102"},
	}

	t.Run("sanitizes set fields", func(t *testing.T) {
		update := ResolveUpdate(base)
		assert.Equal(t, models.SetField("Jane Doe"), update.Name)
		assert.Equal(t, models.SetField("7"), update.Section)
		assert.Equal(t, models.SetField("01712 345678"), update.Phone)
		assert.Equal(t, models.SetField("jane@student.bubt.edu.bd"), update.Email)
		require.NotNil(t, update.Intake)
		assert.Equal(t, 50, *update.Intake)
		assert.Equal(t, []string{"CSE101", "CSE102"}, update.CourseCodes)
	})

	t.Run("blank email means remove", func(t *testing.T) {
		in := base
		in.Email = "   "
		update := ResolveUpdate(in)
		assert.Equal(t, models.FieldClear, update.Email.Intent)
	})

	t.Run("sentinel email means unchanged", func(t *testing.T) {
		in := base
		in.Email = SentinelEmail
		update := ResolveUpdate(in)
		assert.Equal(t, models.FieldUnchanged, update.Email.Intent)
	})

	t.Run("sentinel phone means unchanged", func(t *testing.T) {
		in := base
		in.Phone = SentinelPhone
		update := ResolveUpdate(in)
		assert.Equal(t, models.FieldUnchanged, update.Phone.Intent)
	})
}
