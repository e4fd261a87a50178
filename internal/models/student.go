package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Course is one catalog entry. The catalog is loaded by catalogctl and
// treated as read-only by the web service.
type Course struct {
	Code string `bson:"code" json:"code"`
	Name string `bson:"name" json:"name"`
}

// StudentSubmission is a student's retake/improvement application. The
// document key is the institutional student ID, assigned outside this
// system and never regenerated.
type StudentSubmission struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Intake      int       `bson:"intake" json:"intake"`
	Section     string    `bson:"section" json:"section"`
	Phone       string    `bson:"phone" json:"phone"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	CourseCodes []string  `bson:"courseCodes" json:"courseCodes"`
	CreatedAt   time.Time `bson:"createdAt" json:"-"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"-"`
}

// StudentInput is the raw form payload as submitted by the UI. Phone and
// email may carry the masking sentinels, meaning "leave as stored".
type StudentInput struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Intake      int      `json:"intake" validate:"gt=0"`
	Section     string   `json:"section" validate:"required"`
	Phone       string   `json:"phone" validate:"required,min=11"`
	Email       string   `json:"email" validate:"omitempty,email"`
	CourseCodes []string `json:"courseCodes" validate:"min=1,dive,required"`
}

func (in *StudentInput) Validate() error {
	validate := validator.New()
	return validate.Struct(in)
}

// DedupeCourseCodes drops repeated codes keeping first-seen order, so one
// submission cannot count twice towards the same ranking bucket.
func (in *StudentInput) DedupeCourseCodes() {
	seen := make(map[string]bool, len(in.CourseCodes))
	out := in.CourseCodes[:0]
	for _, code := range in.CourseCodes {
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	in.CourseCodes = out
}
