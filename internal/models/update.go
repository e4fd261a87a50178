package models

// FieldIntent says what an update does to one field. The zero value
// leaves the stored value untouched, so a StudentUpdate built without an
// explicit intent is safe.
type FieldIntent int

const (
	FieldUnchanged FieldIntent = iota
	FieldSet
	FieldClear
)

// Field pairs an intent with the value it sets. Carrying a tagged value
// instead of magic strings keeps the masking sentinels out of the store
// layer entirely.
type Field struct {
	Intent FieldIntent
	Value  string
}

func SetField(v string) Field { return Field{Intent: FieldSet, Value: v} }
func ClearField() Field       { return Field{Intent: FieldClear} }

// StudentUpdate is a field-level replace merge: set fields overwrite,
// unchanged fields are left alone, cleared fields are removed from the
// stored document rather than written as empty strings.
type StudentUpdate struct {
	Name        Field
	Section     Field
	Phone       Field
	Email       Field
	Intake      *int
	CourseCodes []string // nil leaves the stored set untouched
}
