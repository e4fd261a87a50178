package store

import (
	"context"

	"github.com/bubtcse/retakewizard/internal/models"
)

// StudentStore is the persistence boundary: the course catalog plus the
// student submission collection. Implementations return real errors;
// converting faults into safe empty results is the service's job, not the
// store's.
type StudentStore interface {
	Close() error
	EnsureIndexes(ctx context.Context) error

	// ListCourses returns the catalog in the underlying store's insertion
	// order. The order carries no meaning.
	ListCourses(ctx context.Context) ([]models.Course, error)
	// PutCourse creates or replaces a catalog entry, keyed by code.
	PutCourse(ctx context.Context, course models.Course) error

	// FindStudent returns (nil, nil) when no submission exists for id.
	FindStudent(ctx context.Context, id string) (*models.StudentSubmission, error)
	// UpsertStudent creates the submission if absent, otherwise merges the
	// update field by field, and returns the post-merge document. A single
	// call is atomic per document.
	UpsertStudent(ctx context.Context, id string, update models.StudentUpdate) (*models.StudentSubmission, error)
	// ListStudents returns every submission, oldest first.
	ListStudents(ctx context.Context) ([]models.StudentSubmission, error)
}
