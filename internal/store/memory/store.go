// Package memory implements the student store in process memory. Tests
// and local development run against it through the same interface as the
// mongo backend.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bubtcse/retakewizard/internal/models"
)

type MemoryStore struct {
	mu       sync.RWMutex
	courses  []models.Course
	students map[string]*models.StudentSubmission
	order    []string // submission ids in creation order
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		students: make(map[string]*models.StudentSubmission),
		now:      time.Now,
	}
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) EnsureIndexes(ctx context.Context) error { return nil }

func (s *MemoryStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *MemoryStore) PutCourse(ctx context.Context, course models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.courses {
		if c.Code == course.Code {
			s.courses[i] = course
			return nil
		}
	}
	s.courses = append(s.courses, course)
	return nil
}

func (s *MemoryStore) FindStudent(ctx context.Context, id string) (*models.StudentSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.students[id]
	if !ok {
		return nil, nil
	}
	return copySubmission(sub), nil
}

func (s *MemoryStore) UpsertStudent(ctx context.Context, id string, update models.StudentUpdate) (*models.StudentSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	sub, ok := s.students[id]
	if !ok {
		sub = &models.StudentSubmission{ID: id, CreatedAt: now}
		s.students[id] = sub
		s.order = append(s.order, id)
	}
	sub.UpdatedAt = now

	applyField := func(dst *string, f models.Field) {
		switch f.Intent {
		case models.FieldSet:
			*dst = f.Value
		case models.FieldClear:
			*dst = ""
		}
	}
	applyField(&sub.Name, update.Name)
	applyField(&sub.Section, update.Section)
	applyField(&sub.Phone, update.Phone)
	applyField(&sub.Email, update.Email)
	if update.Intake != nil {
		sub.Intake = *update.Intake
	}
	if update.CourseCodes != nil {
		sub.CourseCodes = append([]string(nil), update.CourseCodes...)
	}

	return copySubmission(sub), nil
}

func (s *MemoryStore) ListStudents(ctx context.Context) ([]models.StudentSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StudentSubmission, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *copySubmission(s.students[id]))
	}
	return out, nil
}

func copySubmission(sub *models.StudentSubmission) *models.StudentSubmission {
	out := *sub
	out.CourseCodes = append([]string(nil), sub.CourseCodes...)
	return &out
}
