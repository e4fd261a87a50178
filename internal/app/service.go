package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/bubtcse/retakewizard/internal/models"
	"github.com/bubtcse/retakewizard/internal/privacy"
	"github.com/bubtcse/retakewizard/internal/ranking"
	"github.com/bubtcse/retakewizard/internal/store"
)

// ErrValidation marks input rejected before it reaches the store.
var ErrValidation = errors.New("invalid submission")

// Service is the operation boundary the UI consumes. Storage faults are
// logged and degrade to empty results here so the public form keeps
// working when the store does not; the stores themselves return real
// errors for tests and internal callers.
type Service struct {
	Config *Config
	Store  store.StudentStore
	Auth   *Auth
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := NewStore(config.Database.DSN, config.Database.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	return &Service{
		Config: config,
		Store:  st,
		Auth:   NewAuth(config),
	}, nil
}

// ListCourses returns the catalog, empty on a store fault.
func (s *Service) ListCourses(ctx context.Context) []models.Course {
	courses, err := s.Store.ListCourses(ctx)
	if err != nil {
		logger.Error.Printf("Failed to fetch courses: %v", err)
		return []models.Course{}
	}
	return courses
}

// SearchStudent looks a submission up for editing. Contact fields are
// always replaced with the masking sentinels, whoever asks: the lookup
// endpoint is shared and real values must never reach the browser.
func (s *Service) SearchStudent(ctx context.Context, id string) *models.StudentSubmission {
	sub, err := s.Store.FindStudent(ctx, id)
	if err != nil {
		logger.Error.Printf("Failed to search student %s: %v", id, err)
		return nil
	}
	return privacy.MaskStudent(sub)
}

// SaveStudent validates the form payload and merges it into the stored
// submission, creating one on first save. Sentinel contact values mean
// "keep what is stored"; a blanked email clears the stored field. The
// returned record is the post-merge document with real values, it goes
// back to the submitter only.
func (s *Service) SaveStudent(ctx context.Context, input models.StudentInput) (*models.StudentSubmission, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.DedupeCourseCodes()
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	update := privacy.ResolveUpdate(input)
	sub, err := s.Store.UpsertStudent(ctx, input.ID, update)
	if err != nil {
		logger.Error.Printf("Failed to save student %s: %v", input.ID, err)
		return nil, nil
	}
	return sub, nil
}

// CourseRankings recomputes the aggregation view. Phone numbers appear
// only when the caller presents a capability with phone visibility; email
// never appears here. Store faults yield an empty report.
func (s *Service) CourseRankings(ctx context.Context, access ReportAccess) ranking.Report {
	empty := ranking.Report{Rankings: []ranking.Entry{}}

	courses, err := s.Store.ListCourses(ctx)
	if err != nil {
		logger.Error.Printf("Failed to fetch courses for rankings: %v", err)
		return empty
	}
	subs, err := s.Store.ListStudents(ctx)
	if err != nil {
		logger.Error.Printf("Failed to fetch submissions for rankings: %v", err)
		return empty
	}

	return ranking.Build(courses, subs, access.PhoneVisible())
}

func (s *Service) Close() error {
	if err := s.Store.Close(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}
