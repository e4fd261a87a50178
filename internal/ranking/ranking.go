// Package ranking builds the per-course aggregation view over raw
// submissions. The report is recomputed on every request, never cached.
package ranking

import (
	"sort"

	"github.com/bubtcse/retakewizard/internal/models"
)

// StudentSummary is the compact per-student row shown under a course.
// Phone is present only for authorized report views; email never appears.
type StudentSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Intake  int    `json:"intake"`
	Section string `json:"section"`
	Phone   string `json:"phone,omitempty"`
}

// Entry is the ranking bucket for one course code.
type Entry struct {
	Code     string           `json:"code"`
	Name     string           `json:"name"`
	Count    int              `json:"count"`
	Students []StudentSummary `json:"students"`
}

type Report struct {
	TotalStudents int     `json:"totalStudents"`
	Rankings      []Entry `json:"rankings"`
}

// Build groups submissions by course code. Submissions must arrive oldest
// first; each bucket's student list keeps that order, and ties on count
// preserve the order the codes were first seen. The bucket display name
// comes from the catalog, falling back to the raw code for unknown codes.
func Build(courses []models.Course, subs []models.StudentSubmission, includePhone bool) Report {
	names := make(map[string]string, len(courses))
	for _, c := range courses {
		names[c.Code] = c.Name
	}

	index := make(map[string]int)
	entries := []Entry{}
	for _, sub := range subs {
		summary := StudentSummary{
			ID:      sub.ID,
			Name:    sub.Name,
			Intake:  sub.Intake,
			Section: sub.Section,
		}
		if includePhone {
			summary.Phone = sub.Phone
		}

		for _, code := range sub.CourseCodes {
			i, ok := index[code]
			if !ok {
				name := names[code]
				if name == "" {
					name = code
				}
				i = len(entries)
				index[code] = i
				entries = append(entries, Entry{Code: code, Name: name})
			}
			entries[i].Count++
			entries[i].Students = append(entries[i].Students, summary)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	// Total submitters, not the sum of bucket counts: a student in several
	// courses still counts once.
	return Report{
		TotalStudents: len(subs),
		Rankings:      entries,
	}
}
