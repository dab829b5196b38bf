// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package directory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeacademy/gatekeeper/internal/students/auth"
	"github.com/codeacademy/gatekeeper/pkg/textfold"
)

// Service assembles directory listings and cohort statistics.
type Service struct {
	studentLister StudentLister
	logger        *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(lister StudentLister, logger *slog.Logger) *Service {
	return &Service{
		studentLister: lister,
		logger:        logger,
	}
}

/*
List returns the directory entries matching the search term, plus cohort
statistics computed over the whole student body.

Description: An empty search term returns everyone. Matching is case- and
accent-insensitive across full name, username, email, student ID, and course.

Returns:
  - []Summary: Matching students (never includes password material)
  - Stats: Aggregates over all students, independent of the filter
  - error: Storage failures
*/
func (service *Service) List(context context.Context, search string) ([]Summary, Stats, error) {

	students, err := service.studentLister.List(context)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("directory_service_list_failed: %w", err)
	}

	summaries := make([]Summary, 0, len(students))
	for _, student := range students {
		if !matches(student, search) {
			continue
		}
		summaries = append(summaries, toSummary(student))
	}

	return summaries, computeStats(students), nil
}

// matches reports whether the student satisfies the folded search term.
func matches(student *auth.Student, search string) bool {
	if textfold.Fold(search) == "" {
		return true
	}
	return textfold.Contains(student.FullName, search) ||
		textfold.Contains(student.Username, search) ||
		textfold.Contains(student.Email, search) ||
		textfold.Contains(student.ID, search) ||
		textfold.Contains(student.Course, search)
}

// computeStats aggregates cohort statistics over the full student body.
func computeStats(students []*auth.Student) Stats {
	stats := Stats{TotalStudents: len(students)}
	if len(students) == 0 {
		return stats
	}

	progressSum := 0
	courses := make(map[string]struct{})
	for _, student := range students {
		if student.Status == auth.StatusActive {
			stats.ActiveStudents++
		}
		progressSum += student.Progress
		courses[student.Course] = struct{}{}
	}

	// Round to the nearest integer percentage.
	stats.AverageProgress = (progressSum + len(students)/2) / len(students)
	stats.CoursesOffered = len(courses)
	return stats
}

// toSummary maps a student entity to its directory view.
func toSummary(student *auth.Student) Summary {
	return Summary{
		ID:                student.ID,
		FullName:          student.FullName,
		Username:          student.Username,
		Email:             student.Email,
		Course:            student.Course,
		Level:             student.Level,
		Progress:          student.Progress,
		JoinDate:          student.JoinDate.UTC().Format(time.RFC3339),
		Status:            student.Status,
		CompletedProjects: student.CompletedProjects,
		TotalProjects:     student.TotalProjects,
		StudyHours:        student.StudyHours,
		Certificates:      student.Certificates,
		Skills:            student.Skills,
	}
}
