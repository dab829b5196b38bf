// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codeacademy/gatekeeper/internal/platform/apperr"
	"github.com/codeacademy/gatekeeper/internal/students/auth"
)

// # Service Layer

// Service orchestrates profile and dashboard logic for the current student.
type Service struct {
	studentRepository StudentRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(studentRepo StudentRepository, logger *slog.Logger) *Service {
	return &Service{
		studentRepository: studentRepo,
		logger:            logger,
	}
}

// asAuthError collapses a missing account into the gate's generic rejection.
// A token can outlive its account; trusting the claims alone would resurrect
// deleted students.
func asAuthError(err error) error {
	if apperr.IsNotFound(err) {
		return apperr.Unauthorized("Invalid or expired token")
	}
	return err
}

// # Profile Management

/*
GetProfile retrieves the full profile of the authenticated student.

Returns:
  - *auth.Student: The hydrated profile (hash never serialized)
  - error: Unauthorized if the account behind the token no longer exists
*/
func (service *Service) GetProfile(context context.Context, studentID string) (*auth.Student, error) {
	student, err := service.studentRepository.FindByID(context, studentID)
	if err != nil {
		return nil, asAuthError(err)
	}
	return student, nil
}

// UpdateProfileInput defines the mutable subset of profile fields.
// Username and email are immutable after signup.
type UpdateProfileInput struct {
	FullName *string
	Course   *string
}

/*
UpdateProfile applies a partial set of changes to the student's profile.

Description: Fetches the current state, overlays the provided fields, and
persists the full collection (all-or-nothing, per store contract).

Returns:
  - *auth.Student: The updated profile
  - error: Unauthorized for stale tokens, or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, studentID string, input UpdateProfileInput) (*auth.Student, error) {

	student, err := service.studentRepository.FindByID(context, studentID)
	if err != nil {
		return nil, asAuthError(err)
	}

	// Apply delta updates
	if input.FullName != nil {
		student.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Course != nil {
		student.Course = *input.Course
	}

	if err := service.studentRepository.Update(context, student); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("student_profile_updated", slog.String("student_id", studentID))

	return student, nil
}

// # Dashboard

/*
GetDashboard assembles the dashboard payload for the authenticated student.

Returns:
  - *Dashboard: Profile summary, aggregated stats, and the activity feed
  - error: Unauthorized for stale tokens, or storage failures
*/
func (service *Service) GetDashboard(context context.Context, studentID string) (*Dashboard, error) {

	student, err := service.studentRepository.FindByID(context, studentID)
	if err != nil {
		return nil, asAuthError(err)
	}

	return &Dashboard{
		Student: student,
		Stats: DashboardStats{
			Progress:           student.Progress,
			CompletedProjects:  student.CompletedProjects,
			TotalProjects:      student.TotalProjects,
			StudyHours:         student.StudyHours,
			CertificatesEarned: len(student.Certificates),
			SkillsLearned:      len(student.Skills),
			DaysSinceJoining:   daysSince(student.JoinDate, time.Now().UTC()),
		},
		RecentActivity: recentActivity(),
		Certificates:   student.Certificates,
		Skills:         student.Skills,
	}, nil
}

// recentActivity returns the canned activity feed.
//
// TODO: replace with real per-student events once the learning platform
// publishes them; the portal currently has no event source.
func recentActivity() []Activity {
	return []Activity{
		{
			Type:        "project",
			Title:       "Completed JavaScript Fundamentals Quiz",
			Description: "Scored 95% on advanced JavaScript concepts",
			Time:        "2 hours ago",
			Icon:        "fas fa-trophy",
		},
		{
			Type:        "lesson",
			Title:       "Started React Components Module",
			Description: "Beginning advanced React development",
			Time:        "1 day ago",
			Icon:        "fas fa-play-circle",
		},
		{
			Type:        "achievement",
			Title:       "Earned \"Problem Solver\" Badge",
			Description: "Completed 5 coding challenges in a row",
			Time:        "3 days ago",
			Icon:        "fas fa-medal",
		},
	}
}
