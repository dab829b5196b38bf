// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

/*
Package account handles the authenticated student's own data: profile
retrieval, profile edits, and the dashboard summary.

# Architecture

  - Domain: Depends on the auth package for the Student entity.
  - Identity: Handlers trust only the token claims from the auth gate and
    re-fetch the account themselves; a stale token whose account is gone is
    rejected, never trusted.
*/
package account

import (
	"context"
	"time"

	"github.com/codeacademy/gatekeeper/internal/students/auth"
)

// # Repository Contracts

// StudentRepository is the slice of the store this package needs.
type StudentRepository interface {
	/*
		FindByID retrieves a student record by its unique ID.

		Returns:
		  - *auth.Student: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.Student, error)

	/*
		Update modifies the mutable profile fields of an existing student.

		Returns:
		  - error: Storage or constraint failures
	*/
	Update(context context.Context, student *auth.Student) error
}

// # Dashboard DTOs

// DashboardStats aggregates the progress counters shown on the dashboard.
type DashboardStats struct {
	Progress           int `json:"progress"`
	CompletedProjects  int `json:"completed_projects"`
	TotalProjects      int `json:"total_projects"`
	StudyHours         int `json:"study_hours"`
	CertificatesEarned int `json:"certificates_earned"`
	SkillsLearned      int `json:"skills_learned"`
	DaysSinceJoining   int `json:"days_since_joining"`
}

// Activity is one entry of the dashboard's recent-activity feed.
type Activity struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Icon        string `json:"icon"`
}

// Dashboard is the full payload for the student dashboard page.
type Dashboard struct {
	Student        *auth.Student  `json:"student"`
	Stats          DashboardStats `json:"stats"`
	RecentActivity []Activity     `json:"recent_activity"`
	Certificates   []string       `json:"certificates"`
	Skills         []string       `json:"skills"`
}

// daysSince counts whole days between joinDate and now.
func daysSince(joinDate, now time.Time) int {
	if joinDate.IsZero() || now.Before(joinDate) {
		return 0
	}
	return int(now.Sub(joinDate).Hours() / 24)
}
