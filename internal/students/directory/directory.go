// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

/*
Package directory implements the student directory: a searchable listing of
every enrolled student with cohort-level aggregate statistics.

The directory exposes profile data only; password hashes never appear in any
listing (the [auth.Student] entity excludes them from serialization, and the
summary DTO here does not carry the field at all).
*/
package directory

import (
	"context"

	"github.com/codeacademy/gatekeeper/internal/students/auth"
)

// # Repository Contracts

// StudentLister is the slice of the store this package needs.
type StudentLister interface {
	/*
		List returns every student account, ordered by ID.

		Returns:
		  - []*auth.Student: Detached copies
		  - error: Storage failures
	*/
	List(context context.Context) ([]*auth.Student, error)
}

// # DTOs

// Summary is the directory-facing view of one student.
type Summary struct {
	ID                string   `json:"id"`
	FullName          string   `json:"full_name"`
	Username          string   `json:"username"`
	Email             string   `json:"email"`
	Course            string   `json:"course"`
	Level             string   `json:"level"`
	Progress          int      `json:"progress"`
	JoinDate          string   `json:"join_date"`
	Status            string   `json:"status"`
	CompletedProjects int      `json:"completed_projects"`
	TotalProjects     int      `json:"total_projects"`
	StudyHours        int      `json:"study_hours"`
	Certificates      []string `json:"certificates"`
	Skills            []string `json:"skills"`
}

// Stats aggregates cohort-level statistics across ALL students, regardless
// of any active search filter.
type Stats struct {
	TotalStudents   int `json:"total_students"`
	ActiveStudents  int `json:"active_students"`
	AverageProgress int `json:"average_progress"`
	CoursesOffered  int `json:"courses_offered"`
}
