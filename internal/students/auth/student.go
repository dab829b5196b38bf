// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

/*
Package auth implements the student identity core: credential storage,
signup/login orchestration, and session token issuance.

# Architecture

This layer is the "Truth" of the portal. The entities defined here have no
transport dependencies and encapsulate every business rule related to student
identity (uniqueness, secrecy of password hashes, token lifetime).
*/
package auth

import "time"

// # Domain Entities

// Student represents a registered member of the Code Academy portal.
//
// The PasswordHash field is excluded from JSON so no outward-facing payload
// can ever carry it; the file store persists it through its own record type.
type Student struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`

	// Learning profile. The identity core stores these opaquely; the
	// dashboard and directory layers interpret them.
	JoinDate          time.Time `json:"join_date"`
	Course            string    `json:"course"`
	Level             string    `json:"level"`
	Progress          int       `json:"progress"`
	CompletedProjects int       `json:"completed_projects"`
	TotalProjects     int       `json:"total_projects"`
	StudyHours        int       `json:"study_hours"`
	Certificates      []string  `json:"certificates"`
	Skills            []string  `json:"skills"`
	Status            string    `json:"status"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the auth domain.
const (
	FieldFullName   = "full_name"
	FieldUsername   = "username"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldIdentifier = "identifier"
	FieldToken      = "token"
	FieldStudent    = "student"
	FieldMessage    = "message"
)
