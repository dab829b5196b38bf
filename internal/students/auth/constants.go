// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package auth

import "time"

// # Authentication Constraints

const (
	// SessionTokenTTL is the duration a session token remains valid.
	// The portal performs no server-side revocation; expiry is the only
	// way a token dies.
	SessionTokenTTL = 24 * time.Hour

	// MinUsernameLength is the minimum accepted username length at signup.
	MinUsernameLength = 3

	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength = 6
)

// # Account Defaults

const (
	// IDPrefix is the fixed prefix of sequentially assigned student IDs
	// (STU001, STU002, ...).
	IDPrefix = "STU"

	// DefaultCourse is assigned to brand-new signups.
	DefaultCourse = "Web Development"

	// DefaultLevel is assigned to brand-new signups.
	DefaultLevel = "Beginner"

	// DefaultTotalProjects is the curriculum size for new students.
	DefaultTotalProjects = 10

	// StatusActive marks an enrolled, active student.
	StatusActive = "Active"
)
