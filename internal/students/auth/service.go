// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codeacademy/gatekeeper/internal/platform/apperr"
	"github.com/codeacademy/gatekeeper/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for minting session tokens.
type TokenProvider interface {
	// Issue creates a signed session token for the given student, valid for
	// timeToLive from now.
	Issue(studentID, email string, timeToLive time.Duration) (string, error)
}

// msgInvalidCredentials is deliberately identical for an unknown identifier
// and a wrong password, so login attempts cannot enumerate accounts.
const msgInvalidCredentials = "Invalid username/email or password"

// Service implements the signup and login use cases.
//
// # Review Process
//
// This service is the security core of the portal. Changes to hashing,
// uniqueness, or credential verification need a security review.
type Service struct {
	studentRepository StudentRepository
	tokenProvider     TokenProvider
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(studentRepo StudentRepository, tokenProv TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		studentRepository: studentRepo,
		tokenProvider:     tokenProv,
		logger:            logger,
	}
}

// Session represents a successfully established portal session: a signed
// bearer token plus the account it resolves to (hash never included).
type Session struct {
	Token   string
	Student *Student
}

// # Signup Flow

// SignupInput holds the data required to enroll a new student.
type SignupInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

/*
Signup validates uniqueness, hashes the password, persists the new student,
and mints their first session token.

Description: The friendly pre-check produces a clear conflict message; the
store's atomic insert is what actually guarantees uniqueness under
concurrency.

Returns:
  - *Session: Token plus the created student
  - error: apperr.Conflict if the identity exists, or storage failures
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*Session, error) {

	// Friendly uniqueness pre-checks. Return a client-safe Conflict error.
	if _, err := service.studentRepository.FindByIdentifier(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}
	if _, err := service.studentRepository.FindByIdentifier(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost balances security
	// against CPU use during signup bursts.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new Student entity with curriculum defaults. The store
	// assigns the sequential ID.
	student := &Student{
		Username:      strings.TrimSpace(input.Username),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:  hashedPassword,
		FullName:      strings.TrimSpace(input.FullName),
		JoinDate:      time.Now().UTC(),
		Course:        DefaultCourse,
		Level:         DefaultLevel,
		TotalProjects: DefaultTotalProjects,
		Certificates:  []string{},
		Skills:        []string{},
		Status:        StatusActive,
	}

	// Persist. The store re-checks uniqueness under its write lock, which
	// closes the race two concurrent signups would otherwise win together.
	created, err := service.studentRepository.Insert(context, student)
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_signup_failed: %w", err)
	}

	token, err := service.tokenProvider.Issue(created.ID, created.Email, SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.Info("student_enrolled", slog.String("student_id", created.ID))

	return &Session{Token: token, Student: created}, nil
}

// # Login Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Identifier string // Username or email
	Password   string
}

/*
Login validates student credentials and issues a fresh session token.

Description: Resolves the identifier case-insensitively, verifies the
password with a constant-time bcrypt comparison, and mints a new token.

Returns:
  - *Session: Token plus the authenticated student
  - error: apperr.Unauthorized (single generic message) or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {

	student, err := service.studentRepository.FindByIdentifier(context, input.Identifier)

	// Unknown identifier. Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	// Wrong password. Same generic message as above.
	if !sec.CheckPasswordHash(input.Password, student.PasswordHash) {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	token, err := service.tokenProvider.Issue(student.ID, student.Email, SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.Info("student_logged_in", slog.String("student_id", student.ID))

	return &Session{Token: token, Student: student}, nil
}
