// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package account_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeacademy/gatekeeper/internal/platform/apperr"
	"github.com/codeacademy/gatekeeper/internal/students/account"
	"github.com/codeacademy/gatekeeper/internal/students/auth"
)

func seedStudent(t *testing.T) (*auth.FileStore, *auth.Student) {
	t.Helper()

	store, err := auth.NewFileStore(t.TempDir())
	require.NoError(t, err)

	inserted, err := store.Insert(context.Background(), &auth.Student{
		Username:          "alice",
		Email:             "alice@example.com",
		PasswordHash:      "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456",
		FullName:          "Alice Example",
		JoinDate:          time.Now().UTC().Add(-72 * time.Hour),
		Course:            "Web Development",
		Level:             "Intermediate",
		Progress:          40,
		CompletedProjects: 4,
		TotalProjects:     10,
		StudyHours:        120,
		Certificates:      []string{"HTML Basics"},
		Skills:            []string{"HTML", "CSS", "JavaScript"},
		Status:            auth.StatusActive,
	})
	require.NoError(t, err)

	return store, inserted
}

/*
TestService_GetProfile returns the account for a live identity and
rejects a token whose account no longer exists with the same message
the auth gate uses.
*/
func TestService_GetProfile(t *testing.T) {
	store, student := seedStudent(t)
	service := account.NewService(store, slog.Default())
	ctx := context.Background()

	profile, err := service.GetProfile(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Example", profile.FullName)

	_, err = service.GetProfile(ctx, "STU999")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)
	assert.Equal(t, "Invalid or expired token", appErr.Message)
}

/*
TestService_UpdateProfile applies only the fields present in the input
and persists the result.
*/
func TestService_UpdateProfile(t *testing.T) {
	store, student := seedStudent(t)
	service := account.NewService(store, slog.Default())
	ctx := context.Background()

	newName := "Alice Updated"
	updated, err := service.UpdateProfile(ctx, student.ID, account.UpdateProfileInput{
		FullName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", updated.FullName)
	assert.Equal(t, "Web Development", updated.Course)

	newCourse := "Data Science"
	updated, err = service.UpdateProfile(ctx, student.ID, account.UpdateProfileInput{
		Course: &newCourse,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", updated.FullName)
	assert.Equal(t, "Data Science", updated.Course)

	reloaded, err := store.FindByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", reloaded.FullName)
	assert.Equal(t, "Data Science", reloaded.Course)
}

/*
TestService_GetDashboard aggregates the progress counters from the
stored account.
*/
func TestService_GetDashboard(t *testing.T) {
	store, student := seedStudent(t)
	service := account.NewService(store, slog.Default())

	dashboard, err := service.GetDashboard(context.Background(), student.ID)
	require.NoError(t, err)

	assert.Equal(t, student.ID, dashboard.Student.ID)
	assert.Equal(t, 40, dashboard.Stats.Progress)
	assert.Equal(t, 4, dashboard.Stats.CompletedProjects)
	assert.Equal(t, 10, dashboard.Stats.TotalProjects)
	assert.Equal(t, 120, dashboard.Stats.StudyHours)
	assert.Equal(t, 1, dashboard.Stats.CertificatesEarned)
	assert.Equal(t, 3, dashboard.Stats.SkillsLearned)
	assert.Equal(t, 3, dashboard.Stats.DaysSinceJoining)
	assert.NotEmpty(t, dashboard.RecentActivity)
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript"}, dashboard.Skills)
}
