// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeacademy/gatekeeper/internal/platform/apperr"
	"github.com/codeacademy/gatekeeper/internal/students/auth"
)

func newStudent(username, email string) *auth.Student {
	return &auth.Student{
		Username:      username,
		Email:         email,
		PasswordHash:  "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456",
		FullName:      "Test Student",
		JoinDate:      time.Now().UTC(),
		Course:        auth.DefaultCourse,
		Level:         auth.DefaultLevel,
		TotalProjects: auth.DefaultTotalProjects,
		Status:        auth.StatusActive,
		Skills:        []string{},
		Certificates:  []string{},
	}
}

/*
TestFileStore_Insert_SequentialIDs verifies that new students receive
STU-prefixed identifiers in insertion order.
*/
func TestFileStore_Insert_SequentialIDs(t *testing.T) {
	store, err := auth.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	first, err := store.Insert(ctx, newStudent("alice", "alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "STU001", first.ID)

	second, err := store.Insert(ctx, newStudent("bob", "bob@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "STU002", second.ID)
}

/*
TestFileStore_Insert_Conflict checks case-insensitive uniqueness for
username and email.
*/
func TestFileStore_Insert_Conflict(t *testing.T) {
	store, err := auth.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = store.Insert(ctx, newStudent("alice", "alice@example.com"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"same_username", "alice", "other@example.com"},
		{"username_case", "ALICE", "other@example.com"},
		{"same_email", "other", "alice@example.com"},
		{"email_case", "other", "Alice@Example.COM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, insertErr := store.Insert(ctx, newStudent(tt.username, tt.email))
			require.Error(t, insertErr)
			assert.True(t, apperr.IsConflict(insertErr))
		})
	}

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

/*
TestFileStore_FindByIdentifier resolves a student by username or email
regardless of letter case.
*/
func TestFileStore_FindByIdentifier(t *testing.T) {
	store, err := auth.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	inserted, err := store.Insert(ctx, newStudent("alice", "alice@example.com"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		identifier string
	}{
		{"by_username", "alice"},
		{"by_username_upper", "ALICE"},
		{"by_email", "alice@example.com"},
		{"by_email_mixed_case", "Alice@Example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, findErr := store.FindByIdentifier(ctx, tt.identifier)
			require.NoError(t, findErr)
			assert.Equal(t, inserted.ID, found.ID)
		})
	}

	_, err = store.FindByIdentifier(ctx, "nobody")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestFileStore_Reload ensures inserted students survive a process
restart by reopening the store over the same data directory.
*/
func TestFileStore_Reload(t *testing.T) {
	dataDir := t.TempDir()
	ctx := context.Background()

	store, err := auth.NewFileStore(dataDir)
	require.NoError(t, err)

	inserted, err := store.Insert(ctx, newStudent("alice", "alice@example.com"))
	require.NoError(t, err)

	reopened, err := auth.NewFileStore(dataDir)
	require.NoError(t, err)

	found, err := reopened.FindByID(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, inserted.PasswordHash, found.PasswordHash)

	next, err := reopened.Insert(ctx, newStudent("bob", "bob@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "STU002", next.ID)
}

/*
TestFileStore_NumericIDOrdering loads a roster that has grown past the
three-digit range and checks that ordering and ID assignment follow the
numeric suffix, not the string form (which would put STU1000 before
STU999).
*/
func TestFileStore_NumericIDOrdering(t *testing.T) {
	dataDir := t.TempDir()

	seeded := `[
		{"id": "STU1000", "username": "zoe", "email": "zoe@example.com",
		 "password_hash": "x", "full_name": "Zoe Late",
		 "join_date": "2024-03-01T00:00:00Z", "course": "Web Development",
		 "level": "Beginner", "progress": 0, "completed_projects": 0,
		 "total_projects": 10, "study_hours": 0, "certificates": [],
		 "skills": [], "status": "Active"},
		{"id": "STU999", "username": "yan", "email": "yan@example.com",
		 "password_hash": "x", "full_name": "Yan Early",
		 "join_date": "2024-02-01T00:00:00Z", "course": "Web Development",
		 "level": "Beginner", "progress": 0, "completed_projects": 0,
		 "total_projects": 10, "study_hours": 0, "certificates": [],
		 "skills": [], "status": "Active"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "students.json"), []byte(seeded), 0o644))

	store, err := auth.NewFileStore(dataDir)
	require.NoError(t, err)

	ctx := context.Background()

	students, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "STU999", students[0].ID)
	assert.Equal(t, "STU1000", students[1].ID)

	inserted, err := store.Insert(ctx, newStudent("ada", "ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "STU1001", inserted.ID)
}

/*
TestFileStore_Update rewrites a profile in place and enforces
uniqueness against other students only.
*/
func TestFileStore_Update(t *testing.T) {
	store, err := auth.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	alice, err := store.Insert(ctx, newStudent("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = store.Insert(ctx, newStudent("bob", "bob@example.com"))
	require.NoError(t, err)

	alice.FullName = "Alice Updated"
	require.NoError(t, store.Update(ctx, alice))

	found, err := store.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", found.FullName)

	alice.Email = "bob@example.com"
	err = store.Update(ctx, alice)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	ghost := newStudent("ghost", "ghost@example.com")
	ghost.ID = "STU999"
	err = store.Update(ctx, ghost)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestFileStore_FindByID_CopiesSlices guards against callers mutating the
store's backing records through returned slices.
*/
func TestFileStore_FindByID_CopiesSlices(t *testing.T) {
	store, err := auth.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	student := newStudent("alice", "alice@example.com")
	student.Skills = []string{"HTML"}

	inserted, err := store.Insert(ctx, student)
	require.NoError(t, err)

	first, err := store.FindByID(ctx, inserted.ID)
	require.NoError(t, err)
	first.Skills[0] = "mutated"

	second, err := store.FindByID(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"HTML"}, second.Skills)
}
