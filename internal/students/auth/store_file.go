// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/codeacademy/gatekeeper/internal/platform/apperr"
	"github.com/codeacademy/gatekeeper/pkg/textfold"
)

// storeFileName is the JSON document holding the full student collection.
const storeFileName = "students.json"

// record is the persisted form of [Student]. It exists so the password hash
// can be written to disk while the API entity keeps it out of every outward
// JSON payload.
type record struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"password_hash"`
	FullName          string    `json:"full_name"`
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

// FileStore is a [StudentRepository] backed by a single JSON file.
//
// # Durability
//
// Every mutation rewrites the whole collection: marshal, write to a temp file
// in the same directory, then rename over the old file. The rename is atomic
// on POSIX filesystems, so a crash mid-write leaves the previous complete
// snapshot in place — never a partial one.
//
// # Concurrency
//
// A single RWMutex serializes mutations (the uniqueness check and the append
// are one critical section) while allowing concurrent reads.
type FileStore struct {
	mu       sync.RWMutex
	path     string
	students []record
}

// NewFileStore opens (or initializes) the student store under dataDir.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create data dir: %w", err)
	}

	store := &FileStore{path: filepath.Join(dataDir, storeFileName)}
	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
}

// load reads the backing file into memory. A missing file is a fresh store.
func (store *FileStore) load() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			store.students = nil
			return nil
		}
		return fmt.Errorf("filestore: read %s: %w", store.path, err)
	}

	var loaded []record
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("filestore: parse %s: %w", store.path, err)
	}

	// Order by the numeric suffix; a plain string sort would put STU1000
	// before STU999.
	sort.Slice(loaded, func(i, j int) bool { return idSuffix(loaded[i].ID) < idSuffix(loaded[j].ID) })
	store.students = loaded
	return nil
}

// persistLocked writes the full collection to disk. Callers must hold the
// write lock. The temp-file-plus-rename sequence makes the replacement
// all-or-nothing.
func (store *FileStore) persistLocked() error {
	data, err := json.MarshalIndent(store.students, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: marshal: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(store.path), storeFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("filestore: create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("filestore: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("filestore: close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), store.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("filestore: replace %s: %w", store.path, err)
	}
	return nil
}

// nextIDLocked assigns the next sequential student ID (STU001, STU002, ...).
// Callers must hold the write lock. IDs are never reused even if the numeric
// suffixes have gaps.
func (store *FileStore) nextIDLocked() string {
	highest := 0
	for _, rec := range store.students {
		if suffix := idSuffix(rec.ID); suffix > highest {
			highest = suffix
		}
	}
	return fmt.Sprintf("%s%03d", IDPrefix, highest+1)
}

// idSuffix parses the numeric part of a student ID. Unrecognized shapes map
// to zero, which sorts them first and excludes them from ID assignment.
func idSuffix(id string) int {
	suffix, err := strconv.Atoi(strings.TrimPrefix(id, IDPrefix))
	if err != nil {
		return 0
	}
	return suffix
}

// # StudentRepository Implementation

// FindByID returns the student with the given ID.
func (store *FileStore) FindByID(_ context.Context, id string) (*Student, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for i := range store.students {
		if store.students[i].ID == id {
			return toStudent(store.students[i]), nil
		}
	}
	return nil, apperr.NotFound("Student")
}

// FindByIdentifier resolves a username or email, case-insensitively.
func (store *FileStore) FindByIdentifier(_ context.Context, identifier string) (*Student, error) {
	folded := textfold.Fold(identifier)

	store.mu.RLock()
	defer store.mu.RUnlock()

	for i := range store.students {
		if textfold.Fold(store.students[i].Username) == folded ||
			textfold.Fold(store.students[i].Email) == folded {
			return toStudent(store.students[i]), nil
		}
	}
	return nil, apperr.NotFound("Student")
}

// Insert adds a new student, enforcing username/email uniqueness and
// persisting the collection before returning.
func (store *FileStore) Insert(_ context.Context, student *Student) (*Student, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	// Check-then-act runs entirely under the write lock, so two concurrent
	// duplicate signups cannot both pass the check.
	if store.hasConflictLocked(student.Username, student.Email, "") {
		return nil, apperr.Conflict("A student with this email or username already exists")
	}

	stored := *student
	stored.ID = store.nextIDLocked()

	store.students = append(store.students, toRecord(&stored))
	if err := store.persistLocked(); err != nil {
		// Roll back the in-memory append: a mutation that was not persisted
		// must not be observable.
		store.students = store.students[:len(store.students)-1]
		return nil, err
	}
	return &stored, nil
}

// Update replaces the stored state of an existing student.
func (store *FileStore) Update(_ context.Context, student *Student) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := -1
	for i := range store.students {
		if store.students[i].ID == student.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return apperr.NotFound("Student")
	}

	if store.hasConflictLocked(student.Username, student.Email, student.ID) {
		return apperr.Conflict("A student with this email or username already exists")
	}

	previous := store.students[index]
	store.students[index] = toRecord(student)
	if err := store.persistLocked(); err != nil {
		store.students[index] = previous
		return err
	}
	return nil
}

// List returns detached copies of every student, ordered by ID.
func (store *FileStore) List(_ context.Context) ([]*Student, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	students := make([]*Student, 0, len(store.students))
	for i := range store.students {
		students = append(students, toStudent(store.students[i]))
	}
	return students, nil
}

// Count returns the number of stored students.
func (store *FileStore) Count(_ context.Context) (int, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.students), nil
}

// Ping verifies the backing directory is still reachable. Used by the
// readiness probe.
func (store *FileStore) Ping() error {
	if _, err := os.Stat(filepath.Dir(store.path)); err != nil {
		return fmt.Errorf("filestore: data dir unavailable: %w", err)
	}
	return nil
}

// hasConflictLocked reports whether another record (excluding excludeID)
// already claims the folded username or email. Callers must hold a lock.
func (store *FileStore) hasConflictLocked(username, email, excludeID string) bool {
	foldedUsername := textfold.Fold(username)
	foldedEmail := textfold.Fold(email)

	for i := range store.students {
		if store.students[i].ID == excludeID {
			continue
		}
		if textfold.Fold(store.students[i].Username) == foldedUsername ||
			textfold.Fold(store.students[i].Email) == foldedEmail {
			return true
		}
	}
	return false
}

// # Mapping

func toRecord(student *Student) record {
	return record{
		ID:                student.ID,
		Username:          student.Username,
		Email:             student.Email,
		PasswordHash:      student.PasswordHash,
		FullName:          student.FullName,
		JoinDate:          student.JoinDate.UTC(),
		Course:            student.Course,
		Level:             student.Level,
		Progress:          student.Progress,
		CompletedProjects: student.CompletedProjects,
		TotalProjects:     student.TotalProjects,
		StudyHours:        student.StudyHours,
		Certificates:      append([]string{}, student.Certificates...),
		Skills:            append([]string{}, student.Skills...),
		Status:            student.Status,
	}
}

func toStudent(rec record) *Student {
	return &Student{
		ID:                rec.ID,
		Username:          rec.Username,
		Email:             rec.Email,
		PasswordHash:      rec.PasswordHash,
		FullName:          rec.FullName,
		JoinDate:          rec.JoinDate,
		Course:            rec.Course,
		Level:             rec.Level,
		Progress:          rec.Progress,
		CompletedProjects: rec.CompletedProjects,
		TotalProjects:     rec.TotalProjects,
		StudyHours:        rec.StudyHours,
		Certificates:      append([]string{}, rec.Certificates...),
		Skills:            append([]string{}, rec.Skills...),
		Status:            rec.Status,
	}
}
