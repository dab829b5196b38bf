// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeacademy/gatekeeper/internal/platform/sec"
)

// demoStudent describes one of the demo accounts created on first run.
type demoStudent struct {
	student  Student
	password string
}

// demoStudents mirrors the demo roster the portal ships with. Passwords are
// hashed at seed time; only the hash is ever stored.
func demoStudents() []demoStudent {
	return []demoStudent{
		{
			password: "demo123",
			student: Student{
				Username:          "demo",
				Email:             "demo@codeacademy.com",
				FullName:          "Demo Student",
				JoinDate:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Course:            "Full Stack Development",
				Level:             "Intermediate",
				Progress:          75,
				CompletedProjects: 8,
				TotalProjects:     12,
				StudyHours:        156,
				Certificates:      []string{"HTML/CSS Basics", "JavaScript Fundamentals"},
				Skills:            []string{"HTML", "CSS", "JavaScript", "React", "Node.js"},
				Status:            StatusActive,
			},
		},
		{
			password: "jane123",
			student: Student{
				Username:          "jane",
				Email:             "jane@codeacademy.com",
				FullName:          "Jane Smith",
				JoinDate:          time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				Course:            "Data Science",
				Level:             "Advanced",
				Progress:          90,
				CompletedProjects: 15,
				TotalProjects:     16,
				StudyHours:        280,
				Certificates:      []string{"Python Basics", "Data Analysis", "Machine Learning"},
				Skills:            []string{"Python", "Pandas", "NumPy", "Scikit-learn", "TensorFlow"},
				Status:            StatusActive,
			},
		},
		{
			password: "mike123",
			student: Student{
				Username:          "mike",
				Email:             "mike@codeacademy.com",
				FullName:          "Mike Johnson",
				JoinDate:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Course:            "Mobile Development",
				Level:             "Beginner",
				Progress:          45,
				CompletedProjects: 3,
				TotalProjects:     8,
				StudyHours:        67,
				Certificates:      []string{"Mobile UI Design"},
				Skills:            []string{"Flutter", "Dart", "UI/UX Design"},
				Status:            StatusActive,
			},
		},
	}
}

// SeedDemoStudents inserts the demo roster when the store is empty.
//
// It is idempotent: a non-empty store is left untouched.
func SeedDemoStudents(context context.Context, repo StudentRepository, logger *slog.Logger) error {
	count, err := repo.Count(context)
	if err != nil {
		return fmt.Errorf("auth_seed_count_failed: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, demo := range demoStudents() {
		hash, err := sec.HashPassword(demo.password)
		if err != nil {
			return fmt.Errorf("auth_seed_hash_failed: %w", err)
		}

		student := demo.student
		student.PasswordHash = hash

		if _, err := repo.Insert(context, &student); err != nil {
			return fmt.Errorf("auth_seed_insert_failed: %w", err)
		}
	}

	logger.Info("demo_students_seeded", slog.Int("count", len(demoStudents())))
	return nil
}
