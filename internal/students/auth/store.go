// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

package auth

import "context"

// # Student Data Access

// StudentRepository defines the data access contract for student accounts.
//
// Implementations must guarantee that a successful mutation is durably
// persisted before the call returns, and that concurrent mutations are
// serialized: two simultaneous inserts with the same username must not both
// succeed.
type StudentRepository interface {

	/*
		FindByID returns the student with the given ID.

		Returns:
		  - *Student: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Student, error)

	/*
		FindByIdentifier returns the student whose username OR email matches
		the identifier, compared case-insensitively.

		Returns:
		  - *Student: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByIdentifier(context context.Context, identifier string) (*Student, error)

	/*
		Insert persists a brand-new student account.

		The uniqueness check and the append are one atomic step under the
		store's write lock, and the next sequential ID is assigned there.

		Returns:
		  - *Student: The stored entity with its assigned ID
		  - error: apperr.Conflict on duplicate username/email, or storage failures
	*/
	Insert(context context.Context, student *Student) (*Student, error)

	/*
		Update persists changes to the mutable profile fields of an existing
		student.

		Returns:
		  - error: apperr.NotFound if the ID is unknown, or storage failures
	*/
	Update(context context.Context, student *Student) error

	/*
		List returns every student account, ordered by ID.

		Returns:
		  - []*Student: Detached copies, safe for the caller to read
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Student, error)

	/*
		Count returns the number of stored student accounts.
	*/
	Count(context context.Context) (int, error)
}
