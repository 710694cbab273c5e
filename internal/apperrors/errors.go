package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates an invoice amount that is missing, negative or not representable.
var ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)

// ErrInvalidName indicates a display name that cannot produce an identifier.
var ErrInvalidName = fmt.Errorf("%w: invalid name", ErrValidation)

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDuplicateAssociation indicates that a company/industry pair is already linked.
var ErrDuplicateAssociation = fmt.Errorf("%w: association already exists", ErrDuplicate)

// ErrReferentialIntegrity indicates a foreign key violation on insert or delete.
var ErrReferentialIntegrity = errors.New("referential integrity violation")

// ErrStorageUnavailable indicates a connection or transport failure talking to the database.
// Callers may retry; nothing in this module does.
var ErrStorageUnavailable = errors.New("storage unavailable")
