package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	AttemptID ID
	UserID    ID
	ResultID  ID
)

// String conversions for domain IDs
func (id AttemptID) String() string { return ID(id).String() }
func (id UserID) String() string    { return ID(id).String() }
func (id ResultID) String() string  { return ID(id).String() }

// NewAttemptID creates a fresh attempt identifier
func NewAttemptID() AttemptID {
	return AttemptID(NewID())
}

// NewResultID creates a fresh result identifier
func NewResultID() ResultID {
	return ResultID(NewID())
}

// ParseAttemptID parses a string into AttemptID
func ParseAttemptID(s string) (AttemptID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("attempt ID cannot be empty")
	}
	return AttemptID(s), nil
}

// ParseUserID parses a string into UserID
func ParseUserID(s string) (UserID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("user ID cannot be empty")
	}
	return UserID(s), nil
}
