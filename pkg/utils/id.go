package utils

import "github.com/google/uuid"

// NewID returns a random primary key.
func NewID() string { return uuid.NewString() }
