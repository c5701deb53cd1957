package model

import "github.com/google/uuid"

// IDFunc produces a fresh task id.
type IDFunc func() string

// NewID returns a UUIDv7: ordered by creation time, random in the low bits.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
