// Package uuid hides ID generation behind a small interface so battle and
// combatant IDs can be pinned in tests.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique string identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator backs Generator with github.com/google/uuid
type GoogleUUIDGenerator struct{}

// New returns a random UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates the default generator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
