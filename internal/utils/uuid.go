package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateWithPrefix returns prefix followed by a fresh identifier,
// e.g. "u0192f1c2-..." for users or "log0192f1c2-..." for activity entries.
func (g *UUIDGenerator) GenerateWithPrefix(prefix string) string {
	return prefix + g.Generate()
}
