package uuidgen

import (
	"github.com/google/uuid"
)

// Generator hands out random request IDs.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

// IsUUID reports whether s parses as a UUID, so caller-supplied IDs can be reused.
func (g *Generator) IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
