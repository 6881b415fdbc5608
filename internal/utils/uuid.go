package utils

import "github.com/google/uuid"

// UUIDGenerator produces vault, device and operation identifiers. UUIDv7 is
// preferred because its time-ordered prefix keeps operation-id tie-breaks
// roughly aligned with creation order; v4 is the fallback when the clock
// source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
