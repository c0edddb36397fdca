package utils

import "github.com/google/uuid"

// UUIDGenerator mints trace identifiers. Ids are UUIDv7 so they sort by
// creation time in log storage; when the random source fails the generator
// falls back to a v4 id rather than erroring.
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
