package store

import "github.com/boardhive/jobboard/internal/logger"

// Storages aggregates every repository backed by the relational database.
type Storages struct {
	AccountRepository AccountRepository
	ListingRepository ListingRepository
}

// NewStorages constructs all repositories over the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		ListingRepository: NewListingRepository(db, logger),
	}
}
