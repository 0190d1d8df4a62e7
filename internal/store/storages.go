package store

import "github.com/MKhiriev/go-contacts-book/internal/logger"

// Storages groups the repositories built on one database.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ContactRepository: NewContactRepository(db, log),
	}
}
