package store

import "github.com/MKhiriev/proxy-desk-bot/internal/logger"

// Repositories groups every repository backed by one database connection.
type Repositories struct {
	Credentials CredentialRepository
}

// NewRepositories wires all repositories on top of db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Credentials: NewCredentialRepository(db, log),
	}
}
