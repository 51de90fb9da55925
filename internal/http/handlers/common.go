package handlers

import "fleetrecord/internal/repositories"

// store returns the MySQL-backed Store; repositories fall back to the shared
// connection when no explicit handle is injected.
func store() repositories.Store {
	return repositories.NewMySQLStore(nil)
}
