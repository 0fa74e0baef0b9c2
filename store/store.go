package store

import (
	"net/url"

	"gorm.io/gorm"
)

// Store wraps the database handle and exposes the typed queries the
// rest of the application is allowed to run.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// applyFilter builds an exact-match filter from caller-supplied query
// parameters. Only allow-listed keys are honored so request parameters
// can not couple to arbitrary column names; empty and "null" values
// are skipped rather than matched literally.
func applyFilter(query *gorm.DB, allowed map[string]string, params url.Values) *gorm.DB {
	for key, column := range allowed {
		value := params.Get(key)
		if value == "" || value == "null" {
			continue
		}
		query = query.Where(column+" = ?", value)
	}
	return query
}
