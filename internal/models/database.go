package models

import (
	"fmt"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// DownloadedTrailer records a trailer that has already been fetched to disk,
// so scheduled runs don't download the same video again
type DownloadedTrailer struct {
	Key          string `boltholdKey:"Key"` // full-field trailer identity
	VideoName    string
	TrailerName  string
	URL          string
	ProviderIDs  map[string]string
	FilePath     string
	Status       DownloadStatus `boltholdIndex:"Status"`
	DownloadedAt time.Time
}

// Database wraps the bolthold store
type Database struct {
	store *bolthold.Store
}

// NewDatabase creates a new database connection
func NewDatabase(path string) (*Database, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{store: store}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.store.Close()
}

// SaveDownloadedTrailer records a completed or failed trailer download
func (db *Database) SaveDownloadedTrailer(record *DownloadedTrailer) error {
	record.DownloadedAt = time.Now()
	return db.store.Upsert(record.Key, record)
}

// IsDownloaded reports whether a trailer with the given identity key has
// already been downloaded successfully
func (db *Database) IsDownloaded(key string) (bool, error) {
	var record DownloadedTrailer
	err := db.store.Get(key, &record)
	if err == bolthold.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return record.Status == DownloadStatusCompleted, nil
}

// CountDownloaded returns the number of download records with the given status
func (db *Database) CountDownloaded(status DownloadStatus) (int, error) {
	count, err := db.store.Count(&DownloadedTrailer{}, bolthold.Where("Status").Eq(status).Index("Status"))
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListDownloaded returns all download records
func (db *Database) ListDownloaded() ([]*DownloadedTrailer, error) {
	var records []*DownloadedTrailer
	if err := db.store.Find(&records, nil); err != nil {
		return nil, err
	}
	return records, nil
}
