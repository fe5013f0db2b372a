// Package store connects to the data store and manages journey records and
// the suspended-journey snapshot.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/HSellappan/railfocus/internal/models"
	"github.com/HSellappan/railfocus/internal/timeutil"
)

const (
	journeyBucket = "journeys"
	stateBucket   = "state"
)

// snapshotKey addresses the single suspended journey in the state bucket.
var snapshotKey = []byte("snapshot")

var (
	errAlreadyRunning = errors.New(
		"is RailFocus already running? Only one instance can be active at a time",
	)

	// ErrNoSuspendedJourney is returned when resume is requested but no
	// snapshot exists.
	ErrNoSuspendedJourney = errors.New(
		"suspended journey not found: please start a new journey",
	)
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// SaveJourney writes a journey record, keyed by its start time.
func (c *Client) SaveJourney(rec *models.JourneyRecord) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(journeyBucket)).
			Put(timeutil.ToKey(rec.StartTime), value)
	})
}

// GetJourneys returns the journey records started within the given bounds,
// oldest first.
func (c *Client) GetJourneys(
	startTime, endTime time.Time,
) ([]models.JourneyRecord, error) {
	var records []models.JourneyRecord

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(journeyBucket)).Cursor()
		min := timeutil.ToKey(startTime)
		max := timeutil.ToKey(endTime)

		for k, v := cur.Seek(min); k != nil && bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			var rec models.JourneyRecord

			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}

			records = append(records, rec)
		}

		return nil
	})

	return records, err
}

// SaveSnapshot stores the suspended journey, replacing any previous one.
func (c *Client) SaveSnapshot(snap *models.JourneySnapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put(snapshotKey, value)
	})
}

// GetSnapshot retrieves the suspended journey if one exists.
func (c *Client) GetSnapshot() (*models.JourneySnapshot, error) {
	var snap models.JourneySnapshot

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(stateBucket)).Get(snapshotKey)
		if len(b) == 0 {
			return ErrNoSuspendedJourney
		}

		return json.Unmarshal(b, &snap)
	})
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

// ClearSnapshot removes the suspended journey after it has been resumed or
// abandoned.
func (c *Client) ClearSnapshot() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Delete(snapshotKey)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(journeyBucket)); err != nil {
			return err
		}

		_, err := tx.CreateBucketIfNotExists([]byte(stateBucket))

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}
