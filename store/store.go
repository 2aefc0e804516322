// Package store connects to the data store and manages the saved countdown
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/marathon/internal/models"
	"github.com/ayoisaiah/marathon/internal/osutil"
)

const (
	stateBucket = "state"
	metaBucket  = "meta"
)

var stateKey = []byte(models.StateKey)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

func (c *Client) GetState() ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(stateBucket)).Get(stateKey)
		if v == nil {
			return nil
		}

		// v is only valid for the life of the transaction
		value = make([]byte, len(v))
		copy(value, v)

		return nil
	})

	return value, err
}

func (c *Client) UpdateState(value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put(stateKey, value)
	})
}

// Open connects to the database, creating the buckets and applying any
// pending migrations.
func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{stateBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return migrate(tx)
	})
	if err != nil {
		_ = db.Close()

		return errMigrate.Wrap(err)
	}

	c.DB = db

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission)
	if err != nil {
		return nil, errOpenDB.Wrap(err)
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errMarathonRunning
		}

		return nil, errOpenDB.Wrap(err)
	}

	return db, nil
}

// Locked reports whether the database at path is held by another process.
func Locked(path string) bool {
	db, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout:  100 * time.Millisecond,
		ReadOnly: true,
	})
	if err == nil {
		_ = db.Close()
		return false
	}

	return errors.Is(err, bolt.ErrTimeout)
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	c := &Client{path: dbPath}

	if err := c.Open(); err != nil {
		return nil, err
	}

	return c, nil
}
