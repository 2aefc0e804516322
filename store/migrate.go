package store

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.etcd.io/bbolt"
)

const schemaVersion = 1

var schemaVersionKey = []byte("schema_version")

// migrate upgrades the stored state to the current schema version.
func migrate(tx *bbolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	version := 0

	if v := meta.Get(schemaVersionKey); v != nil {
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return err
		}

		version = n
	}

	if version >= schemaVersion {
		return nil
	}

	err := migrateProgress(tx)
	if err != nil {
		return err
	}

	return meta.Put(schemaVersionKey, []byte(strconv.Itoa(schemaVersion)))
}

// migrateProgress rewrites session progress values that were stored as
// strings (e.g. "12.5") as numbers. Values that can't be converted are left
// untouched for the lenient decoder to deal with.
func migrateProgress(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(stateBucket))

	v := bucket.Get(stateKey)
	if v == nil {
		return nil
	}

	var state map[string]any

	// unreadable state is not a migration failure
	if err := json.Unmarshal(v, &state); err != nil {
		return nil
	}

	sessions, ok := state["sessions"].([]any)
	if !ok {
		return nil
	}

	var changed bool

	for _, s := range sessions {
		sess, ok := s.(map[string]any)
		if !ok {
			continue
		}

		str, ok := sess["progress"].(string)
		if !ok {
			continue
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			continue
		}

		sess["progress"] = f
		changed = true
	}

	if !changed {
		return nil
	}

	b, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return bucket.Put(stateKey, b)
}
