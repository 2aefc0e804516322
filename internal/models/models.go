// Package models defines the persisted form of the countdown state
package models

import (
	"encoding/json"
	"time"

	"github.com/ayoisaiah/marathon/internal/session"
)

// StateKey is the fixed identifier the countdown state is stored under.
const StateKey = "timer20h"

// Snapshot is the persistable subset of the countdown state.
type Snapshot struct {
	Sessions            []session.Record `json:"sessions"`
	RemainingSeconds    int              `json:"remainingSeconds"`
	OneHourWarningShown bool             `json:"oneHourWarningShown"`
}

// Default returns the initial state for a countdown of total seconds.
func Default(total int) Snapshot {
	return Snapshot{
		RemainingSeconds: total,
		Sessions:         []session.Record{},
	}
}

// Encode serialises the snapshot for storage.
func (s Snapshot) Encode() ([]byte, error) {
	if s.Sessions == nil {
		s.Sessions = []session.Record{}
	}

	return json.Marshal(s)
}

// DecodeSnapshot parses previously stored state. It never fails: malformed
// input yields the default state for total, and each field falls back to its
// default independently of the others. Session entries that cannot be
// decoded are skipped.
func DecodeSnapshot(data []byte, total int) Snapshot {
	snap := Default(total)

	var raw map[string]json.RawMessage

	if err := json.Unmarshal(data, &raw); err != nil {
		return snap
	}

	if v, ok := raw["remainingSeconds"]; ok {
		var remaining int
		if err := json.Unmarshal(v, &remaining); err == nil &&
			remaining >= 0 && remaining <= total {
			snap.RemainingSeconds = remaining
		}
	}

	if v, ok := raw["oneHourWarningShown"]; ok {
		var shown bool
		if err := json.Unmarshal(v, &shown); err == nil {
			snap.OneHourWarningShown = shown
		}
	}

	if v, ok := raw["sessions"]; ok {
		var entries []json.RawMessage
		if err := json.Unmarshal(v, &entries); err == nil {
			for _, e := range entries {
				var r session.Record
				if err := json.Unmarshal(e, &r); err != nil {
					continue
				}

				snap.Sessions = append(snap.Sessions, r)
			}
		}
	}

	return snap
}

// Status is the live view of a running countdown, written to the status file
// so other processes can report on it while the store is locked.
type Status struct {
	UpdatedAt time.Time `json:"updatedAt"`
	State     string    `json:"state"`
	Snapshot
	Total int `json:"total"`
}

// DecodeStatus parses a status file.
func DecodeStatus(data []byte) (Status, error) {
	var st Status

	if err := json.Unmarshal(data, &st); err != nil {
		return st, err
	}

	if st.Sessions == nil {
		st.Sessions = []session.Record{}
	}

	return st, nil
}
