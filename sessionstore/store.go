// Package sessionstore persists the mapping from end-user identity to
// mailbox credentials across process restarts.
//
// A store is a small durable key-value map: loaded fully at open,
// written back durably after every mutation. Two backends are provided,
// a whole-document JSON file and an embedded SQLite database; both
// honor the same contract and can be swapped without touching callers.
package sessionstore

import (
	driftmail "github.com/driftmail/client-go"
)

// Store maps external user identifiers to mailbox credentials.
//
// Implementations must guarantee that after any mutating call returns,
// a subsequent Get within the same process observes the new state, and
// a reopened store observes it after a restart.
type Store interface {
	// Get returns the credential stored for userID, with ok=false when
	// no record exists.
	Get(userID string) (cred driftmail.Credential, ok bool, err error)

	// Put stores the credential for userID, replacing any previous
	// record, and persists the change durably before returning.
	Put(userID string, cred driftmail.Credential) error

	// Remove deletes the record for userID, if any, and persists the
	// change durably before returning. Removing an absent record is not
	// an error.
	Remove(userID string) error

	// Close releases the store's resources.
	Close() error
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)
