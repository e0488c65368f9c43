package engine

import (
	"time"

	"jsonstore/src/helpers"
)

// Option configures a DocumentStorageEngine.
type Option func(*DocumentStorageEngine)

// WithClock replaces the wall clock used for _created and _updated
// timestamps. Tests use this for deterministic output.
func WithClock(now func() time.Time) Option {
	return func(e *DocumentStorageEngine) {
		e.now = now
	}
}

// WithIDFunc replaces the document id generator.
func WithIDFunc(gen func() string) Option {
	return func(e *DocumentStorageEngine) {
		e.newID = gen
	}
}

// WithUUIDs switches new document ids from the default hash-based
// scheme to random UUIDs. Existing documents keep whatever ids they
// were saved under.
func WithUUIDs() Option {
	return WithIDFunc(helpers.GenerateUUID)
}

// WithFileLock wraps every operation in an exclusive flock on a
// sidecar lock file, serializing access across processes sharing the
// backing file. Without it the engine provides no isolation at all:
// two concurrent read-modify-write cycles can silently lose updates.
func WithFileLock() Option {
	return func(e *DocumentStorageEngine) {
		e.useFileLock = true
	}
}
