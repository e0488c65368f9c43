// Package engine implements a minimal embedded document store backed
// by a single Extended JSON file. Every operation reloads the whole
// file, applies one change in memory, and rewrites the whole file.
//
// Known limitations, kept deliberately for compatibility with the
// behaviour this engine reproduces:
//
//   - reads are tolerant: a missing or unparsable backing file is
//     treated as an empty store, never surfaced as an error, so a
//     corrupted file is indistinguishable from a fresh one;
//   - writes are not atomic: a crash mid-write can truncate the file,
//     which the tolerant read then masks as an empty store;
//   - there is no locking unless WithFileLock or SerializedStore is
//     used, so concurrent callers can lose updates.
package engine

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"jsonstore/src/helpers"
)

// DocumentStore is the programmatic interface to the store.
type DocumentStore interface {
	Save(docType string, data Document) (Document, error)
	Load(docType, id string) (Document, error)
	DeleteDoc(docType, id string) error
	DeleteAllDocs(docType string) error
	DeleteType(docType string) error
	ListDocs(docType string) ([]string, error)
	ListTypes() ([]string, error)
}

// DocumentStorageEngine persists a Database to a single backing file.
// The file path is its only persistent state; the in-memory Database
// is rebuilt from the file on every call.
type DocumentStorageEngine struct {
	FilePath string

	logger      *zap.SugaredLogger
	now         func() time.Time
	newID       func() string
	useFileLock bool
}

// NewDocumentStore creates a store over the given backing file. The
// file is not created until the first mutating operation. The logger
// may be nil.
func NewDocumentStore(filePath string, logger *zap.SugaredLogger, opts ...Option) *DocumentStorageEngine {
	store := &DocumentStorageEngine{
		FilePath: filePath,
		logger:   logger,
		now:      time.Now,
		newID:    helpers.GenerateDocumentID,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// readDatabase loads the backing file into memory. A missing file or
// one that fails to decode reads as an empty Database; callers cannot
// distinguish "never written" from "corrupted".
func (e *DocumentStorageEngine) readDatabase() Database {
	data, err := os.ReadFile(e.FilePath)
	if err != nil {
		if e.logger != nil && !os.IsNotExist(err) {
			e.logger.Debugf("Could not read data file %s, starting empty: %s", e.FilePath, err)
		}
		return make(Database)
	}

	db := make(Database)
	if err := helpers.DecodeExtJSON(data, &db); err != nil {
		if e.logger != nil {
			e.logger.Debugf("Could not decode data file %s, starting empty: %s", e.FilePath, err)
		}
		// Decode may have filled part of the map before failing
		return make(Database)
	}
	if db == nil {
		db = make(Database)
	}

	return db
}

// writeDatabase serializes the full Database over the backing file.
// The overwrite is in place, not temp-file-and-rename.
func (e *DocumentStorageEngine) writeDatabase(db Database) error {
	data, err := helpers.EncodeExtJSON(db)
	if err != nil {
		return fmt.Errorf("error encoding database: %w", err)
	}

	if err := os.WriteFile(e.FilePath, data, 0644); err != nil {
		return fmt.Errorf("error writing data file %s: %w", e.FilePath, err)
	}

	return nil
}

// acquireLock takes the cross-process lock when WithFileLock is set.
// The returned release function is always safe to call.
func (e *DocumentStorageEngine) acquireLock() (func(), error) {
	if !e.useFileLock {
		return func() {}, nil
	}
	return helpers.LockFile(e.FilePath + ".lock")
}

// Save stores data under docType, creating the type collection if
// needed. A document without an _id is new: it gets a fresh id and a
// _created timestamp. _updated is reset on every save. The _id is not
// checked against existing documents, so saving with an unrecognized
// id silently inserts under that id. Returns the document as stored.
func (e *DocumentStorageEngine) Save(docType string, data Document) (Document, error) {
	release, err := e.acquireLock()
	if err != nil {
		return nil, err
	}
	defer release()

	db := e.readDatabase()

	if _, ok := db[docType]; !ok {
		db[docType] = make(TypeCollection)
	}

	if data == nil {
		data = make(Document)
	}

	if _, ok := data[FieldID]; !ok {
		data[FieldID] = e.newID()
		data[FieldCreated] = helpers.Timestamp(e.now())
	}
	data[FieldUpdated] = helpers.Timestamp(e.now())

	id, ok := data[FieldID].(string)
	if !ok {
		return nil, fmt.Errorf("document _id must be a string, got %T", data[FieldID])
	}

	db[docType][id] = data
	if err := e.writeDatabase(db); err != nil {
		return nil, err
	}

	if e.logger != nil {
		e.logger.Debugw("Saved document", "type", docType, "id", id)
	}

	return data, nil
}

// Load returns the document stored under docType and id.
func (e *DocumentStorageEngine) Load(docType, id string) (Document, error) {
	db := e.readDatabase()

	docs, ok := db[docType]
	if !ok {
		return nil, &NotFoundError{Type: docType, ID: id}
	}

	doc, ok := docs[id]
	if !ok {
		return nil, &NotFoundError{Type: docType, ID: id}
	}

	return doc, nil
}

// DeleteDoc removes the document stored under docType and id. On a
// failed lookup nothing is written.
func (e *DocumentStorageEngine) DeleteDoc(docType, id string) error {
	release, err := e.acquireLock()
	if err != nil {
		return err
	}
	defer release()

	db := e.readDatabase()

	docs, ok := db[docType]
	if !ok {
		return &NotFoundError{Type: docType, ID: id}
	}
	if _, ok := docs[id]; !ok {
		return &NotFoundError{Type: docType, ID: id}
	}

	delete(docs, id)
	if err := e.writeDatabase(db); err != nil {
		return err
	}

	if e.logger != nil {
		e.logger.Debugw("Deleted document", "type", docType, "id", id)
	}

	return nil
}

// DeleteAllDocs removes every document under docType, one full
// read-modify-write cycle per document. The type collection itself
// survives, empty. Composing DeleteDoc is intentional simplicity over
// efficiency.
func (e *DocumentStorageEngine) DeleteAllDocs(docType string) error {
	ids, err := e.ListDocs(docType)
	if err != nil {
		return err
	}

	var errs error
	for _, id := range ids {
		errs = multierr.Append(errs, e.DeleteDoc(docType, id))
	}

	return errs
}

// DeleteType removes the entire collection for docType.
func (e *DocumentStorageEngine) DeleteType(docType string) error {
	release, err := e.acquireLock()
	if err != nil {
		return err
	}
	defer release()

	db := e.readDatabase()

	if _, ok := db[docType]; !ok {
		return &NotFoundError{Type: docType}
	}

	delete(db, docType)
	if err := e.writeDatabase(db); err != nil {
		return err
	}

	if e.logger != nil {
		e.logger.Debugw("Deleted type", "type", docType)
	}

	return nil
}

// ListDocs returns the ids of every document under docType, in no
// particular order.
func (e *DocumentStorageEngine) ListDocs(docType string) ([]string, error) {
	db := e.readDatabase()

	docs, ok := db[docType]
	if !ok {
		return nil, &NotFoundError{Type: docType}
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}

	return ids, nil
}

// ListTypes returns the type names present in the store, in no
// particular order. An empty or missing backing file yields an empty
// result, never an error.
func (e *DocumentStorageEngine) ListTypes() ([]string, error) {
	db := e.readDatabase()

	types := make([]string, 0, len(db))
	for docType := range db {
		types = append(types, docType)
	}

	return types, nil
}
