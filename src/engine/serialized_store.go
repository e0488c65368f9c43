package engine

import "sync"

// SerializedStore wraps a DocumentStore with a mutex so that all
// operations from one process run one at a time. This closes the
// in-process lost-update race between concurrent read-modify-write
// cycles; it does nothing about other processes sharing the file (use
// WithFileLock for that). Purely additive: semantics of the wrapped
// store are unchanged.
type SerializedStore struct {
	mu    sync.Mutex
	inner DocumentStore
}

func NewSerializedStore(inner DocumentStore) *SerializedStore {
	return &SerializedStore{inner: inner}
}

func (s *SerializedStore) Save(docType string, data Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Save(docType, data)
}

func (s *SerializedStore) Load(docType, id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Load(docType, id)
}

func (s *SerializedStore) DeleteDoc(docType, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.DeleteDoc(docType, id)
}

func (s *SerializedStore) DeleteAllDocs(docType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.DeleteAllDocs(docType)
}

func (s *SerializedStore) DeleteType(docType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.DeleteType(docType)
}

func (s *SerializedStore) ListDocs(docType string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ListDocs(docType)
}

func (s *SerializedStore) ListTypes() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ListTypes()
}
