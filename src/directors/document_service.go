package directors

import (
	"fmt"

	"go.uber.org/zap"

	"jsonstore/src/engine"
	"jsonstore/src/settings"
)

// DocumentService sits between callers and the storage engine. The
// engine owns all persistence semantics; the service adds structured
// logging and consistent error context.
type DocumentService struct {
	store    engine.DocumentStore
	settings *settings.Arguments
	logger   *zap.SugaredLogger
}

func NewDocumentService(store engine.DocumentStore, logger *zap.SugaredLogger,
	settings *settings.Arguments) *DocumentService {
	return &DocumentService{
		store:    store,
		settings: settings,
		logger:   logger,
	}
}

func (s *DocumentService) SaveDocument(docType string, data engine.Document) (engine.Document, error) {
	doc, err := s.store.Save(docType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to save '%s' document: %w", docType, err)
	}

	if s.settings.Debug {
		s.logger.Infow("Saved document", "type", docType, "id", doc[engine.FieldID])
	}
	return doc, nil
}

func (s *DocumentService) GetDocument(docType, id string) (engine.Document, error) {
	doc, err := s.store.Load(docType, id)
	if err != nil {
		return nil, err
	}

	if s.settings.Debug && s.settings.Verbose {
		s.logger.Infow("Loaded document", "type", docType, "id", id)
	}
	return doc, nil
}

func (s *DocumentService) RemoveDocument(docType, id string) error {
	if err := s.store.DeleteDoc(docType, id); err != nil {
		return err
	}

	if s.settings.Debug {
		s.logger.Infow("Removed document", "type", docType, "id", id)
	}
	return nil
}

func (s *DocumentService) RemoveAllDocuments(docType string) error {
	if err := s.store.DeleteAllDocs(docType); err != nil {
		return fmt.Errorf("failed to remove all '%s' documents: %w", docType, err)
	}

	if s.settings.Debug {
		s.logger.Infow("Removed all documents", "type", docType)
	}
	return nil
}

func (s *DocumentService) RemoveType(docType string) error {
	if err := s.store.DeleteType(docType); err != nil {
		return err
	}

	if s.settings.Debug {
		s.logger.Infow("Removed type", "type", docType)
	}
	return nil
}

func (s *DocumentService) ListDocumentIDs(docType string) ([]string, error) {
	return s.store.ListDocs(docType)
}

func (s *DocumentService) ListDocumentTypes() ([]string, error) {
	return s.store.ListTypes()
}
