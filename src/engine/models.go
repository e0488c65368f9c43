package engine

// Reserved document fields. The engine owns these; everything else in
// a document belongs to the caller.
const (
	// FieldID is the document id, assigned once at creation.
	FieldID = "_id"

	// FieldCreated is the creation timestamp, assigned once.
	FieldCreated = "_created"

	// FieldUpdated is the last-save timestamp, reassigned on every save.
	FieldUpdated = "_updated"
)

// Document is one stored record: a mapping from field name to any
// JSON-like value (string, number, boolean, nil, nested map, or slice
// thereof), plus the reserved fields above.
type Document map[string]interface{}

// TypeCollection is a map of document ids to Document objects.
type TypeCollection map[string]Document

// Database is the full persisted state: a map of type names to their
// collections. It only lives for the duration of a single operation;
// the backing file is the sole source of truth between calls.
type Database map[string]TypeCollection
