package engine

// Add custom error definitions here
import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a requested type or document does not
// exist in the store. ID is empty when the type itself was missing.
type NotFoundError struct {
	Type string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("no documents of type '%s' in store", e.Type)
	}
	return fmt.Sprintf("no '%s' document with id '%s'", e.Type, e.ID)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
