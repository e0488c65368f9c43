package helpers

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerateUUID is the alternative id scheme for callers that opt out
// of the default hash-based ids.
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateDocumentID produces a new document id by hashing a random
// integer together with the current wall-clock time at microsecond
// resolution. SHA-1 here is an identity scheme, not an integrity
// check; it keeps ids at 40 hex characters.
func GenerateDocumentID() string {
	epoch := float64(time.Now().UnixNano()) / float64(time.Second)
	seed := fmt.Sprintf("%d-%.6f", rand.Intn(100000), epoch)
	sum := sha1.Sum([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// Timestamp renders t as a UTC timestamp at second resolution, the
// format stored in the _created and _updated fields.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}
