package assessment

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrRecordNotFound is returned when no bundle exists for a record
// identifier in the requested collection.
var ErrRecordNotFound = errors.New("record not found")

// ErrCredentialMismatch is returned when a report credential is valid but
// bound to a different record identifier than the one requested.
var ErrCredentialMismatch = errors.New("credential bound to a different record")

// RecordRepository is the document-store contract consumed by the
// pipeline: atomic single-document insert and lookup, addressed by
// collection name plus record identifier.
type RecordRepository interface {
	Insert(ctx context.Context, bundle *RecordBundle, collection string) error
	FindByRecordID(ctx context.Context, recordID, collection string) (*RecordBundle, error)

	// InsertRaw stores an arbitrary JSON document tagged with a record
	// identifier; used for the CRM response audit trail.
	InsertRaw(ctx context.Context, recordID string, doc json.RawMessage, collection string) error
}
