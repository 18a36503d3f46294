package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for writing bytes under a key and reading
// them back. Keys are request-scoped and never rewritten, so there is no
// partial-write hazard visible across requests.
type ObjectStore interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
