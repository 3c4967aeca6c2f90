package contracts

import "context"

// DocumentBackend holds the raw bytes of named flat-file documents.
type DocumentBackend interface {
	// ReadDocument returns os.ErrNotExist wrapped when the document is missing.
	ReadDocument(ctx context.Context, name string) ([]byte, error)
	WriteDocument(ctx context.Context, name string, data []byte) error
	DocumentExists(ctx context.Context, name string) (bool, error)
	Ping(ctx context.Context) error
}
