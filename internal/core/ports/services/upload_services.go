package services

import "context"

// UploadFile is an in-memory file buffer admitted from a multipart request.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// UploaderSvcFacade relays admitted file buffers to blob storage (or local
// disk) and returns stable URLs.
type UploaderSvcFacade interface {
	// StoreAll validates every file against the mime allow-list and size
	// bound before persisting any of them (all-or-nothing admission), then
	// stores each and returns their URLs in input order.
	StoreAll(ctx context.Context, files []UploadFile) ([]string, error)
}
