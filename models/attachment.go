package models

// Attachment references a binary blob held in object storage.
// The pair is stored alongside the owning record; the blob itself never
// enters the database.
type Attachment struct {
	// Key is the object-storage key the blob was uploaded under.
	Key string `json:"key"`

	// Link is the public location reference returned by the storage
	// backend at upload time.
	Link string `json:"link"`
}

// FileUpload carries the raw bytes of an uploaded file from the transport
// layer to the services that push them into object storage.
type FileUpload struct {
	// Filename is the client-supplied file name. Informational only;
	// storage keys are derived server-side.
	Filename string

	// ContentType is the MIME type declared in the multipart part.
	ContentType string

	// Data is the full file content.
	Data []byte
}
