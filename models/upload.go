package models

// ImageUpload is an in-memory image received via a multipart form.
// Data is fully buffered at the transport layer; receipt photos are small
// enough that streaming is not worth the complexity.
type ImageUpload struct {
	// Filename is the client-supplied file name. Only its extension is used
	// when deriving the object-store key.
	Filename string

	// ContentType is the MIME type reported by the client, falling back to
	// "image/jpeg" when absent.
	ContentType string

	// Data is the raw image payload.
	Data []byte
}

// Blob is a binary object fetched from the object store together with the
// content type it was stored under.
type Blob struct {
	ContentType string
	Data        []byte
}
