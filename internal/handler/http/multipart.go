package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/farm-ledger/models"
)

// maxUploadMemory caps how much of a multipart body is buffered in memory
// before spilling to temporary files. Receipt photos from phone cameras stay
// well under this.
const maxUploadMemory = 10 << 20 // 10 MiB

// imageFromForm extracts the named file part of an already-parsed multipart
// form. A missing part returns (nil, nil): whether the image is mandatory is
// the caller's decision.
func imageFromForm(r *http.Request, field string) (*models.ImageUpload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %q form part: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading %q form part: %w", field, err)
	}

	return &models.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
