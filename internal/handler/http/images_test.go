package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/farm-ledger/internal/service"
	"github.com/MKhiriev/farm-ledger/internal/store"
	"github.com/MKhiriev/farm-ledger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeImage_Success(t *testing.T) {
	blobs := &fakeBlobService{
		fetchImageFn: func(ctx context.Context, key string) (models.Blob, error) {
			require.Equal(t, "1693000000000-abc.jpg", key)
			return models.Blob{ContentType: "image/jpeg", Data: []byte("jpeg-bytes")}, nil
		},
	}
	router := newTestHandler(&service.Services{BlobService: blobs}).Init()

	// No Authorization header: image serving is public.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/images/1693000000000-abc.jpg", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000", rec.Header().Get("Cache-Control"))
	assert.Equal(t, []byte("jpeg-bytes"), rec.Body.Bytes())
}

func TestServeImage_NotFound(t *testing.T) {
	blobs := &fakeBlobService{
		fetchImageFn: func(ctx context.Context, key string) (models.Blob, error) {
			return models.Blob{}, store.ErrBlobNotFound
		},
	}
	router := newTestHandler(&service.Services{BlobService: blobs}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/images/missing.jpg", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "image not found", resp.Error)
}

func TestUploadImage_ReturnsPublicURL(t *testing.T) {
	var gotUpload models.ImageUpload
	blobs := &fakeBlobService{
		uploadNoteImageFn: func(ctx context.Context, upload models.ImageUpload) (string, error) {
			gotUpload = upload
			return "note-1693000000000-abc.png", nil
		},
	}
	router := newTestHandler(&service.Services{BlobService: blobs}).Init()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "pasture.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/upload", &buf, w.FormDataContentType()))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "http://localhost:8080/api/images/note-1693000000000-abc.png", resp.URL)

	assert.Equal(t, "pasture.png", gotUpload.Filename)
	assert.Equal(t, []byte("png-bytes"), gotUpload.Data)
}

func TestUploadImage_MissingPart(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("unrelated", "value"))
	require.NoError(t, w.Close())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/upload", &buf, w.FormDataContentType()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "image is required", resp.Error)
}

func TestUploadImage_RequiresAuth(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/upload", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
