package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"reloop-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeImageHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "bottle.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestClassifySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/classify", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.NotEmpty(t, r.MultipartForm.File["image"])

		json.NewEncoder(w).Encode(domain.ClassifierResponse{
			Success:        true,
			Classification: domain.ClassificationSafe,
			Item: domain.ScannedItem{
				ObjectName:     "Water Bottle",
				Category:       "Plastic",
				Confidence:     0.92,
				EstimatedCoins: 25,
				CO2Savings:     0.5,
				Recyclable:     true,
			},
		})
	}))
	defer srv.Close()

	c := &classifierClient{baseURL: srv.URL, client: srv.Client()}
	result, err := c.Classify(context.Background(), fakeImageHeader(t))
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationSafe, result.Classification)
	assert.Equal(t, 25, result.Item.EstimatedCoins)
}

func TestClassifyRejectedItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.ClassifierResponse{Success: false})
	}))
	defer srv.Close()

	c := &classifierClient{baseURL: srv.URL, client: srv.Client()}
	_, err := c.Classify(context.Background(), fakeImageHeader(t))
	assert.ErrorIs(t, err, domain.ErrScanRejected)
}

func TestClassifyServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &classifierClient{baseURL: srv.URL, client: srv.Client()}
	_, err := c.Classify(context.Background(), fakeImageHeader(t))
	assert.ErrorIs(t, err, domain.ErrScanServiceUnavailable)
}

func TestClassifyServiceUnreachable(t *testing.T) {
	c := &classifierClient{baseURL: "http://127.0.0.1:1", client: http.DefaultClient}
	_, err := c.Classify(context.Background(), fakeImageHeader(t))
	assert.ErrorIs(t, err, domain.ErrScanServiceUnavailable)
}
