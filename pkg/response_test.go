package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponseBytes(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteResponseBytes(rec, ContentType.JSON, []byte(`{"key":"val"}`), http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, ContentType.JSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"key":"val"}`, rec.Body.String())
}

func TestWriteResponseBytes_NoContentType(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteResponseBytes(rec, "", []byte("whatever"), http.StatusOK)

	assert.Empty(t, rec.Header().Values("Content-Type"))
	assert.Equal(t, "whatever", rec.Body.String())
}

func TestWriteResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteResponse(rec, ContentType.JSON, `{"key":"val"}`, http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ContentType.JSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"key":"val"}`, rec.Body.String())
}

func TestWriteResponseOKHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponseBytesOK(rec, ContentType.JSON, []byte(`{"ok":true}`))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType.JSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	WriteJSONResponseOK(rec, `{"ok":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType.JSON, rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	WriteTextResponseOK(rec, "all good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType.Text, rec.Header().Get("Content-Type"))
	assert.Equal(t, "all good", rec.Body.String())
}
