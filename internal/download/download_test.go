package download_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creature-engine/internal/download"
)

func TestFetchModelByURLExtension(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("glTF binary payload"))
	}))
	defer srv.Close()

	dest := t.TempDir()
	saved, err := download.Fetch(srv.URL+"/models/dragon.glb", dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "dragon.glb"), saved)

	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, "glTF binary payload", string(data))
}

func TestFetchUsesContentTypeAndDisposition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "model/gltf-binary")
		w.Header().Set("Content-Disposition", `attachment; filename="wolf pack.bin"`)
		_, _ = w.Write([]byte("glTF"))
	}))
	defer srv.Close()

	dest := t.TempDir()
	saved, err := download.Fetch(srv.URL+"/dl", dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "wolf_pack.bin.glb"), saved)
}

func TestFetchRejectsNonModelContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	_, err := download.Fetch(srv.URL+"/page", t.TempDir())
	assert.Error(t, err)
}

func TestFetchPropagatesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := download.Fetch(srv.URL+"/missing.glb", t.TempDir())
	assert.ErrorContains(t, err, "HTTP 404")
}
