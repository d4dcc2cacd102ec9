package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<nav>Menu</nav>
			<main>
				<h1>Desenvolvedor Backend</h1>
				<p>Requisitos: Go,   SQL e Docker</p>
			</main>
			<footer>Rodapé</footer>
		</body></html>`))
	}))
	defer server.Close()

	text, metadata, err := IngestFromURL(context.Background(), server.URL, false)

	require.NoError(t, err)
	assert.Contains(t, text, "Desenvolvedor Backend")
	assert.Contains(t, text, "Requisitos: Go, SQL e Docker")
	assert.NotContains(t, text, "Menu")

	require.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.URL)
	assert.Equal(t, "unknown", metadata.Platform)
	assert.NotEmpty(t, metadata.Hash)
}

func TestIngestFromURL_HTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHTTPRequestFailed))
}

func TestIngestFromURL_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHTTPRequestFailed))
}
