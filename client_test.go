package aerofs

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	client, err := New("https://share.example.com/api/v1.2", "token")
	require.NoError(t, err)
	assert.Equal(t, "https://share.example.com/api/v1.2", client.endpoint)
	assert.Equal(t, DefaultChunkSize, client.chunkSize)
	assert.Same(t, http.DefaultClient, client.httpClient)
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	client, err := New("https://share.example.com/api/v1.2/", "token")
	require.NoError(t, err)
	assert.Equal(t, "https://share.example.com/api/v1.2", client.endpoint)
}

func TestNew_Validation(t *testing.T) {
	_, err := New("", "token")
	assert.ErrorIs(t, err, errEndpointRequired)

	_, err = New("https://share.example.com/api/v1.2", "")
	assert.ErrorIs(t, err, errAccessTokenRequired)

	_, err = New("https://share.example.com/api/v1.2", "token", WithChunkSize(0))
	assert.ErrorIs(t, err, errInvalidChunkSize)

	_, err = New("https://share.example.com/api/v1.2", "token", WithChunkSize(-1))
	assert.ErrorIs(t, err, errInvalidChunkSize)
}

func TestNew_Options(t *testing.T) {
	hc := &http.Client{Timeout: 5 * time.Second}
	client, err := New("https://share.example.com/api/v1.2", "token",
		WithHTTPClient(hc), WithChunkSize(1<<20))
	require.NoError(t, err)
	assert.Same(t, hc, client.httpClient)
	assert.Equal(t, 1<<20, client.chunkSize)
}
