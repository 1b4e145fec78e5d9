package aerofs

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDevices(t *testing.T) {
	var path string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`[{"id":"d1","owner":"alice@example.com","name":"work laptop","os_family":"Linux"}]`))
	}))

	devices, err := client.ListDevices(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "/users/alice@example.com/devices", path)
	require.Len(t, devices, 1)
	assert.Equal(t, DeviceID("d1"), devices[0].ID)
}

func TestUpdateDevice(t *testing.T) {
	var body map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"id":"d1","owner":"alice@example.com","name":"home desktop","os_family":"Linux"}`))
	}))

	device, err := client.UpdateDevice(context.Background(), "d1", "home desktop")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "home desktop"}, body)
	assert.Equal(t, "home desktop", device.Name)
}

func TestGetDeviceStatus(t *testing.T) {
	var path string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"online":true,"last_seen":"2024-03-01T10:00:00Z"}`))
	}))

	status, err := client.GetDeviceStatus(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "/devices/d1/status", path)
	assert.True(t, status.Online)
	assert.NotNil(t, status.LastSeen)
}
