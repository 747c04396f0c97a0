package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/realsense-capture-service/internal/config"
	"github.com/MKhiriev/realsense-capture-service/internal/handler"
	"github.com/MKhiriev/realsense-capture-service/internal/logger"
	"github.com/MKhiriev/realsense-capture-service/internal/service"
	"github.com/MKhiriev/realsense-capture-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerConfig(addr string) config.Server {
	return config.Server{
		HTTPAddress:     addr,
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: time.Second,
	}
}

func newTestHandlers(t *testing.T, storagePath string) *handler.Handlers {
	t.Helper()
	services := service.NewServices(models.Configuration{StoragePath: storagePath}, logger.Nop())
	h, err := handler.NewHandlers(services, testServerConfig("127.0.0.1:0"), logger.Nop())
	require.NoError(t, err)
	return h
}

// ─────────────────────────────────────────────
// NewServer
// ─────────────────────────────────────────────

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, testServerConfig("127.0.0.1:0"), logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(t, "/x"), testServerConfig(""), logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := testServerConfig("127.0.0.1:0")

	s, err := NewServer(newTestHandlers(t, "/x"), cfg, logger.Nop())
	require.NoError(t, err)

	hs := s.(*server).httpServer
	assert.Equal(t, cfg.HTTPAddress, hs.server.Addr)
	assert.Equal(t, cfg.RequestTimeout, hs.server.ReadHeaderTimeout)
	assert.Equal(t, cfg.RequestTimeout, hs.server.WriteTimeout)
	assert.Equal(t, cfg.ShutdownTimeout, hs.shutdownTimeout)
}

// ─────────────────────────────────────────────
// Serving
// ─────────────────────────────────────────────

func TestHTTPServer_ServesStoragePath(t *testing.T) {
	h := newTestHandlers(t, "/tmp/x")
	hs := newHTTPServer(h.HTTP.Init(), testServerConfig("127.0.0.1:0"), logger.Nop())

	ln, err := hs.listen()
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- hs.serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/tmp/x", string(body))

	hs.Shutdown()
	select {
	case err := <-served:
		assert.NoError(t, err, "shutdown must not be reported as an error")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}

func TestRun_StopsWhenContextDone(t *testing.T) {
	s, err := NewServer(newTestHandlers(t, "/x"), testServerConfig("127.0.0.1:0"), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after context cancellation")
	}
}

func TestRun_AddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	s, err := NewServer(newTestHandlers(t, "/x"), testServerConfig(occupied.Addr().String()), logger.Nop())
	require.NoError(t, err)

	err = s.(*server).run(context.Background())

	assert.Error(t, err)
}
