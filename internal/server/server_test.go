package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/handler"
	handlerhttp "github.com/MKhiriev/go-task-keeper/internal/handler/http"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	require.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestHTTPServer_ServesUntilShutdown(t *testing.T) {
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3").AnyTimes()

	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}
	h := handlerhttp.NewHandler(&service.Services{AppInfoService: appInfo}, cfg, metrics.New(), logger.Nop())
	srv := newHTTPServer(h.Init(), cfg, logger.Nop())

	listener, err := net.Listen("tcp", cfg.HTTPAddress)
	require.NoError(t, err)

	served := make(chan struct{})
	go func() {
		defer close(served)
		srv.serve(listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/version")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", string(body))

	srv.Shutdown()

	select {
	case <-served:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}

func TestRun_StopsWhenContextIsDone(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	h := handlerhttp.NewHandler(&service.Services{}, cfg, nil, logger.Nop())
	s := &server{
		httpServer: newHTTPServer(h.Init(), cfg, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}
