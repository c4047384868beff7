package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestShutdownManager_RunsAllInOrder(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	var order []int
	sm.Register(func(ctx context.Context) error { order = append(order, 1); return errors.New("fail") })
	sm.Register(func(ctx context.Context) error { order = append(order, 2); return nil })

	sm.Shutdown(context.Background())

	assert.Equal(t, []int{1, 2}, order)
}

func TestGracefulServer_ShutdownRunsComponents(t *testing.T) {
	s := NewGracefulServer(echo.New(), logger.NewNopLogger(), 0, 0)
	assert.Equal(t, 30*time.Second, s.shutdownTimeout)

	called := false
	s.OnShutdown(func(ctx context.Context) error {
		called = true
		return nil
	})

	err := s.Shutdown()

	assert.NoError(t, err)
	assert.True(t, called)
}
