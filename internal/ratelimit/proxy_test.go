package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelpepes/holderbot/internal/adapter"
	"github.com/pixelpepes/holderbot/internal/config"
	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/ratelimit"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func testConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		CallsPerWindow: 30,
		Window:         60 * time.Second,
		MaxWorkers:     4,
		MaxQueueSize:   64,
		MaxQueueTime:   time.Minute,
	}
}

func TestNewProxy_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.RateLimitConfig
	}{
		{
			name: "zero calls per window",
			cfg:  config.RateLimitConfig{CallsPerWindow: 0, Window: time.Minute},
		},
		{
			name: "zero window",
			cfg:  config.RateLimitConfig{CallsPerWindow: 30, Window: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ratelimit.NewProxy(tt.cfg, adapter.NewClock())
			assert.Error(t, err)
		})
	}
}

func TestProxy_RequestExecutesFunc(t *testing.T) {
	proxy, err := ratelimit.NewProxy(testConfig(), adapter.NewClock())
	require.NoError(t, err)
	defer func() { _ = proxy.Close() }()

	result, err := proxy.Request(context.Background(), func(ctx context.Context) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestProxy_RequestPropagatesError(t *testing.T) {
	proxy, err := ratelimit.NewProxy(testConfig(), adapter.NewClock())
	require.NoError(t, err)
	defer func() { _ = proxy.Close() }()

	wantErr := errors.New("upstream exploded")
	_, err = proxy.Request(context.Background(), func(ctx context.Context) (interface{}, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestProxy_RequestAfterClose(t *testing.T) {
	proxy, err := ratelimit.NewProxy(testConfig(), adapter.NewClock())
	require.NoError(t, err)
	require.NoError(t, proxy.Close())

	_, err = proxy.Request(context.Background(), func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.Error(t, err)
}

func TestProxy_ConcurrentCallers(t *testing.T) {
	proxy, err := ratelimit.NewProxy(testConfig(), adapter.NewClock())
	require.NoError(t, err)
	defer func() { _ = proxy.Close() }()

	var executed atomic.Int32
	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, err := proxy.Request(context.Background(), func(ctx context.Context) (interface{}, error) {
				executed.Add(1)
				return nil, nil
			})
			assert.NoError(t, err)
		}()
	}

	for i := 0; i < 20; i++ {
		<-done
	}
	close(done)
	assert.Equal(t, int32(20), executed.Load())
}

func TestRequest_TypedHelper(t *testing.T) {
	proxy, err := ratelimit.NewProxy(testConfig(), adapter.NewClock())
	require.NoError(t, err)
	defer func() { _ = proxy.Close() }()

	n, err := ratelimit.Request(context.Background(), proxy, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestRequest_NilProxyExecutesDirectly(t *testing.T) {
	n, err := ratelimit.Request(context.Background(), nil, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
