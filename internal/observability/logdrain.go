package observability

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wingfantasy/wingfantasy/internal/config"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
)

// InitLogDrain builds the service logger. When the drain is enabled the
// logger fans out to stdout and an HTTP log sink; otherwise it logs to
// stdout only.
func InitLogDrain(cfg config.Config, baseLogger *logging.Logger) (*logging.Logger, func(context.Context) error, error) {
	if baseLogger == nil {
		baseLogger = logging.NewJSON(cfg.LogLevel)
	}

	if !cfg.LogDrainEnabled {
		baseLogger.Info("log drain disabled", "reason", "LOG_DRAIN_ENABLED=false")
		return baseLogger, func(context.Context) error { return nil }, nil
	}

	endpoint := normalizeDrainEndpoint(cfg.LogDrainEndpoint)
	if endpoint == "" {
		return nil, nil, fmt.Errorf("log drain endpoint cannot be empty")
	}

	encoderCfg := logging.EncoderConfig()

	stdoutCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		cfg.LogLevel,
	)

	shipper := newDrainShipper(endpoint, strings.TrimSpace(cfg.LogDrainToken), cfg.LogDrainTimeout)
	drainCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(shipper),
		cfg.LogDrainMinLevel,
	)

	logger := logging.FromZap(zap.New(
		zapcore.NewTee(stdoutCore, drainCore),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	))

	logger.Info("log drain enabled",
		"endpoint", endpoint,
		"min_level", cfg.LogDrainMinLevel.String(),
		"service_name", cfg.ServiceName,
	)

	shutdown := func(ctx context.Context) error {
		if ctx == nil {
			ctx = context.Background()
		}
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			withTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			ctx = withTimeout
		}
		if err := shipper.Close(ctx); err != nil {
			return fmt.Errorf("drain log queue: %w", err)
		}
		if err := logger.Sync(); err != nil && !isIgnorableSyncError(err) {
			return err
		}
		return nil
	}

	return logger, shutdown, nil
}

func normalizeDrainEndpoint(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

// drainShipper posts encoded log lines to the drain endpoint from a
// background goroutine so logging never blocks request handling.
type drainShipper struct {
	endpoint  string
	token     string
	client    *http.Client
	queue     chan []byte
	mu        sync.RWMutex
	closeOnce sync.Once
	closed    atomic.Bool
	wg        sync.WaitGroup
	dropped   atomic.Uint64
}

func newDrainShipper(endpoint, token string, timeout time.Duration) *drainShipper {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	s := &drainShipper{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: timeout},
		queue:    make(chan []byte, 1024),
	}
	s.wg.Add(1)
	go s.run()

	return s
}

func (s *drainShipper) Write(p []byte) (int, error) {
	payload := bytes.TrimSpace(p)
	if len(payload) == 0 {
		return len(p), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed.Load() {
		return len(p), nil
	}

	// zap reuses its buffers after Write returns.
	copied := make([]byte, len(payload))
	copy(copied, payload)

	select {
	case s.queue <- copied:
	default:
		dropped := s.dropped.Add(1)
		if dropped == 1 || dropped%100 == 0 {
			fmt.Fprintf(os.Stderr, "log drain queue full; dropped=%d\n", dropped)
		}
	}

	return len(p), nil
}

func (s *drainShipper) Sync() error { return nil }

func (s *drainShipper) run() {
	defer s.wg.Done()

	for payload := range s.queue {
		s.send(payload)
	}
}

func (s *drainShipper) send(payload []byte) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		fmt.Fprintf(os.Stderr, "log drain request failed: %v\n", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log drain send failed: %v\n", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		fmt.Fprintf(os.Stderr, "log drain got status=%d\n", resp.StatusCode)
	}
}

func (s *drainShipper) Close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed.Store(true)
		close(s.queue)
		s.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isIgnorableSyncError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "bad file descriptor") || strings.Contains(msg, "invalid argument")
}
