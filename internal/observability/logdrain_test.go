package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/wingfantasy/wingfantasy/internal/config"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
)

func TestNormalizeDrainEndpoint(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"logs.example.com", "https://logs.example.com"},
		{"http://localhost:9000/ingest", "http://localhost:9000/ingest"},
		{"https://logs.example.com/v1", "https://logs.example.com/v1"},
		{"  logs.example.com/ingest   ", "https://logs.example.com/ingest"},
	}

	for _, tc := range cases {
		if got := normalizeDrainEndpoint(tc.in); got != tc.want {
			t.Fatalf("normalizeDrainEndpoint(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInitLogDrain_DisabledReturnsBaseLogger(t *testing.T) {
	base := logging.NewNop()

	logger, shutdown, err := InitLogDrain(config.Config{LogDrainEnabled: false}, base)
	if err != nil {
		t.Fatalf("init log drain: %v", err)
	}
	if logger != base {
		t.Fatalf("expected base logger back when drain is disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestDrainShipper_DeliversPayloads(t *testing.T) {
	var mu sync.Mutex
	var received []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		received = append(received, string(body))
		mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	shipper := newDrainShipper(srv.URL, "token", time.Second)
	if _, err := shipper.Write([]byte(`{"msg":"first"}` + "\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := shipper.Write([]byte(`{"msg":"second"}` + "\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shipper.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 2 {
		t.Fatalf("expected 2 payloads, got %d", len(received))
	}
	if received[0] != `{"msg":"first"}` {
		t.Fatalf("unexpected first payload: %s", received[0])
	}
}

func TestDrainShipper_WriteAfterCloseIsNoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	shipper := newDrainShipper(srv.URL, "", time.Second)
	if err := shipper.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := shipper.Write([]byte(`{"msg":"late"}`)); err != nil {
		t.Fatalf("write after close: %v", err)
	}
}
