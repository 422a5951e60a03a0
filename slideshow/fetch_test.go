package slideshow

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lisheld/ledframe"
)

func TestFileFetcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.bin")
	want := []byte{0x4c, 0x45, 0x44, 0x41}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := FileFetcher{}.Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	_, err = FileFetcher{}.Fetch(context.Background(), filepath.Join(dir, "missing.bin"))
	if !errors.Is(err, ledframe.ErrFetchFailure) {
		t.Errorf("Expected ErrFetchFailure for missing file, got %v", err)
	}
}

func TestHTTPFetcher(t *testing.T) {
	body := []byte("artifact bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write(body)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)
	got, err := f.Fetch(context.Background(), srv.URL+"/ok")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("Expected %q, got %q", body, got)
	}

	_, err = f.Fetch(context.Background(), srv.URL+"/gone")
	if !errors.Is(err, ledframe.ErrFetchFailure) {
		t.Errorf("Expected ErrFetchFailure for 404, got %v", err)
	}
}

func TestHTTPFetcherHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewHTTPFetcher(time.Minute).Fetch(ctx, srv.URL)
	if !errors.Is(err, ledframe.ErrFetchFailure) {
		t.Errorf("Expected ErrFetchFailure on context timeout, got %v", err)
	}
}

func TestAutoFetcherRouting(t *testing.T) {
	httpStub := &scriptFetcher{payloads: map[string][]byte{
		"http://example/a":  {1},
		"https://example/b": {2},
	}}
	fileStub := &scriptFetcher{payloads: map[string][]byte{
		"/var/frames/c.bin": {3},
	}}
	f := &AutoFetcher{HTTP: httpStub, File: fileStub}

	for ref, want := range map[string]byte{
		"http://example/a":  1,
		"https://example/b": 2,
		"/var/frames/c.bin": 3,
	} {
		got, err := f.Fetch(context.Background(), ref)
		if err != nil {
			t.Fatalf("Fetch(%q) failed: %v", ref, err)
		}
		if got[0] != want {
			t.Errorf("Fetch(%q): expected backend payload %d, got %d", ref, want, got[0])
		}
	}
}

func TestBackoffValidate(t *testing.T) {
	tests := []struct {
		name    string
		backoff Backoff
		valid   bool
	}{
		{"defaults", DefaultConfig().Retry, true},
		{"zero_delay", Backoff{Delay: 0, MaxAttempts: 3}, false},
		{"negative_delay", Backoff{Delay: -time.Second, MaxAttempts: 3}, false},
		{"zero_attempts", Backoff{Delay: time.Second, MaxAttempts: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.backoff.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ledframe.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.Refs = []string{"a"}

	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults_with_ref", func(*Config) {}, true},
		{"no_refs", func(c *Config) { c.Refs = nil }, false},
		{"zero_tick", func(c *Config) { c.TickInterval = 0 }, false},
		{"cycle_not_above_tick", func(c *Config) { c.CycleTime = c.TickInterval }, false},
		{"bad_retry", func(c *Config) { c.Retry.MaxAttempts = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ledframe.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
