// Package slideshow drives the end-to-end display loop: fetch the next
// artifact, decode it, classify it, hand it to the temporal dither
// engine, wait, repeat.
package slideshow

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lisheld/ledframe"
)

// Fetcher obtains raw artifact bytes for a reference. The controller
// makes exactly one fetch attempt per cycle; transient failures are
// reported as ErrFetchFailure and handled by the cycle loop, never
// retried inside the fetcher.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// HTTPFetcher fetches artifact bytes over HTTP(S).
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns an HTTPFetcher with a bounded request timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

// Fetch performs a single GET for the reference.
func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledframe.ErrFetchFailure, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledframe.ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d",
			ledframe.ErrFetchFailure, ref, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ledframe.ErrFetchFailure, ref, err)
	}
	return data, nil
}

// FileFetcher reads artifact bytes from the local filesystem.
type FileFetcher struct{}

// Fetch reads the referenced file.
func (FileFetcher) Fetch(_ context.Context, ref string) ([]byte, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledframe.ErrFetchFailure, err)
	}
	return data, nil
}

// AutoFetcher routes each reference by scheme: http:// and https://
// go to the HTTP fetcher, everything else to the file fetcher.
type AutoFetcher struct {
	HTTP Fetcher
	File Fetcher
}

// NewAutoFetcher returns an AutoFetcher with default backends.
func NewAutoFetcher(httpTimeout time.Duration) *AutoFetcher {
	return &AutoFetcher{
		HTTP: NewHTTPFetcher(httpTimeout),
		File: FileFetcher{},
	}
}

// Fetch dispatches to the backend matching the reference's scheme.
func (f *AutoFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return f.HTTP.Fetch(ctx, ref)
	}
	return f.File.Fetch(ctx, ref)
}

// Backoff is the explicit retry policy for failed cycles: a fixed delay
// before the next attempt and a bound on consecutive attempts for the
// same reference before the controller gives up and moves on.
type Backoff struct {
	Delay       time.Duration
	MaxAttempts int
}

// Validate checks the policy values.
func (b Backoff) Validate() error {
	if b.Delay <= 0 {
		return fmt.Errorf("%w: backoff delay %v must be positive",
			ledframe.ErrInvalidConfig, b.Delay)
	}
	if b.MaxAttempts < 1 {
		return fmt.Errorf("%w: backoff attempts %d must be at least 1",
			ledframe.ErrInvalidConfig, b.MaxAttempts)
	}
	return nil
}
