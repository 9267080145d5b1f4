package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"attribute-browser/internal/catalog"
)

// DefaultTimeout bounds a single fetch of the attribute document.
const DefaultTimeout = 30 * time.Second

// DataLoadFailure is returned when the attribute document cannot be fetched or parsed.
type DataLoadFailure struct {
	Source string
	Err    error
}

func (e *DataLoadFailure) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

func (e *DataLoadFailure) Unwrap() error {
	return e.Err
}

// Message is the text shown to users in place of the views.
func (e *DataLoadFailure) Message() string {
	return fmt.Sprintf("Failed to load %s — Error: %v", e.Source, e.Err)
}

// StatusError reports a non-success HTTP response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// FailureMessage returns the user-facing message for a load error.
func FailureMessage(source string, err error) string {
	var failure *DataLoadFailure
	if errors.As(err, &failure) {
		return failure.Message()
	}
	return (&DataLoadFailure{Source: source, Err: err}).Message()
}

// Loader fetches the attribute document from a URL or a local file.
type Loader struct {
	HttpClient *http.Client
	logger     *zap.Logger
}

// New creates a Loader whose HTTP fetches time out after timeout.
func New(timeout time.Duration, logger *zap.Logger) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		HttpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Load reads and decodes the attribute document at source. Any failure is a *DataLoadFailure.
func (l *Loader) Load(ctx context.Context, source string) (map[string]json.RawMessage, error) {
	start := time.Now()
	data, err := l.read(ctx, source)
	if err != nil {
		return nil, &DataLoadFailure{Source: source, Err: err}
	}

	raw, err := catalog.Decode(data)
	if err != nil {
		return nil, &DataLoadFailure{Source: source, Err: err}
	}

	l.logger.Info("Attribute document loaded",
		zap.String("source", source),
		zap.Int("bytes", len(data)),
		zap.Int("records", len(raw)),
		zap.Duration("elapsed", time.Since(start)))
	return raw, nil
}

// LoadCatalog loads source and normalizes it into a Catalog.
func (l *Loader) LoadCatalog(ctx context.Context, source string) (*catalog.Catalog, error) {
	raw, err := l.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return catalog.New(raw), nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return l.fetch(ctx, source)
	case strings.HasPrefix(source, "file://"):
		return os.ReadFile(strings.TrimPrefix(source, "file://"))
	default:
		return os.ReadFile(source)
	}
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Always fetch the freshest document.
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := l.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
