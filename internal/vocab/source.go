package vocab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// MaxSourceSize caps how much of a vocabulary source is read.
const MaxSourceSize = 10 * 1024 * 1024

// DefaultFetchTimeout bounds a remote fetch when the caller passes no client.
const DefaultFetchTimeout = 30 * time.Second

// Source retrieves the raw vocabulary text. Fetch is called once per load.
//
// Implementations return a *domain.LoadError of kind Unreachable on failure.
type Source interface {
	Fetch(ctx context.Context) (string, error)
	// Location describes where the text comes from, for logs.
	Location() string
}

// NewSource picks a Source for location: http(s) URLs are fetched with
// client, anything else is read from the filesystem. A nil client uses one
// with DefaultFetchTimeout.
func NewSource(location string, client *http.Client) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New("vocabulary source location cannot be empty")
	}

	u, err := url.Parse(location)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		if client == nil {
			client = &http.Client{Timeout: DefaultFetchTimeout}
		}
		return &HTTPSource{url: u.String(), client: client}, nil
	}

	return &FileSource{path: location}, nil
}

// FileSource reads a vocabulary file from disk.
type FileSource struct {
	path string
}

// NewFileSource returns a Source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Location implements Source.
func (s *FileSource) Location() string {
	return s.path
}

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.NewUnreachableError(err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return "", domain.NewUnreachableError(fmt.Errorf("open vocabulary file: %w", err))
	}
	defer f.Close()

	return readLimited(f)
}

// HTTPSource fetches a vocabulary file over http(s).
type HTTPSource struct {
	url    string
	client *http.Client
}

// Location implements Source.
func (s *HTTPSource) Location() string {
	return s.url
}

// Fetch implements Source. Any status other than 200 is treated as
// unreachable.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", domain.NewUnreachableError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", domain.NewUnreachableError(fmt.Errorf("fetch vocabulary: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewUnreachableError(fmt.Errorf("fetch vocabulary: unexpected status %d", resp.StatusCode))
	}

	if resp.ContentLength > MaxSourceSize {
		return "", domain.NewUnreachableError(
			fmt.Errorf("content length %d exceeds limit of %d bytes", resp.ContentLength, MaxSourceSize))
	}

	return readLimited(resp.Body)
}

// readLimited reads at most MaxSourceSize bytes. One extra byte is requested
// so an oversized source is detected instead of silently truncated.
func readLimited(r io.Reader) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r, MaxSourceSize+1))
	if err != nil {
		return "", domain.NewUnreachableError(fmt.Errorf("read vocabulary: %w", err))
	}
	if len(body) > MaxSourceSize {
		return "", domain.NewUnreachableError(
			fmt.Errorf("vocabulary exceeds maximum size of %d bytes", MaxSourceSize))
	}
	return string(body), nil
}

// Load fetches and parses a vocabulary source.
func Load(ctx context.Context, src Source) ([]domain.VocabularyEntry, *ParseReport, error) {
	raw, err := src.Fetch(ctx)
	if err != nil {
		return nil, &ParseReport{}, err
	}
	return ParseString(raw)
}
