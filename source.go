package penmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultSource is the published IANA enterprise numbers registry.
const DefaultSource = "https://www.iana.org/assignments/enterprise-numbers.txt"

// DefaultEncoding is the charset assumed for registry text.
const DefaultEncoding = "utf-8"

// Acquisition errors.
var (
	// ErrRetrieval wraps every failure to read the registry source.
	ErrRetrieval = errors.New("unable to retrieve registry")
	// ErrUnknownEncoding is returned for a charset label htmlindex does not know.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// FetchOptions configures Fetch.
type FetchOptions struct {
	// Client performs HTTP requests. If nil, http.DefaultClient is used.
	Client *http.Client

	// Encoding is the charset label of the source, e.g. "utf-8", "latin1".
	// If empty, DefaultEncoding is used.
	Encoding string

	// Logger receives debug-level details of the fetch. If nil, nothing is logged.
	Logger *slog.Logger
}

// Fetch reads the whole registry from source and decodes it to text.
//
// A source starting with "http" is fetched with a GET request; anything else
// is a local file path, optionally prefixed with "file:". All read failures
// wrap ErrRetrieval.
func Fetch(ctx context.Context, source string, opts FetchOptions) (string, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return "", err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var data []byte
	if strings.HasPrefix(source, "http") {
		data, err = fetchHTTP(ctx, opts.Client, source)
	} else {
		data, err = os.ReadFile(strings.TrimPrefix(source, "file:"))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRetrieval, source, err)
	}
	logger.Debug("registry retrieved", "source", source, "bytes", len(data))

	text, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: decoding: %w", ErrRetrieval, source, err)
	}
	return string(text), nil
}

// LookupEncoding reports whether label names a supported charset.
func LookupEncoding(label string) error {
	_, err := lookupEncoding(label)
	return err
}

func lookupEncoding(label string) (encoding.Encoding, error) {
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	return enc, nil
}

func fetchHTTP(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
