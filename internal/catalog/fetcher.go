// Package catalog fetches Mercado Livre search result pages and turns them
// into product records.
package catalog

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/donaldgifford/opty-search/internal/metrics"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

const (
	// DefaultBaseURL is the Mercado Livre listing search root.
	DefaultBaseURL = "https://lista.mercadolivre.com.br/"
	// DefaultUserAgent identifies the scraper as a desktop browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Opty-Api Scraper"
	// DefaultTimeout bounds a whole fetch, redirects and body included.
	DefaultTimeout = 20 * time.Second

	// DefaultMaxBodyBytes caps the size of a results page.
	DefaultMaxBodyBytes = 16 << 20

	maxRedirects = 10
)

// errTooManyRedirects ends a redirect chain longer than maxRedirects.
var errTooManyRedirects = fmt.Errorf("stopped after %d redirects", maxRedirects)

// Fetcher retrieves the raw results page for a search term.
type Fetcher interface {
	Fetch(ctx context.Context, term domain.NormalizedQuery) ([]byte, error)
}

// MercadoLivreFetcher implements Fetcher with a single GET request per term.
type MercadoLivreFetcher struct {
	baseURL   string
	userAgent string
	maxBody   int64
	client    *http.Client
	log       *slog.Logger
}

// FetcherOption configures the MercadoLivreFetcher.
type FetcherOption func(*MercadoLivreFetcher)

// WithBaseURL overrides the listing search root. The term is appended to it.
func WithBaseURL(u string) FetcherOption {
	return func(f *MercadoLivreFetcher) {
		if u != "" {
			f.baseURL = u
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *MercadoLivreFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) FetcherOption {
	return func(f *MercadoLivreFetcher) {
		f.client = hc
	}
}

// WithTimeout sets the client timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *MercadoLivreFetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithMaxBodyBytes caps how much of a results page is read.
func WithMaxBodyBytes(n int64) FetcherOption {
	return func(f *MercadoLivreFetcher) {
		if n > 0 {
			f.maxBody = n
		}
	}
}

// WithFetcherLogger sets a custom logger.
func WithFetcherLogger(l *slog.Logger) FetcherOption {
	return func(f *MercadoLivreFetcher) {
		f.log = l
	}
}

// NewMercadoLivreFetcher creates a fetcher. The underlying client follows
// up to 10 redirects and is safe for concurrent use.
func NewMercadoLivreFetcher(opts ...FetcherOption) *MercadoLivreFetcher {
	f := &MercadoLivreFetcher{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		maxBody:   DefaultMaxBodyBytes,
		client:    &http.Client{Timeout: DefaultTimeout},
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client.CheckRedirect == nil {
		c := *f.client
		c.CheckRedirect = limitRedirects
		f.client = &c
	}
	return f
}

func limitRedirects(_ *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return errTooManyRedirects
	}
	return nil
}

// SearchURL returns the results page URL for term. Spaces become '+'.
func (f *MercadoLivreFetcher) SearchURL(term domain.NormalizedQuery) string {
	return f.baseURL + url.QueryEscape(string(term))
}

// Fetch downloads the results page for term. Exactly one attempt is made.
func (f *MercadoLivreFetcher) Fetch(
	ctx context.Context,
	term domain.NormalizedQuery,
) (body []byte, err error) {
	start := time.Now()
	defer func() {
		metrics.CatalogFetchDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.CatalogFetchErrorsTotal.WithLabelValues(KindLabel(err)).Inc()
		}
	}()

	if strings.TrimSpace(string(term)) == "" {
		return nil, &FetchError{Kind: ErrInternal, Err: errors.New("empty search term")}
	}

	u := f.SearchURL(term)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, &FetchError{Kind: ErrInternal, URL: u, Err: fmt.Errorf("creating HTTP request: %w", err)}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: classifyTransport(err), URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &FetchError{Kind: ErrUpstreamUnavailable, URL: u, StatusCode: resp.StatusCode}
	}

	// A connection lost mid-body is a transport failure like any other.
	body, err = io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, &FetchError{
			Kind: classifyTransport(err),
			URL:  u,
			Err:  fmt.Errorf("reading response body: %w", err),
		}
	}

	if int64(len(body)) > f.maxBody {
		metrics.CatalogBodyTruncatedTotal.Inc()
		f.log.Warn("results page truncated",
			"url", u,
			"limit_bytes", f.maxBody,
		)
		body = body[:f.maxBody]
	}

	return body, nil
}

// classifyTransport maps a client error to a failure category. Anything
// that means the catalog could not be reached in time is a timeout: dial,
// TLS handshake, redirect loop, lost connection.
func classifyTransport(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrUpstreamTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return ErrUpstreamTimeout
	case errors.Is(err, context.Canceled):
		return ErrInternal
	case isConnectionError(err), isTLSError(err), errors.Is(err, errTooManyRedirects):
		return ErrUpstreamTimeout
	default:
		return ErrInternal
	}
}

func isTLSError(err error) bool {
	var certErr *tls.CertificateVerificationError
	var headerErr tls.RecordHeaderError
	var authErr x509.UnknownAuthorityError
	var hostErr x509.HostnameError
	var invalidErr x509.CertificateInvalidError
	return errors.As(err, &certErr) ||
		errors.As(err, &headerErr) ||
		errors.As(err, &authErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr)
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	var dnsErr *net.DNSError
	return errors.As(err, &opErr) ||
		errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF)
}
