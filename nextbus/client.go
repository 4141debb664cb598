package nextbus

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/campus-transit/busfeed/config"
)

// MaxBodyBytes is the default response-size ceiling (1 MiB). The size is
// checked twice: against the declared Content-Length before the body is
// read, and against the measured byte count while reading.
const MaxBodyBytes int64 = 1 << 20

const defaultTimeout = 10 * time.Second

// Client fetches documents from the feed. It performs exactly one request
// per call with no retry and no caching; retry policy belongs to the
// caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	agency     string
	maxBody    int64
}

// NewClient creates a feed client from the injected endpoint settings.
func NewClient(cfg config.FeedConfig) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = MaxBodyBytes
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		agency:     cfg.Agency,
		maxBody:    maxBody,
	}
}

// fetchDocument issues one GET for the given feed command and unmarshals the
// response body into doc. Failures are typed: HTTPError, ContentTypeError,
// PayloadTooLargeError or ParseError.
func (c *Client) fetchDocument(ctx context.Context, command string, params url.Values, doc any) error {
	q := url.Values{}
	q.Set("command", command)
	q.Set("a", c.agency)
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode}
	}
	if ct := resp.Header.Get("Content-Type"); !allowedContentType(ct) {
		return &ContentTypeError{ContentType: ct}
	}
	if resp.ContentLength > c.maxBody {
		return &PayloadTooLargeError{Size: resp.ContentLength}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return err
	}
	if int64(len(body)) > c.maxBody {
		return &PayloadTooLargeError{Size: int64(len(body))}
	}

	if err := xml.Unmarshal(body, doc); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

func allowedContentType(ct string) bool {
	ct = strings.ToLower(ct)
	return strings.Contains(ct, "xml") || strings.Contains(ct, "text/plain")
}

// errorElement is the feed's in-band error report, delivered with a 200
// status inside the body element.
type errorElement struct {
	ShouldRetry string `xml:"shouldRetry,attr"`
	Message     string `xml:",chardata"`
}

func (e *errorElement) toError() *FeedError {
	return &FeedError{
		Message:     SanitizeText(e.Message),
		ShouldRetry: safeBool(e.ShouldRetry),
	}
}
