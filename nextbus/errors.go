package nextbus

import "fmt"

// HTTPError reports a non-2xx response from the feed.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("nextbus: unexpected HTTP status %d", e.Status)
}

// ContentTypeError reports a response whose Content-Type header is outside
// the allow-list (anything containing "xml" or "text/plain").
type ContentTypeError struct {
	ContentType string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("nextbus: disallowed content type %q", e.ContentType)
}

// PayloadTooLargeError reports a response whose declared or measured body
// size exceeds the ceiling. Size is the offending byte count.
type PayloadTooLargeError struct {
	Size int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("nextbus: response body of %d bytes exceeds limit", e.Size)
}

// ParseError reports a body that is not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("nextbus: malformed feed document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FeedError reports an in-band <Error> element returned by the feed with a
// 200 status, typically for an unknown route or stop tag.
type FeedError struct {
	Message     string
	ShouldRetry bool
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("nextbus: feed error: %s", e.Message)
}
