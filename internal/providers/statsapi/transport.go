package statsapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"mlb-storyteller-service/internal/providers"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// classifyTransport maps a transport-level error to the failure taxonomy.
// Timeouts are a distinct class from connection failures.
func classifyTransport(operation string, err error) *providers.Error {
	class := providers.FailureConnection
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		class = providers.FailureTimeout
	} else if errors.Is(err, context.DeadlineExceeded) {
		class = providers.FailureTimeout
	}
	return &providers.Error{
		Class:     class,
		Operation: operation,
		Message:   err.Error(),
		Err:       err,
	}
}

// classifyStatus maps a non-2xx HTTP status to the failure taxonomy. The body
// excerpt is kept for diagnostics only; callers branch on Class.
func classifyStatus(operation string, status int, body string) *providers.Error {
	var class providers.FailureClass
	switch {
	case status == http.StatusNotFound:
		class = providers.FailureNotFound
	case status >= 500:
		class = providers.FailureServerError
	case status >= 400:
		class = providers.FailureClientError
	default:
		class = providers.FailureUnknown
	}
	return &providers.Error{
		Class:      class,
		Operation:  operation,
		StatusCode: status,
		Message:    strings.TrimSpace(body),
	}
}
