package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case resp.StatusCode() == http.StatusUnauthorized:
		// The backend answers 401 both for bad credentials and for a dead
		// token. A JWT-related body means the session died mid-flow.
		if strings.Contains(strings.ToLower(body), "jwt") || strings.Contains(strings.ToLower(body), "expired") {
			return fmt.Errorf("%w: %s", ErrSessionExpired, body)
		}
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case resp.StatusCode() == http.StatusNotFound || resp.StatusCode() == http.StatusNotAcceptable:
		// 406 is the data API's answer to a single-object request that
		// matched no rows.
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case resp.StatusCode() == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrTransient, resp.StatusCode(), body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// wrapTransportError classifies a resty call error (DNS, refused connection,
// timeout) as transient so the feed engine retries it on the next trigger.
func wrapTransportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransient, err)
}
