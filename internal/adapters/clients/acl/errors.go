// Package acl is the anti-corruption layer between the remote version
// manifest and the domain. Wire DTOs and their translators live in
// acl/manifest; this package owns the HTTP plumbing and error mapping.
package acl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
)

// maxErrorBody bounds how much of an error response is read for a detail
// message. Meta hosts sit behind CDNs that answer with whole HTML pages.
const maxErrorBody = 4 << 10

// TranslateHTTPError maps a non-200 manifest response to a domain error
// wrapping one of the domain sentinels. Statuses with no domain meaning
// produce a plain error carrying the code.
func TranslateHTTPError(resp *http.Response) error {
	detail := errorDetail(resp)

	var sentinel error
	switch code := resp.StatusCode; {
	case code == http.StatusNotFound || code == http.StatusGone:
		sentinel = domain.ErrNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		sentinel = domain.ErrValidation
	case code == http.StatusConflict:
		sentinel = domain.ErrConflict
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		sentinel = domain.ErrUnavailable
	default:
		return fmt.Errorf("manifest host answered %d: %s", code, detail)
	}
	return fmt.Errorf("manifest host: %s: %w", detail, sentinel)
}

// errorDetail prefers the detail of an RFC 7807 body, then the first line
// of a plain text body, then the status text.
func errorDetail(resp *http.Response) string {
	fallback := http.StatusText(resp.StatusCode)
	if resp.Body == nil {
		return fallback
	}
	body := io.LimitReader(resp.Body, maxErrorBody)

	switch ct := resp.Header.Get("Content-Type"); {
	case strings.HasPrefix(ct, "application/problem+json"):
		var problem struct {
			Detail string `json:"detail"`
		}
		if json.NewDecoder(body).Decode(&problem) == nil && problem.Detail != "" {
			return problem.Detail
		}
	case strings.HasPrefix(ct, "text/plain"):
		sc := bufio.NewScanner(body)
		if sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				return line
			}
		}
	}
	return fallback
}
