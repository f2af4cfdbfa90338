package helpers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"indywinners/internal/domain"
)

// DefaultPage is the page served when the request carries no page parameter.
const DefaultPage = 1

// ParsePage reads the 1-based page parameter from the query string or a POST form.
// A missing parameter yields DefaultPage. A value that is not a positive integer
// (including an empty one) yields DefaultPage together with an error wrapping
// domain.ErrInvalidPage; callers decide whether to fall back or reject.
func ParsePage(r *http.Request) (int, error) {
	if err := r.ParseForm(); err != nil {
		return DefaultPage, fmt.Errorf("%w: %v", domain.ErrInvalidPage, err)
	}
	values, ok := r.Form["page"]
	if !ok || len(values) == 0 {
		return DefaultPage, nil
	}
	page, err := strconv.Atoi(values[0])
	if err != nil || page < 1 {
		return DefaultPage, fmt.Errorf("%w: got %q", domain.ErrInvalidPage, values[0])
	}
	return page, nil
}

// PageURL returns path with its page query parameter set to page.
func PageURL(path string, page int) string {
	return path + "?" + url.Values{"page": {strconv.Itoa(page)}}.Encode()
}
