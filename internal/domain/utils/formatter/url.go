package formatter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
)

// URL trims raw and checks that it is an absolute URL with a host.
func URL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: url is required", errorz.ErrInvalidInput)
	}
	if !IsURL(s) {
		return "", fmt.Errorf("%w: invalid url format", errorz.ErrInvalidInput)
	}
	return s, nil
}

// IsURL reports whether s parses as scheme://host[...].
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
