package formatter

import (
	"fmt"
	"strings"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/pkg/platform"
)

// Social builds a profile link for handle on the given platform. For the
// custom platform the handle must already be a full URL.
func Social(key, handle string) (string, *platform.Descriptor, error) {
	d, ok := platform.Lookup(key)
	if !ok {
		return "", nil, fmt.Errorf("%w: unknown platform %q", errorz.ErrInvalidInput, key)
	}

	h := strings.TrimSpace(handle)
	if d.Key == platform.Custom {
		if h == "" {
			return "", nil, fmt.Errorf("%w: url is required", errorz.ErrInvalidInput)
		}
		if !IsURL(h) {
			return "", nil, fmt.Errorf("%w: invalid url format", errorz.ErrInvalidInput)
		}
		return h, d, nil
	}

	if h == "" {
		return "", nil, fmt.Errorf("%w: username is required", errorz.ErrInvalidInput)
	}
	return d.BaseURL + h, d, nil
}
