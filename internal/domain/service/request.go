package service

import (
	"fmt"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/Badsnus/qrage/pkg/platform"
	qr "github.com/Badsnus/qrage/pkg/qrcode"
)

// BuildRequest assembles an export request from the current session and
// the user's stored style. background holds the already fetched photo, if any.
func BuildRequest(session entity.Session, prefs entity.Preferences, background []byte, size int) (qr.ExportRequest, error) {
	if session.Payload == "" {
		return qr.ExportRequest{}, errorz.ErrNoSession
	}
	st, err := StyleFromPreferences(prefs)
	if err != nil {
		return qr.ExportRequest{}, err
	}
	st.BackgroundImage = background

	req := qr.ExportRequest{
		Payload: session.Payload,
		Style:   st,
		Size:    size,
	}
	if session.Platform != "" {
		d, ok := platform.Lookup(session.Platform)
		if !ok {
			return qr.ExportRequest{}, fmt.Errorf("%w: unknown platform %q in session", errorz.ErrInvalidState, session.Platform)
		}
		req.Platform = d
	}
	return req, nil
}
