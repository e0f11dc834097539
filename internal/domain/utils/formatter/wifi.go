package formatter

import (
	"fmt"
	"strings"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
)

type Security string

const (
	WPA    Security = "WPA"
	WEP    Security = "WEP"
	NoPass Security = "nopass"
)

// ParseSecurity maps user input to a security type, WPA when empty.
func ParseSecurity(s string) (Security, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wpa", "wpa2", "wpa3":
		return WPA, nil
	case "wep":
		return WEP, nil
	case "nopass", "none", "open":
		return NoPass, nil
	}
	return "", fmt.Errorf("%w: unknown security type %q", errorz.ErrInvalidInput, s)
}

type WiFi struct {
	SSID     string
	Password string
	Security Security
	Hidden   bool
}

var wifiEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)

// WiFiPayload serializes w as WIFI:T:<type>;S:<ssid>;P:<password>;;
func WiFiPayload(w WiFi) (string, error) {
	if w.SSID == "" {
		return "", fmt.Errorf("%w: network name is required", errorz.ErrInvalidInput)
	}
	if w.Security == "" {
		w.Security = WPA
	}
	if w.Security != NoPass && w.Password == "" {
		return "", fmt.Errorf("%w: password is required for %s", errorz.ErrInvalidInput, w.Security)
	}

	var sb strings.Builder
	sb.WriteString("WIFI:T:" + string(w.Security) + ";S:" + wifiEscaper.Replace(w.SSID) + ";")
	if w.Security != NoPass {
		sb.WriteString("P:" + wifiEscaper.Replace(w.Password) + ";")
	}
	if w.Hidden {
		sb.WriteString("H:true;")
	}
	sb.WriteString(";")
	return sb.String(), nil
}

// ParseWiFi reads a payload produced by WiFiPayload.
func ParseWiFi(payload string) (WiFi, error) {
	body, ok := strings.CutPrefix(payload, "WIFI:")
	if !ok {
		return WiFi{}, fmt.Errorf("%w: not a wifi payload", errorz.ErrInvalidInput)
	}

	var (
		w      WiFi
		fields []string
		cur    strings.Builder
	)
	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\\':
			if i+1 < len(body) {
				i++
				cur.WriteByte(body[i])
			}
		case ';':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}

	for _, f := range fields {
		key, value, found := strings.Cut(f, ":")
		if !found {
			continue
		}
		switch key {
		case "T":
			w.Security = Security(value)
		case "S":
			w.SSID = value
		case "P":
			w.Password = value
		case "H":
			w.Hidden = value == "true"
		}
	}
	if w.SSID == "" {
		return WiFi{}, fmt.Errorf("%w: missing network name", errorz.ErrInvalidInput)
	}
	return w, nil
}
