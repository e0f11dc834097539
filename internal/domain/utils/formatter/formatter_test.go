package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/pkg/platform"
)

func TestURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"  https://example.com  ", "https://example.com", false},
		{"http://localhost:8080/a?b=c", "http://localhost:8080/a?b=c", false},
		{"", "", true},
		{"   ", "", true},
		{"example.com", "", true},
		{"mailto:jane@example.com", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := URL(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errorz.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWiFiPayload(t *testing.T) {
	tests := []struct {
		name string
		in   WiFi
		want string
	}{
		{
			name: "escapes special characters",
			in:   WiFi{SSID: "My;Net", Password: "p:a,ss", Security: WPA},
			want: `WIFI:T:WPA;S:My\;Net;P:p\:a\,ss;;`,
		},
		{
			name: "escapes backslash",
			in:   WiFi{SSID: `a\b`, Password: "x", Security: WEP},
			want: `WIFI:T:WEP;S:a\\b;P:x;;`,
		},
		{
			name: "escapes double quote",
			in:   WiFi{SSID: `"Home"`, Password: `say"hi`, Security: WPA},
			want: `WIFI:T:WPA;S:\"Home\";P:say\"hi;;`,
		},
		{
			name: "open network omits password",
			in:   WiFi{SSID: "Cafe", Security: NoPass},
			want: `WIFI:T:nopass;S:Cafe;;`,
		},
		{
			name: "hidden network",
			in:   WiFi{SSID: "Lab", Password: "secret", Hidden: true},
			want: `WIFI:T:WPA;S:Lab;P:secret;H:true;;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WiFiPayload(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWiFiPayloadInvalid(t *testing.T) {
	_, err := WiFiPayload(WiFi{Password: "x"})
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)

	_, err = WiFiPayload(WiFi{SSID: "Net", Security: WPA})
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)
}

func TestWiFiRoundTrip(t *testing.T) {
	tests := []WiFi{
		{SSID: "My;Net", Password: "p:a,ss", Security: WPA},
		{SSID: `back\slash;`, Password: `;;\,:`, Security: WEP, Hidden: true},
		{SSID: "Open", Security: NoPass},
		{SSID: `"quoted"`, Password: `a"b;c`, Security: WPA},
	}
	for _, in := range tests {
		t.Run(in.SSID, func(t *testing.T) {
			payload, err := WiFiPayload(in)
			require.NoError(t, err)

			out, err := ParseWiFi(payload)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestParseSecurity(t *testing.T) {
	s, err := ParseSecurity("")
	require.NoError(t, err)
	assert.Equal(t, WPA, s)

	s, err = ParseSecurity("Open")
	require.NoError(t, err)
	assert.Equal(t, NoPass, s)

	_, err = ParseSecurity("wpa9")
	assert.ErrorIs(t, err, errorz.ErrInvalidInput)
}

func TestSocial(t *testing.T) {
	got, d, err := Social("instagram", "  jane ")
	require.NoError(t, err)
	assert.Equal(t, "https://instagram.com/jane", got)
	assert.Equal(t, platform.Instagram, d.Key)
	assert.True(t, d.HasLogo())

	got, d, err = Social("custom", "https://jane.dev")
	require.NoError(t, err)
	assert.Equal(t, "https://jane.dev", got)
	assert.False(t, d.HasLogo())
}

func TestSocialInvalid(t *testing.T) {
	tests := []struct{ key, handle string }{
		{"instagram", "   "},
		{"custom", ""},
		{"custom", "jane"},
		{"myspace", "jane"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.handle, func(t *testing.T) {
			_, _, err := Social(tt.key, tt.handle)
			assert.ErrorIs(t, err, errorz.ErrInvalidInput)
		})
	}
}
