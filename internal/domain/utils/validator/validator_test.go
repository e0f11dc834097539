package validator

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	assert.True(t, Title("", nil))
	assert.True(t, Title(strings.Repeat("й", MaxTitleLength), nil))
	assert.False(t, Title(strings.Repeat("a", MaxTitleLength+1), nil))
}

func TestSSID(t *testing.T) {
	assert.True(t, SSID("Home", nil))
	assert.False(t, SSID("", nil))
	// 17 two-byte runes exceed the byte limit.
	assert.False(t, SSID(strings.Repeat("й", 17), nil))
}

func TestHandle(t *testing.T) {
	assert.True(t, Handle(" jane ", nil))
	assert.False(t, Handle("jane doe", nil))
	assert.False(t, Handle("  ", nil))
}

func TestEmail(t *testing.T) {
	viper.Reset()
	assert.True(t, Email("jane@example.com", nil))
	assert.False(t, Email("not-an-email", nil))

	viper.Set("service.smtp.allowed-domains", []string{"@corp.example"})
	defer viper.Reset()
	assert.True(t, Email("jane@corp.example", nil))
	assert.False(t, Email("jane@example.com", nil))
}
