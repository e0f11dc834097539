package validator

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength  = 50
	MaxSSIDLength   = 32
	MaxHandleLength = 100
)

func Title(title string, _ map[string]interface{}) bool {
	return utf8.RuneCountInString(title) <= MaxTitleLength
}

// SSID checks the 802.11 limit, which is counted in bytes.
func SSID(ssid string, _ map[string]interface{}) bool {
	return ssid != "" && len(ssid) <= MaxSSIDLength
}

func Handle(handle string, _ map[string]interface{}) bool {
	h := strings.TrimSpace(handle)
	return h != "" && utf8.RuneCountInString(h) <= MaxHandleLength && !strings.ContainsAny(h, " \t\n")
}
