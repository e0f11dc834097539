package validator

import (
	"net/mail"
	"strings"

	"github.com/spf13/viper"
)

func Email(email string, _ map[string]interface{}) bool {
	return emailFormat(email) && emailDomain(email)
}

func emailFormat(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// emailDomain allows every domain unless service.smtp.allowed-domains is set.
func emailDomain(email string) bool {
	validDomains := viper.GetStringSlice("service.smtp.allowed-domains")
	if len(validDomains) == 0 {
		return true
	}

	for _, domain := range validDomains {
		if strings.HasSuffix(email, domain) {
			return true
		}
	}
	return false
}
