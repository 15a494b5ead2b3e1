package config

import (
	"sort"
	"strings"
)

// Provider is a well-known SMTP submission endpoint
type Provider struct {
	Name string
	Host string
	Port int
	Note string
}

var providers = map[string]Provider{
	"gmail": {
		Name: "gmail",
		Host: "smtp.gmail.com",
		Port: 587,
		Note: "Use an App Password instead of your regular password. Enable 2FA and create one at https://myaccount.google.com/apppasswords",
	},
	"outlook": {
		Name: "outlook",
		Host: "smtp-mail.outlook.com",
		Port: 587,
	},
	"yahoo": {
		Name: "yahoo",
		Host: "smtp.mail.yahoo.com",
		Port: 587,
	},
	"icloud": {
		Name: "icloud",
		Host: "smtp.mail.me.com",
		Port: 587,
		Note: "Use an app-specific password from appleid.apple.com",
	},
}

// LookupProvider returns the preset for name, case insensitive
func LookupProvider(name string) (Provider, bool) {
	p, ok := providers[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// ProviderNames returns the known presets in alphabetical order
func ProviderNames() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
