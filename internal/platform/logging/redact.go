package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names whose values never reach a
// log line. The HTTP middleware redacts the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

var (
	// "--accessToken abc", "-Dminecraft.accessToken=abc", "access_token=abc"
	accessTokenArg = regexp.MustCompile(`(?i)access_?token(\s+|=)\S+`)
	bearerValue    = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	apiKeyInline   = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
	// Segments of 10+ chars so "1.20.1" style version names never match.
	jwtValue = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
)

var redactedFields = []string{"password", "secret", "token", "access_token", "client_token", "xuid"}

// newRedactAttr masks sensitive attributes by key name, key prefix and
// value pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(accessTokenArg),
		masq.WithRegex(bearerValue),
		masq.WithRegex(apiKeyInline),
		masq.WithRegex(jwtValue),
	)
	return masq.New(opts...)
}
