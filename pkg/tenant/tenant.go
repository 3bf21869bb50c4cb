// Package tenant resolves per-call credentials from caller-supplied
// metadata. Credentials are ephemeral: constructed fresh for every call,
// never cached, never shared across tenants.
package tenant

import (
	"os"
	"strings"
)

// Metadata keys recognized by Resolve. The resolver is agnostic to where
// the map came from; the stdio transport loads them from the process
// environment at startup.
const (
	KeyEngineHost       = "DOCKER_HOST"
	KeyTLSVerify        = "DOCKER_TLS_VERIFY"
	KeyCertPath         = "DOCKER_CERT_PATH"
	KeyAPIVersion       = "DOCKER_API_VERSION"
	KeyHubToken         = "DOCKER_HUB_TOKEN"
	KeyHubUsername      = "DOCKER_HUB_USERNAME"
	KeyHubPassword      = "DOCKER_HUB_PASSWORD"
	KeyRegistryURL      = "DOCKER_REGISTRY_URL"
	KeyRegistryUsername = "DOCKER_REGISTRY_USERNAME"
	KeyRegistryPassword = "DOCKER_REGISTRY_PASSWORD"
)

// Keys lists every metadata key the resolver recognizes.
var Keys = []string{
	KeyEngineHost,
	KeyTLSVerify,
	KeyCertPath,
	KeyAPIVersion,
	KeyHubToken,
	KeyHubUsername,
	KeyHubPassword,
	KeyRegistryURL,
	KeyRegistryUsername,
	KeyRegistryPassword,
}

// Credentials holds everything one call needs to reach the engine and hub
// backends. Zero values mean "not supplied"; availability is queried via
// HasEngine and HasHub rather than validated here.
type Credentials struct {
	EngineURL  string
	TLSVerify  bool
	CertPath   string
	APIVersion string

	HubToken    string
	HubUsername string
	HubPassword string

	RegistryURL      string
	RegistryUsername string
	RegistryPassword string
}

// Resolve builds Credentials from metadata. Missing keys leave zero
// values; no error is ever returned — callers decide how to handle an
// unusable credential set.
func Resolve(meta map[string]string) Credentials {
	return Credentials{
		EngineURL:        resolveHost(meta[KeyEngineHost]),
		TLSVerify:        meta[KeyTLSVerify] == "1",
		CertPath:         meta[KeyCertPath],
		APIVersion:       meta[KeyAPIVersion],
		HubToken:         meta[KeyHubToken],
		HubUsername:      meta[KeyHubUsername],
		HubPassword:      meta[KeyHubPassword],
		RegistryURL:      meta[KeyRegistryURL],
		RegistryUsername: meta[KeyRegistryUsername],
		RegistryPassword: meta[KeyRegistryPassword],
	}
}

// FromEnv resolves credentials from the process environment.
func FromEnv() Credentials {
	meta := make(map[string]string, len(Keys))
	for _, key := range Keys {
		if val := os.Getenv(key); val != "" {
			meta[key] = val
		}
	}
	return Resolve(meta)
}

// resolveHost normalizes the engine host string into a base URL:
// tcp:// is rewritten to http://, explicit http(s) URLs pass through,
// any other non-empty string gets an http:// prefix, and the empty
// string stays empty (engine capability disabled).
func resolveHost(raw string) string {
	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "tcp://"):
		return "http://" + strings.TrimPrefix(raw, "tcp://")
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	default:
		return "http://" + raw
	}
}

// HasEngine reports whether engine operations are usable for this call.
func (c Credentials) HasEngine() bool {
	return c.EngineURL != ""
}

// HasHub reports whether hub operations are usable for this call: a
// static token, or a username/password pair for the login flow.
func (c Credentials) HasHub() bool {
	return c.HubToken != "" || (c.HubUsername != "" && c.HubPassword != "")
}

// HasRegistryAuth reports whether registry credentials were supplied for
// pull/push/service operations.
func (c Credentials) HasRegistryAuth() bool {
	return c.RegistryUsername != "" || c.RegistryPassword != ""
}
