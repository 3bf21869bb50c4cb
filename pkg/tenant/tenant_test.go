package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHost(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tcp scheme rewritten", "tcp://10.0.0.5:2375", "http://10.0.0.5:2375"},
		{"http passthrough", "http://localhost:2375", "http://localhost:2375"},
		{"https passthrough", "https://docker.internal:2376", "https://docker.internal:2376"},
		{"bare host prefixed", "192.168.1.10:2375", "http://192.168.1.10:2375"},
		{"bare name prefixed", "dockerd", "http://dockerd"},
		{"empty disables engine", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := Resolve(map[string]string{KeyEngineHost: tt.in})
			assert.Equal(t, tt.want, creds.EngineURL)
			assert.Equal(t, tt.want != "", creds.HasEngine())
		})
	}
}

func TestTLSVerifyFlag(t *testing.T) {
	assert.True(t, Resolve(map[string]string{KeyTLSVerify: "1"}).TLSVerify)
	assert.False(t, Resolve(map[string]string{KeyTLSVerify: "true"}).TLSVerify)
	assert.False(t, Resolve(map[string]string{KeyTLSVerify: "0"}).TLSVerify)
	assert.False(t, Resolve(map[string]string{}).TLSVerify)
}

func TestHasHubPresenceCombinations(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		username string
		password string
		want     bool
	}{
		{"nothing", "", "", "", false},
		{"token only", "tok", "", "", true},
		{"username only", "", "alice", "", false},
		{"password only", "", "", "s3cret", false},
		{"username and password", "", "alice", "s3cret", true},
		{"token and pair", "tok", "alice", "s3cret", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := Resolve(map[string]string{
				KeyHubToken:    tt.token,
				KeyHubUsername: tt.username,
				KeyHubPassword: tt.password,
			})
			assert.Equal(t, tt.want, creds.HasHub())
		})
	}
}

func TestResolveCarriesOptionalFields(t *testing.T) {
	creds := Resolve(map[string]string{
		KeyEngineHost:       "tcp://h:2375",
		KeyCertPath:         "/certs",
		KeyAPIVersion:       "v1.45",
		KeyRegistryURL:      "registry.example.com",
		KeyRegistryUsername: "bot",
		KeyRegistryPassword: "pw",
	})
	assert.Equal(t, "/certs", creds.CertPath)
	assert.Equal(t, "v1.45", creds.APIVersion)
	assert.Equal(t, "registry.example.com", creds.RegistryURL)
	assert.True(t, creds.HasRegistryAuth())
	assert.False(t, creds.HasHub())
}
