package config

import (
	"fmt"
	"os"
	"strings"
)

// ResolveToken returns the subscriber token, preferring the inline value
// (normally injected via ${FUEL_API_TOKEN} expansion) and falling back to
// reading the configured token file.
func (a *APIConfig) ResolveToken() (string, error) {
	if token := strings.TrimSpace(a.Token); token != "" {
		return token, nil
	}

	if a.TokenFile == "" {
		return "", fmt.Errorf("missing api token: set api.token or api.token_file")
	}

	data, err := os.ReadFile(a.TokenFile)
	if err != nil {
		return "", fmt.Errorf("read token file %s: %w", a.TokenFile, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", a.TokenFile)
	}

	return token, nil
}
