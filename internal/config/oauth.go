package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// OAuthClientConfig mirrors the Google OAuth "installed app" credentials
// JSON. It is only needed when the sheets input source is used.
type OAuthClientConfig struct {
	Installed OAuthInstalled `json:"installed" validate:"required"`
}

// OAuthInstalled is the installed section of the credentials file.
type OAuthInstalled struct {
	ClientID                string   `json:"client_id" validate:"required"`
	ProjectID               string   `json:"project_id" validate:"required"`
	AuthURI                 string   `json:"auth_uri" validate:"required,url"`
	TokenURI                string   `json:"token_uri" validate:"required,url"`
	AuthProviderX509CertURL string   `json:"auth_provider_x509_cert_url" validate:"required,url"`
	ClientSecret            string   `json:"client_secret" validate:"required"`
	RedirectURIs            []string `json:"redirect_uris" validate:"required,min=1,dive,uri"`
}

const oauthFileName = "oauthClient.json"

// LoadOAuthClient loads oauthClient.json from the current directory or,
// failing that, the user's home directory.
func LoadOAuthClient() (*OAuthClientConfig, error) {
	if _, err := os.Stat(oauthFileName); err == nil {
		return LoadOAuthClientFromPath(oauthFileName)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	homePath := filepath.Join(homeDir, oauthFileName)
	if _, err := os.Stat(homePath); err == nil {
		return LoadOAuthClientFromPath(homePath)
	}

	return nil, fmt.Errorf("%s not found in current directory or home directory", oauthFileName)
}

// LoadOAuthClientFromPath loads and validates credentials from a path.
func LoadOAuthClientFromPath(path string) (*OAuthClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth client file: %w", err)
	}

	var oauthCfg OAuthClientConfig
	if err := json.Unmarshal(data, &oauthCfg); err != nil {
		return nil, fmt.Errorf("failed to parse oauth client file: %w", err)
	}

	if err := validate.Struct(&oauthCfg); err != nil {
		return nil, fmt.Errorf("oauth client validation failed: %w", err)
	}

	return &oauthCfg, nil
}
