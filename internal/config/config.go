// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the service needs to reach the SharePoint list:
// the Azure AD application credential, the site/list coordinates and the
// local listen port.
type Config struct {
	TenantID     string // Azure AD tenant ID
	ClientID     string // application (client) ID
	ClientSecret string // application client secret
	Host         string // SharePoint host, e.g. contoso.sharepoint.com
	SiteName     string // optional subsite name; empty means the root site
	ListName     string // display name of the target list
	Port         string // local listen port
}

// DefaultPort is used when PORT is not set.
const DefaultPort = "3001"

// Load reads the configuration from environment variables and validates
// that every required value is present. SHAREPOINT_SITE_NAME and PORT are
// optional; an empty site name resolves the host's root site.
func Load() (Config, error) {
	cfg := Config{
		TenantID:     os.Getenv("TENANT_ID"),
		ClientID:     os.Getenv("CLIENT_ID"),
		ClientSecret: os.Getenv("CLIENT_SECRET"),
		Host:         os.Getenv("SHAREPOINT_HOST"),
		SiteName:     os.Getenv("SHAREPOINT_SITE_NAME"),
		ListName:     os.Getenv("LIST_NAME"),
		Port:         os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}

	var missing []string
	for _, v := range []struct{ name, value string }{
		{"TENANT_ID", cfg.TenantID},
		{"CLIENT_ID", cfg.ClientID},
		{"CLIENT_SECRET", cfg.ClientSecret},
		{"SHAREPOINT_HOST", cfg.Host},
		{"LIST_NAME", cfg.ListName},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// SitePath builds the Graph site lookup path: "host:/sites/<name>" when a
// subsite is configured, the bare host for the root site.
func (c Config) SitePath() string {
	if c.SiteName != "" {
		return fmt.Sprintf("%s:/sites/%s", c.Host, c.SiteName)
	}
	return c.Host
}
