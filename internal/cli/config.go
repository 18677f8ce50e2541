package cli

import (
	"time"

	"github.com/seitarof/tado-env/internal/oauth"
)

// Config stores CLI options for a single bootstrap run.
type Config struct {
	EnvURL    string
	UserAgent string
	Timeout   time.Duration

	Username     string
	Password     string
	RefreshToken string
	Scope        string

	InfoOnly bool
	Claims   bool

	Format   string
	Filename string
	Package  string

	LogLevel  string
	LogFormat string

	ShowVersion bool
}

// OutputFilename returns the report destination; empty means stdout.
func (c *Config) OutputFilename() string {
	return c.Filename
}

// OutputFormat returns the report format.
func (c *Config) OutputFormat() string {
	return c.Format
}

// PackageName returns the package clause used for Go output.
func (c *Config) PackageName() string {
	return c.Package
}

// GrantType picks the refresh grant when a refresh token is configured and
// the password grant otherwise.
func (c *Config) GrantType() oauth.GrantType {
	if c.RefreshToken != "" {
		return oauth.GrantRefreshToken
	}
	return oauth.GrantPassword
}

// envConfig holds the settings that may come from the environment. Its
// values become flag defaults, so flags win.
type envConfig struct {
	Username     string        `env:"TADO_USERNAME"`
	Password     string        `env:"TADO_PASSWORD"`
	RefreshToken string        `env:"TADO_REFRESH_TOKEN"`
	EnvURL       string        `env:"TADO_ENV_URL,default=https://my.tado.com/webapp/env.js"`
	Scope        string        `env:"TADO_SCOPE,default=home.user"`
	Timeout      time.Duration `env:"TADO_HTTP_TIMEOUT,default=30s"`
	LogLevel     string        `env:"TADO_LOG_LEVEL,default=info"`
	LogFormat    string        `env:"TADO_LOG_FORMAT,default=text"`
}
