package cli

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/spf13/pflag"

	"github.com/seitarof/tado-env/internal/output"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// ParseArgs parses command line arguments into Config. Environment
// variables supply the defaults for credentials, endpoints and logging; a
// malformed variable is an error even when a flag overrides it.
func ParseArgs(args []string) (*Config, error) {
	var env envConfig
	if err := envdecode.StrictDecode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("environment: %w", err)
	}

	cfg := &Config{}
	fs := pflag.NewFlagSet("tado-env", pflag.ContinueOnError)
	fs.StringVar(&cfg.EnvURL, "env-url", env.EnvURL, "URL of the web app env.js document")
	fs.StringVar(&cfg.UserAgent, "user-agent", "", "User-Agent for HTTP requests")
	fs.DurationVar(&cfg.Timeout, "timeout", env.Timeout, "HTTP timeout per request")
	fs.StringVarP(&cfg.Username, "username", "u", env.Username, "account username (TADO_USERNAME)")
	fs.StringVarP(&cfg.Password, "password", "p", env.Password, "account password (TADO_PASSWORD)")
	fs.StringVar(&cfg.RefreshToken, "refresh-token", env.RefreshToken, "use the refresh_token grant with this token (TADO_REFRESH_TOKEN)")
	fs.StringVar(&cfg.Scope, "scope", env.Scope, "OAuth scope to request")
	fs.BoolVar(&cfg.InfoOnly, "info-only", false, "print the client info and skip the token request")
	fs.BoolVar(&cfg.Claims, "claims", false, "decode the access token's JWT claims (unverified)")
	fs.StringVarP(&cfg.Format, "format", "f", output.FormatText, "output format: "+strings.Join(output.Formats(), "|"))
	fs.StringVarP(&cfg.Filename, "output", "o", "", "output file (default stdout)")
	fs.StringVar(&cfg.Package, "package", "tadoenv", "package name for go output")
	fs.StringVar(&cfg.LogLevel, "log-level", env.LogLevel, "log level: "+strings.Join(logLevels, "|"))
	fs.StringVar(&cfg.LogFormat, "log-format", env.LogFormat, "log format: "+strings.Join(logFormats, "|"))
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.EnvURL) == "" {
		return fmt.Errorf("--env-url is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("--timeout must be positive")
	}
	if !slices.Contains(output.Formats(), cfg.Format) {
		return fmt.Errorf("--format must be one of %s", strings.Join(output.Formats(), ", "))
	}
	if cfg.Format == output.FormatGo && !token.IsIdentifier(cfg.Package) {
		return fmt.Errorf("--package %q is not a valid Go identifier", cfg.Package)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return fmt.Errorf("--log-level must be one of %s", strings.Join(logLevels, ", "))
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return fmt.Errorf("--log-format must be one of %s", strings.Join(logFormats, ", "))
	}

	if cfg.InfoOnly || cfg.RefreshToken != "" {
		return nil
	}
	if strings.TrimSpace(cfg.Username) == "" {
		return fmt.Errorf("--username is required (or set TADO_USERNAME, or pass --info-only)")
	}
	if cfg.Password == "" {
		return fmt.Errorf("--password is required (or set TADO_PASSWORD, or pass --info-only)")
	}
	return nil
}
