package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/seitarof/tado-env/internal/oauth"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TADO_USERNAME", "TADO_PASSWORD", "TADO_REFRESH_TOKEN", "TADO_ENV_URL",
		"TADO_SCOPE", "TADO_HTTP_TIMEOUT", "TADO_LOG_LEVEL", "TADO_LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestParseArgs_Success(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseArgs([]string{
		"--username", "user@example.com",
		"--password", "hunter2",
		"--format", "json",
		"--output", "report.json",
	})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.Username != "user@example.com" || cfg.Password != "hunter2" {
		t.Fatalf("unexpected credentials: %#v", cfg)
	}
	if cfg.EnvURL != "https://my.tado.com/webapp/env.js" {
		t.Fatalf("EnvURL default = %q", cfg.EnvURL)
	}
	if cfg.Scope != oauth.DefaultScope {
		t.Fatalf("Scope default = %q", cfg.Scope)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("Timeout default = %v", cfg.Timeout)
	}
	if cfg.OutputFormat() != "json" || cfg.OutputFilename() != "report.json" {
		t.Fatalf("unexpected output config: %#v", cfg)
	}
	if cfg.GrantType() != oauth.GrantPassword {
		t.Fatalf("GrantType() = %q", cfg.GrantType())
	}
}

func TestParseArgs_EnvironmentDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TADO_USERNAME", "env-user")
	t.Setenv("TADO_PASSWORD", "env-pass")
	t.Setenv("TADO_ENV_URL", "http://localhost:8080/env.js")
	t.Setenv("TADO_HTTP_TIMEOUT", "5s")
	t.Setenv("TADO_LOG_LEVEL", "DEBUG")

	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.Username != "env-user" || cfg.Password != "env-pass" {
		t.Fatalf("credentials not read from env: %#v", cfg)
	}
	if cfg.EnvURL != "http://localhost:8080/env.js" || cfg.Timeout != 5*time.Second {
		t.Fatalf("unexpected env config: %#v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want normalized debug", cfg.LogLevel)
	}
}

func TestParseArgs_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TADO_USERNAME", "env-user")
	t.Setenv("TADO_PASSWORD", "env-pass")

	cfg, err := ParseArgs([]string{"-u", "flag-user"})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.Username != "flag-user" || cfg.Password != "env-pass" {
		t.Fatalf("unexpected credentials: %#v", cfg)
	}
}

func TestParseArgs_RefreshTokenSkipsPassword(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseArgs([]string{"--refresh-token", "r-1"})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.GrantType() != oauth.GrantRefreshToken {
		t.Fatalf("GrantType() = %q", cfg.GrantType())
	}
}

func TestParseArgs_InfoOnlyNeedsNoCredentials(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseArgs([]string{"--info-only", "--format", "go", "--package", "tadocfg"})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if !cfg.InfoOnly || cfg.PackageName() != "tadocfg" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestParseArgs_Version(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseArgs([]string{"--version"})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if !cfg.ShowVersion {
		t.Fatal("expected ShowVersion")
	}
}

func TestParseArgs_Help(t *testing.T) {
	clearEnv(t)

	_, err := ParseArgs([]string{"--help"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("expected pflag.ErrHelp, got %v", err)
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{name: "missing username", args: nil, want: "--username is required"},
		{name: "missing password", args: []string{"-u", "x"}, want: "--password is required"},
		{name: "bad format", args: []string{"--info-only", "-f", "yaml"}, want: "--format must be one of"},
		{name: "bad package", args: []string{"--info-only", "-f", "go", "--package", "tado-env"}, want: "not a valid Go identifier"},
		{name: "bad log level", args: []string{"--info-only", "--log-level", "trace"}, want: "--log-level"},
		{name: "bad log format", args: []string{"--info-only", "--log-format", "xml"}, want: "--log-format"},
		{name: "zero timeout", args: []string{"--info-only", "--timeout", "0s"}, want: "--timeout"},
		{name: "empty env url", args: []string{"--info-only", "--env-url", " "}, want: "--env-url"},
		{name: "bad env duration", env: map[string]string{"TADO_HTTP_TIMEOUT": "soon"}, args: []string{"--info-only"}, want: "environment"},
		{name: "bad env duration overridden by flag", env: map[string]string{"TADO_HTTP_TIMEOUT": "soon"}, args: []string{"--info-only", "--timeout", "5s"}, want: "environment"},
		{name: "unknown flag", args: []string{"--nope"}, want: "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseArgs(tt.args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
