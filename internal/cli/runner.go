package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seitarof/tado-env/internal/extractor"
	"github.com/seitarof/tado-env/internal/fetcher"
	"github.com/seitarof/tado-env/internal/oauth"
	"github.com/seitarof/tado-env/internal/output"
	"github.com/seitarof/tado-env/internal/parser"
)

// Runner orchestrates fetcher/parser/extractor/oauth/output layers.
type Runner interface {
	Run(ctx context.Context, cfg *Config) error
}

type runnerImpl struct {
	fetcher   fetcher.Fetcher
	parser    parser.Parser
	extractor extractor.Extractor
	oauth     oauth.Factory
	emitter   output.Emitter
	logger    *slog.Logger
}

// NewRunner creates a default runner implementation. A nil logger discards
// log output.
func NewRunner(
	f fetcher.Fetcher,
	p parser.Parser,
	x extractor.Extractor,
	o oauth.Factory,
	e output.Emitter,
	logger *slog.Logger,
) Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &runnerImpl{
		fetcher:   f,
		parser:    p,
		extractor: x,
		oauth:     o,
		emitter:   e,
		logger:    logger,
	}
}

// Run fetches and parses the env document, extracts the client info,
// optionally exchanges it for a token, and emits the report.
func (r *runnerImpl) Run(ctx context.Context, cfg *Config) error {
	doc, err := r.fetcher.Fetch(ctx, cfg.EnvURL)
	if err != nil {
		return fmt.Errorf("fetch env: %w", err)
	}
	r.logger.Debug("fetched env document", "url", cfg.EnvURL, "bytes", len(doc))

	m, err := r.parser.Parse(doc)
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	r.logger.Debug("parsed env document", "keys", len(m))

	info, err := r.extractor.Extract(m)
	if err != nil {
		return fmt.Errorf("extract client info: %w", err)
	}
	r.logger.Info("tado client", "version", info.Version)

	report := &output.Report{Source: cfg.EnvURL, ClientInfo: info}
	if !cfg.InfoOnly {
		tok, err := r.oauth(info.Endpoints).RequestToken(ctx, tokenRequest(cfg, info))
		if err != nil {
			return fmt.Errorf("request token: %w", err)
		}
		r.logger.Info("token issued", "grant_type", cfg.GrantType(), "token_type", tok.TokenType, "expires_in", tok.ExpiresIn)
		report.Token = tok

		if cfg.Claims {
			claims, err := oauth.DecodeClaims(tok.AccessToken)
			if err != nil {
				r.logger.Warn("access token claims unavailable", "error", err)
			} else {
				report.Claims = claims
			}
		}
	}

	if err := r.emitter.Emit(cfg, report); err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	return nil
}

func tokenRequest(cfg *Config, info *extractor.ClientInfo) *oauth.TokenRequest {
	req := &oauth.TokenRequest{
		ClientID:     info.ClientID,
		ClientSecret: info.ClientSecret,
		GrantType:    cfg.GrantType(),
		Scope:        cfg.Scope,
	}
	if req.GrantType == oauth.GrantRefreshToken {
		req.RefreshToken = cfg.RefreshToken
	} else {
		req.Username = cfg.Username
		req.Password = cfg.Password
	}
	return req
}
