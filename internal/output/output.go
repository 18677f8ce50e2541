package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"text/template"
	"time"

	"golang.org/x/tools/imports"

	"github.com/seitarof/tado-env/internal/extractor"
	"github.com/seitarof/tado-env/internal/oauth"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Output formats accepted by Emit.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatGo   = "go"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatGo}
}

// Report is everything one bootstrap run produced.
type Report struct {
	Source     string                `json:"source,omitempty"`
	ClientInfo *extractor.ClientInfo `json:"client_info"`
	Token      *oauth.TokenResponse  `json:"token,omitempty"`
	Claims     *oauth.Claims         `json:"claims,omitempty"`
}

// Emitter renders a report.
type Emitter interface {
	Emit(cfg Config, r *Report) error
}

// Config is the minimum config contract required by the emitter.
type Config interface {
	OutputFilename() string
	OutputFormat() string
	PackageName() string
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes rendered output to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type emitterImpl struct {
	formatter Formatter
	writer    FileWriter
	stdout    io.Writer
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

type templateData struct {
	Source        string
	Package       string
	Version       string
	ClientID      string
	ClientSecret  string
	OAuthEndpoint string
}

// New creates an emitter. Reports go to stdout unless the config names an
// output file.
func New(f Formatter, w FileWriter, stdout io.Writer) Emitter {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.go.tmpl"))
	return &emitterImpl{formatter: f, writer: w, stdout: stdout, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (e *emitterImpl) Emit(cfg Config, r *Report) error {
	if r == nil || r.ClientInfo == nil {
		return fmt.Errorf("no client info to emit")
	}

	var (
		data []byte
		err  error
	)
	switch cfg.OutputFormat() {
	case FormatText, "":
		data, err = renderText(r)
	case FormatJSON:
		data, err = renderJSON(r)
	case FormatGo:
		data, err = e.renderGo(cfg, r)
	default:
		return fmt.Errorf("unknown output format %q", cfg.OutputFormat())
	}
	if err != nil {
		return err
	}

	if cfg.OutputFilename() == "" {
		_, err := e.stdout.Write(data)
		return err
	}
	if err := e.writer.Write(cfg.OutputFilename(), data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (e *emitterImpl) renderGo(cfg Config, r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, "client_info.go.tmpl", templateData{
		Source:        r.Source,
		Package:       cfg.PackageName(),
		Version:       r.ClientInfo.Version,
		ClientID:      r.ClientInfo.ClientID,
		ClientSecret:  r.ClientInfo.ClientSecret,
		OAuthEndpoint: r.ClientInfo.Endpoints.OAuth,
	}); err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}

	filename := cfg.OutputFilename()
	if filename == "" {
		filename = "client_info.go"
	}
	formatted, err := e.formatter.Format(filename, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return formatted, nil
}

func renderJSON(r *Report) ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return append(b, '\n'), nil
}

func renderText(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 1, ' ', 0)

	line := func(k, v string) { fmt.Fprintf(tw, "%s:\t%s\n", k, v) }
	line("version", r.ClientInfo.Version)
	line("client_id", r.ClientInfo.ClientID)
	line("client_secret", r.ClientInfo.ClientSecret)
	line("oauth_endpoint", r.ClientInfo.Endpoints.OAuth)

	if t := r.Token; t != nil {
		line("access_token", t.AccessToken)
		line("refresh_token", t.RefreshToken)
		line("token_type", t.TokenType)
		line("expires_in", fmt.Sprintf("%ds", t.ExpiresIn))
		line("scope", t.Scope)
		line("jti", t.JTI)
	}
	if c := r.Claims; c != nil {
		line("subject", c.Subject)
		line("issuer", c.Issuer)
		if !c.ExpiresAt.IsZero() {
			line("expires_at", c.ExpiresAt.Format(time.RFC3339))
		}
	}

	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}
