package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spenweb/kd/internal/catalog"
	"github.com/spenweb/kd/internal/fileutil"
	"github.com/spenweb/kd/internal/logging"
	"github.com/spenweb/kd/internal/textutil"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatJSON, FormatYAML, FormatSQLite}

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a user supplied name onto a Format. "yml" and "db" are accepted aliases.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w %q (want one of json, yaml, sqlite)", ErrUnknownFormat, value)
	}
}

// Extension returns the conventional file extension for f, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatSQLite:
		return ".db"
	default:
		return ".json"
	}
}

// DefaultFileName suggests an output name: the show name token when a single
// show is exported, "kd-catalog" otherwise.
func DefaultFileName(f Format, show string) string {
	stem := "kd-catalog"
	if strings.TrimSpace(show) != "" {
		stem = textutil.FileToken(show)
	}
	return stem + f.Extension()
}

// Request describes one export run.
type Request struct {
	Format Format
	Path   string
	// Show restricts the export to one show when set.
	Show string
}

// Exporter writes catalog exports.
type Exporter struct {
	logger *slog.Logger
}

// New returns an exporter that logs through logger.
func New(logger *slog.Logger) *Exporter {
	return &Exporter{logger: logging.NewComponentLogger(logger, "export")}
}

// Export renders the selected shows of c to req.Path and returns how many
// shows were written.
func (e *Exporter) Export(ctx context.Context, c *catalog.Collection, req Request) (int, error) {
	if c == nil {
		c = catalog.NewCollection()
	}
	if strings.TrimSpace(req.Path) == "" {
		return 0, errors.New("export path is required")
	}
	shows, err := selectShows(c, req.Show)
	if err != nil {
		return 0, err
	}
	doc := buildDocument(shows)

	switch req.Format {
	case FormatJSON, "":
		err = fileutil.WriteAtomic(req.Path, 0o644, func(w io.Writer) error { return writeJSON(w, doc) })
	case FormatYAML:
		err = fileutil.WriteAtomic(req.Path, 0o644, func(w io.Writer) error { return writeYAML(w, doc) })
	case FormatSQLite:
		err = writeSQLite(ctx, req.Path, doc)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownFormat, req.Format)
	}
	if err != nil {
		return 0, err
	}

	e.logger.Info("catalog exported",
		logging.String(logging.FieldPath, req.Path),
		logging.String("format", string(req.Format)),
		logging.Int("shows", len(doc.Shows)))
	return len(doc.Shows), nil
}

func selectShows(c *catalog.Collection, name string) ([]*catalog.Show, error) {
	if strings.TrimSpace(name) == "" {
		return c.Shows(), nil
	}
	show, err := c.Show(name)
	if err != nil {
		return nil, err
	}
	return []*catalog.Show{show}, nil
}

func writeJSON(w io.Writer, doc document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, doc document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}
	return nil
}
