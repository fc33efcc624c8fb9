package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/spenweb/kd/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ConfigDir = filepath.Join(base, "config")
	cfgVal.Paths.DataDir = filepath.Join(base, "data")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDataDir overrides the data directory, relative paths resolve under the test's temp root.
func WithDataDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(b.baseDir, dir)
		}
		b.cfg.Paths.DataDir = dir
	}
}

// WithRate sets the won per dollar conversion rate.
func WithRate(rate float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Currency.KRWPerUSD = rate
	}
}
