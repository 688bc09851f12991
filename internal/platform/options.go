package platform

import (
	"log/slog"
	"time"

	"github.com/sabinadams/schematic/pkg/config"
	"github.com/sabinadams/schematic/pkg/state"
)

// options holds the internal configuration for the Generator.
type options struct {
	config   config.Config
	logger   *slog.Logger
	clock    func() time.Time
	debounce time.Duration
	read     state.ReadFunc
}

// Option defines a functional option for configuring the Generator.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		config:   config.Default(),
		logger:   nil,
		clock:    time.Now,
		debounce: 100 * time.Millisecond,
		read:     state.ReadJSONFile,
	}
}

// WithConfig replaces the whole configuration.
// Options applied after it still override single settings.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithPrefix sets the annotation prefix (without '@').
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.config.AnnotationPrefix = prefix
	}
}

// WithStateFile sets the state file path, relative to the model document's directory.
func WithStateFile(path string) Option {
	return func(o *options) {
		o.config.StateFilePath = path
	}
}

// WithLogger sets the logger for the generator.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source used to stamp snapshots.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithDebounce sets how long Watch waits for writes to settle before rebuilding.
// Zero means default (100ms).
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithStateReader overrides how previous snapshots are read.
func WithStateReader(read state.ReadFunc) Option {
	return func(o *options) {
		o.read = read
	}
}
