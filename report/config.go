package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/pairstat/internal/options"
)

// ErrInvalidOption is returned by Build when an option value is out of range.
var ErrInvalidOption = errors.New("invalid report option")

// maxDigits bounds every precision option; float64 carries about 15
// significant decimal digits.
const maxDigits = 15

// Config controls how a Summary is built and rendered.
type Config struct {
	// Alpha is the significance level; a p-value strictly below it is
	// reported as significant.
	Alpha float64
	// MeanDigits is the number of decimals used for column means.
	MeanDigits int
	// StatDigits is the number of decimals used for r, t and regression
	// coefficients.
	StatDigits int
	// PValueDigits is the number of decimals used for p-values. Positive
	// p-values below 10^-PValueDigits are shown as "< 0.0…1".
	PValueDigits int
	// LabelPrefix is prepended to the 1-based row number in chart labels.
	LabelPrefix string
}

// DefaultConfig returns the configuration used when Build gets no options.
func DefaultConfig() Config {
	return Config{
		Alpha:        0.05,
		MeanDigits:   2,
		StatDigits:   3,
		PValueDigits: 4,
		LabelPrefix:  "Person",
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithAlpha sets the significance level. It must lie in (0, 1).
func WithAlpha(alpha float64) Option {
	return options.New(func(cfg *Config) error {
		if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
			return fmt.Errorf("%w: alpha %v outside (0, 1)", ErrInvalidOption, alpha)
		}
		cfg.Alpha = alpha

		return nil
	})
}

// WithMeanDigits sets the decimals used for column means.
func WithMeanDigits(digits int) Option {
	return options.New(func(cfg *Config) error {
		if err := checkDigits("mean", digits); err != nil {
			return err
		}
		cfg.MeanDigits = digits

		return nil
	})
}

// WithStatDigits sets the decimals used for r, t and regression coefficients.
func WithStatDigits(digits int) Option {
	return options.New(func(cfg *Config) error {
		if err := checkDigits("stat", digits); err != nil {
			return err
		}
		cfg.StatDigits = digits

		return nil
	})
}

// WithPValueDigits sets the decimals used for p-values. It must be at least 1.
func WithPValueDigits(digits int) Option {
	return options.New(func(cfg *Config) error {
		if digits < 1 {
			return fmt.Errorf("%w: p-value digits %d below 1", ErrInvalidOption, digits)
		}
		if err := checkDigits("p-value", digits); err != nil {
			return err
		}
		cfg.PValueDigits = digits

		return nil
	})
}

// WithLabelPrefix sets the prefix of chart row labels.
func WithLabelPrefix(prefix string) Option {
	return options.NoError(func(cfg *Config) {
		cfg.LabelPrefix = prefix
	})
}

func checkDigits(name string, digits int) error {
	if digits < 0 || digits > maxDigits {
		return fmt.Errorf("%w: %s digits %d outside [0, %d]", ErrInvalidOption, name, digits, maxDigits)
	}

	return nil
}

func newConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
