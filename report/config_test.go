package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := newConfig()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.InDelta(t, 0.05, cfg.Alpha, 0)
	require.Equal(t, 2, cfg.MeanDigits)
	require.Equal(t, 3, cfg.StatDigits)
	require.Equal(t, 4, cfg.PValueDigits)
	require.Equal(t, "Person", cfg.LabelPrefix)
}

func TestNewConfig_Options(t *testing.T) {
	cfg, err := newConfig(
		WithAlpha(0.01),
		WithMeanDigits(1),
		WithStatDigits(5),
		WithPValueDigits(6),
		WithLabelPrefix("Row"),
	)
	require.NoError(t, err)
	require.Equal(t, Config{
		Alpha:        0.01,
		MeanDigits:   1,
		StatDigits:   5,
		PValueDigits: 6,
		LabelPrefix:  "Row",
	}, cfg)
}

func TestNewConfig_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"alpha zero", WithAlpha(0)},
		{"alpha one", WithAlpha(1)},
		{"alpha negative", WithAlpha(-0.1)},
		{"alpha nan", WithAlpha(math.NaN())},
		{"mean digits negative", WithMeanDigits(-1)},
		{"stat digits too large", WithStatDigits(16)},
		{"p-value digits zero", WithPValueDigits(0)},
		{"p-value digits too large", WithPValueDigits(20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newConfig(tt.opt)
			require.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}
