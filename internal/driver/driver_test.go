package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/averycrespi/exprlab/internal/config"
	"github.com/averycrespi/exprlab/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedScreen = `[7]
5 + 12.5 + 9 + (-1.5) + (-9.5) + 0 + 11
26.5

[4]
100 / (-4) / 2.5 / (-4)
2.5

[5]
5 - 4 + (-2) - 9 + 3
-7

[4]
(-4) / (-4) / 2.5 / 100
0.004

[5]
-2 - 4 + 5 - 9 + 3
-7

[5]
5 - 4 + (-2) - 9 + 3
-7
`

const expectedLog = `[7]
5 + 12.5 + 9 + (-1.5) + (-9.5) + 0 + 11
26.5
[4]
100 / (-4) / 2.5 / (-4)
2.5
[5]
5 - 4 + (-2) - 9 + 3
-7
`

func defaultConfig(t *testing.T) types.Config {
	t.Helper()
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "Lab3.log")
	return cfg
}

func TestRun_DefaultDemo(t *testing.T) {
	cfg := defaultConfig(t)

	var screen bytes.Buffer
	err := NewDriver(cfg).WithScreen(&screen).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, expectedScreen, screen.String())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Equal(t, expectedLog, string(data))
}

func TestRun_TruncatesExistingLog(t *testing.T) {
	cfg := defaultConfig(t)
	require.NoError(t, os.WriteFile(cfg.LogFile, []byte("stale\n"), 0o644))

	var screen bytes.Buffer
	require.NoError(t, NewDriver(cfg).WithScreen(&screen).Run(context.Background()))

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Equal(t, expectedLog, string(data))
}

func TestRun_PairShuffleSwapsWhenFirstIsNegative(t *testing.T) {
	cfg := types.Config{
		LogLevel: "info",
		Stages: []types.StageConfig{
			{
				Kind:     "custom_expression",
				Count:    3,
				Operands: []float64{-1, 2, 3},
				Pair:     []int{0, 2},
			},
		},
	}

	var screen bytes.Buffer
	require.NoError(t, NewDriver(cfg).WithScreen(&screen).Run(context.Background()))

	assert.Equal(t, `[3]
-1 - 2 + 3
0

[3]
-1 - 2 + 3
0

[3]
3 - 2 + (-1)
0
`, screen.String())
}

func TestRun_SummatorIsNeverShuffled(t *testing.T) {
	cfg := types.Config{
		Stages: []types.StageConfig{
			{Kind: "summator", Count: 2, Operands: []float64{3, -3}},
		},
	}

	var screen bytes.Buffer
	require.NoError(t, NewDriver(cfg).WithScreen(&screen).Run(context.Background()))

	assert.Equal(t, "[2]\n3 + (-3)\n0\n\n", screen.String())
}

func TestRun_PerIndexAssignment(t *testing.T) {
	cfg := types.Config{
		Stages: []types.StageConfig{
			{Kind: "divisor", Count: 2, Assign: config.AssignPerIndex, Operands: []float64{9, 3, 7}},
		},
	}

	var screen bytes.Buffer
	require.NoError(t, NewDriver(cfg).WithScreen(&screen).Run(context.Background()))

	assert.Equal(t, "[2]\n9 / 3\n3\n\n[2]\n9 / 3\n3\n\n", screen.String())
}

func TestRun_UnknownKind(t *testing.T) {
	cfg := types.Config{
		Stages: []types.StageConfig{{Kind: "multiplier", Count: 1}},
	}

	err := NewDriver(cfg).WithScreen(&bytes.Buffer{}).Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stage 0")
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.Default()
	cfg.LogFile = ""

	var screen bytes.Buffer
	err := NewDriver(cfg).WithScreen(&screen).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, screen.String())
}
