package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiller/stampsim/internal/config"
	"github.com/chiller/stampsim/stamp"
)

const testFrequencies = `8.2 1.5 2.8 4.3 12.7 2.2 2.0 6.1 7.0 0.15 0.77 4.0 2.4
6.7 7.5 1.9 0.095 6.0 6.3 9.1 2.8 0.98 2.4 0.15 2.0 0.074
`

// execute runs the root command with args in a scratch directory and
// returns what it wrote to stdout and stderr.
func execute(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--log-level", "off",
	}, args...))
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEncode(t *testing.T) {
	out, _, err := execute(t, context.Background(), "encode", "One", "Day", "Will", "Reveal", "All")
	require.NoError(t, err)
	assert.Equal(t, "15140504012523091212180522050112011212\n", out)

	_, _, err = execute(t, context.Background(), "encode", "2024")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	intervals := writeFile(t, "intervals.txt", "2024 3 1 0  2024 3 1 23\n2030 1 1 0  2030 1 1 23\n")

	out, _, err := execute(t, context.Background(), "inspect", "--intervals", intervals, "243159")
	require.NoError(t, err)
	assert.Contains(t, out, "  0 YMDH 2024-03-01 05 [1]\n")
	assert.Contains(t, out, "  0 YMDH 2024-03-15 09 []\n")
	assert.Contains(t, out, "1 of 2 intervals hit\n")

	out, _, err = execute(t, context.Background(), "inspect", "-l", "--intervals", intervals, "ZZZZTXCOIZZZZZZZZZZ")
	require.NoError(t, err)
	assert.Contains(t, out, "YMDH 2024-03-15 09 []")

	_, _, err = execute(t, context.Background(), "inspect", "--intervals", intervals, "24x")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	frequencies := writeFile(t, "freq.txt", testFrequencies)

	t.Run("valid", func(t *testing.T) {
		intervals := writeFile(t, "intervals.txt", "2020 1 1 0 2020 12 31 23\n2021 1 1 0 2020 1 1 0\n")
		out, _, err := execute(t, context.Background(), "check", "-f", frequencies, "-i", intervals)
		require.NoError(t, err)
		assert.Contains(t, out, "reversed, never matches")
		assert.Contains(t, out, "2 intervals OK\n")
	})

	t.Run("truncated intervals", func(t *testing.T) {
		intervals := writeFile(t, "intervals.txt", "2020 1 1 0 2020 12\n")
		_, _, err := execute(t, context.Background(), "check", "-f", frequencies, "-i", intervals)
		assert.ErrorIs(t, err, stamp.ErrInvalidInterval)
	})

	t.Run("zero frequencies", func(t *testing.T) {
		zeros := writeFile(t, "zeros.txt", "0 0 0\n")
		intervals := writeFile(t, "intervals.txt", "2020 1 1 0 2020 12 31 23\n")
		_, _, err := execute(t, context.Background(), "check", "-f", zeros, "-i", intervals)
		assert.Error(t, err)
	})
}

func TestRunStopsOnCancel(t *testing.T) {
	frequencies := writeFile(t, "freq.txt", testFrequencies)
	intervals := writeFile(t, "intervals.txt", "2020 1 1 0 2020 12 31 23\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, stderr, err := execute(t, ctx, "run", "-f", frequencies, "-i", intervals, "--seed", "1")
	require.NoError(t, err)
	assert.Equal(t, "\rTests: 0. Chances: 0.000% \n", stderr)

	_, stderr, err = execute(t, ctx, "run", "-f", frequencies, "-i", intervals, "--counts")
	require.NoError(t, err)
	assert.Equal(t, "\rTests: 0. Found: 0 \n", stderr)
}

func TestRunInputErrors(t *testing.T) {
	frequencies := writeFile(t, "freq.txt", testFrequencies)
	intervals := writeFile(t, "intervals.txt", "2020 1 1 0 2020 12 31 23\n")

	_, _, err := execute(t, context.Background(), "run", "-f", frequencies,
		"-i", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, context.Background(), "run", "--log-backend", "logrus")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, context.Background(), "run", "-f", frequencies, "-i", intervals,
		"--report-cron", "not a cron")
	assert.Error(t, err)
}

func TestApplyRunFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "run"}
	addInputFlags(cmd)
	cmd.Flags().Int("length", 0, "")
	cmd.Flags().Uint64("seed", 0, "")
	cmd.Flags().String("report-every", "", "")
	cmd.Flags().String("report-cron", "", "")
	cmd.Flags().Bool("counts", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{
		"--intervals", "other.txt", "--length", "40", "--seed", "9",
		"--report-every", "5s", "--counts",
	}))

	cfg := config.DefaultConfig()
	cfg.Report.Cron = "0 * * * * * *"
	require.NoError(t, applyRunFlags(cmd, cfg))

	assert.Equal(t, "letter_frequencies.txt", cfg.Frequencies)
	assert.Equal(t, "other.txt", cfg.Intervals)
	assert.Equal(t, 40, cfg.MessageLength)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, "5s", cfg.Report.Every)
	assert.Empty(t, cfg.Report.Cron)
	assert.True(t, cfg.Report.Counts)
}
