package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gehtsoft-usa/go_moaquiz/bmath/unit"
	"github.com/gehtsoft-usa/go_moaquiz/quiz"
)

func load(t *testing.T, args ...string) (Settings, error) {
	t.Helper()
	fs := Flags("moaquiz")
	fs.SetOutput(io.Discard)
	return Load(fs, args)
}

func TestLoad_DefaultValues(t *testing.T) {
	s, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, quiz.DefaultSettings(), s.Quiz)
	assert.Equal(t, uint64(0), s.Seed)
	assert.Equal(t, "", s.Summary)
	assert.False(t, s.Screen)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoad_Flags(t *testing.T) {
	s, err := load(t, "-m", "target", "-t", "0.1", "-n", "3", "-u", "mil",
		"--seed", "17", "--max-attempts", "5", "--summary", "out.yaml", "--screen", "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, quiz.ModeTarget, s.Quiz.Mode)
	assert.Equal(t, 0.1, s.Quiz.Tolerance)
	assert.Equal(t, 3, s.Quiz.Questions)
	assert.Equal(t, unit.Angular_MIL, s.Quiz.Units)
	assert.Equal(t, 5, s.Quiz.MaxAttempts)
	assert.Equal(t, uint64(17), s.Seed)
	assert.Equal(t, "out.yaml", s.Summary)
	assert.True(t, s.Screen)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "mode: drop\nunits: MIL\nnumber-of-questions: 4\ntolerance: 0.2\n"
	path := filepath.Join(dir, "moaquiz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	s, err := load(t, "--config", path)
	require.NoError(t, err)

	assert.Equal(t, quiz.ModeDrop, s.Quiz.Mode)
	assert.Equal(t, unit.Angular_MIL, s.Quiz.Units)
	assert.Equal(t, 4, s.Quiz.Questions)
	assert.Equal(t, 0.2, s.Quiz.Tolerance)
	assert.Equal(t, 3, s.Quiz.MaxAttempts)
}

func TestLoad_FlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moaquiz.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mode": "drop", "number-of-questions": 4}`), 0644))

	s, err := load(t, "-c", path, "-n", "8")
	require.NoError(t, err)

	assert.Equal(t, quiz.ModeDrop, s.Quiz.Mode)
	assert.Equal(t, 8, s.Quiz.Questions)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MOAQUIZ_NUMBER_OF_QUESTIONS", "12")
	t.Setenv("MOAQUIZ_MODE", "random")

	s, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Quiz.Questions)
	assert.Equal(t, quiz.ModeRandom, s.Quiz.Mode)

	s, err = load(t, "-m", "angle")
	require.NoError(t, err)
	assert.Equal(t, quiz.ModeAngle, s.Quiz.Mode)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := load(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"mode", []string{"-m", "wind"}, "invalid mode"},
		{"units", []string{"-u", "degree"}, "invalid units"},
		{"log level", []string{"--log-level", "loud"}, "invalid log-level"},
		{"questions", []string{"-n", "0"}, "number of questions"},
		{"tolerance", []string{"-t", "1.5"}, "tolerance"},
		{"attempts", []string{"--max-attempts", "-1"}, "max attempts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_Help(t *testing.T) {
	_, err := load(t, "--help")
	assert.True(t, errors.Is(err, pflag.ErrHelp))

	_, err = load(t, "--unknown")
	assert.Error(t, err)
}
