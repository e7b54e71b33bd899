package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/jsontypings/pkg/errors"
	"github.com/matzehuels/jsontypings/pkg/render"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jsontypings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, render.DefaultConfig(), s.Config)
	assert.Equal(t, "All", s.Name)
	assert.Equal(t, ":8080", s.Server.Addr)
	assert.Equal(t, 30*time.Second, s.Server.ReadTimeout.Duration)
}

func TestLoadFileOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
indentation = "  "
sort = true
partition = "kind"

[cache]
backend = "redis"
redis_addr = "localhost:6379"

[server]
read_timeout = "5s"
`)
	s := Default()
	require.NoError(t, LoadFile(path, &s))

	assert.Equal(t, "  ", s.Indentation)
	assert.True(t, s.Sort)
	assert.Equal(t, typing.PartitionKind, s.Partition)
	assert.Equal(t, `"`, s.StringDelimiter, "unset keys keep their default")
	assert.Equal(t, "All", s.Name)
	assert.Equal(t, CacheRedis, s.Cache.Backend)
	assert.Equal(t, 5*time.Second, s.Server.ReadTimeout.Duration)
	assert.Equal(t, 60*time.Second, s.Server.WriteTimeout.Duration)
	require.NoError(t, s.Validate())
}

func TestLoadFileErrors(t *testing.T) {
	s := Default()

	err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"), &s)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "got %v", err)

	err = LoadFile(writeConfig(t, "indentation = "), &s)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)

	err = LoadFile(writeConfig(t, "indent = \"  \"\n"), &s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
	assert.Contains(t, err.Error(), "indent")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("JSONTYPINGS_STRING_DELIMITER", "'")
	t.Setenv("JSONTYPINGS_SORT", "yes")
	t.Setenv("JSONTYPINGS_STRATEGY", "Family")
	t.Setenv("JSONTYPINGS_REDIS_DB", "2")
	t.Setenv("JSONTYPINGS_SERVER_READ_TIMEOUT_MS", "250")

	s := Default()
	require.NoError(t, ApplyEnv(&s))
	assert.Equal(t, "'", s.StringDelimiter)
	assert.True(t, s.Sort)
	assert.Equal(t, render.StrategyFamily, s.Strategy)
	assert.Equal(t, 2, s.Cache.RedisDB)
	assert.Equal(t, 250*time.Millisecond, s.Server.ReadTimeout.Duration)
	assert.Equal(t, "    ", s.Indentation)
}

func TestApplyEnvCanSwitchOffBooleans(t *testing.T) {
	t.Setenv("JSONTYPINGS_SORT", "0")
	s := Default()
	s.Sort = true
	require.NoError(t, ApplyEnv(&s))
	assert.False(t, s.Sort)
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("JSONTYPINGS_PARTITION", "everything")
	s := Default()
	err := ApplyEnv(&s)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
}

func TestLoadLayers(t *testing.T) {
	path := writeConfig(t, "string_delimiter = \"'\"\nindentation = \"\\t\"\n")
	t.Setenv("JSONTYPINGS_INDENTATION", "  ")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "'", s.StringDelimiter, "from file")
	assert.Equal(t, "  ", s.Indentation, "environment beats file")
}

func TestLoadDefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("sort = true\n"), 0644))
	t.Chdir(dir)

	s, err := Load("")
	require.NoError(t, err)
	assert.True(t, s.Sort)
}

func TestMerge(t *testing.T) {
	base := render.DefaultConfig()

	var override render.Config
	override.StringDelimiter = "'"
	override.Indentation = "  "

	got := Merge(base, override)
	want := render.DefaultConfig()
	want.StringDelimiter = "'"
	want.Indentation = "  "
	assert.Equal(t, want, got)

	override = render.Config{Sort: true, WrapArrays: true, Partition: typing.PartitionKind}
	got = Merge(base, override)
	assert.True(t, got.Sort)
	assert.True(t, got.WrapArrays)
	assert.Equal(t, typing.PartitionKind, got.Partition)
	assert.Equal(t, base.Strategy, got.Strategy)

	assert.Equal(t, base, Merge(base, render.Config{}))
}

func TestStrategyFlags(t *testing.T) {
	k, err := StrategyFlags(false, false)
	require.NoError(t, err)
	assert.Equal(t, render.StrategyKind(""), k)

	k, err = StrategyFlags(true, false)
	require.NoError(t, err)
	assert.Equal(t, render.StrategyTree, k)

	k, err = StrategyFlags(false, true)
	require.NoError(t, err)
	assert.Equal(t, render.StrategyFamily, k)

	_, err = StrategyFlags(true, true)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		code   errors.Code
	}{
		{"name too long", func(s *Settings) { s.Name = strings.Repeat("x", 300) }, errors.ErrCodeInvalidName},
		{"bad backend", func(s *Settings) { s.Cache.Backend = "disk" }, errors.ErrCodeInvalidConfig},
		{"redis without addr", func(s *Settings) { s.Cache.Backend = CacheRedis }, errors.ErrCodeInvalidConfig},
		{"bad delimiter", func(s *Settings) { s.StringDelimiter = "`" }, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	s := Default()
	s.Indentation = "\t"
	s.Server.ReadTimeout.Duration = 3 * time.Second

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	assert.Contains(t, buf.String(), `indentation = "\t"`)
	assert.Contains(t, buf.String(), "[server]")
	assert.Contains(t, buf.String(), `read_timeout = "3s"`)

	got := Default()
	_, err := toml.Decode(buf.String(), &got)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
