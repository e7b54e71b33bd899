// Package config loads jsontypings settings.
//
// Settings are layered, each layer overriding the one before:
//
//  1. built-in defaults ([Default])
//  2. a TOML file ([LoadFile])
//  3. JSONTYPINGS_* environment variables ([ApplyEnv])
//  4. command-line flags, applied by the CLI for flags that were set
//
// A config file looks like this:
//
//	name = "Payload"
//	string_delimiter = "'"
//	indentation = "  "
//	sort = true
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/jsontypings/pkg/casing"
	"github.com/matzehuels/jsontypings/pkg/errors"
	"github.com/matzehuels/jsontypings/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultName is the root interface name.
	DefaultName = "All"

	// DefaultFileName is looked up in the working directory when no config
	// file is given explicitly.
	DefaultFileName = "jsontypings.toml"

	// EnvPrefix prefixes every environment variable.
	EnvPrefix = "JSONTYPINGS_"

	DefaultServerAddr    = ":8080"
	DefaultMemoryEntries = 512
	DefaultLogMaxSizeMB  = 50
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// Cache backends.
const (
	CacheFile   = "file"
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// =============================================================================
// Settings
// =============================================================================

// Settings is the complete jsontypings configuration.
type Settings struct {
	render.Config

	// Name is the root interface name.
	Name string `toml:"name" json:"name"`

	Cache  CacheSettings  `toml:"cache" json:"cache"`
	Server ServerSettings `toml:"server" json:"server"`
	Log    LogSettings    `toml:"log" json:"log"`
}

// CacheSettings selects and configures the result cache.
type CacheSettings struct {
	// Backend is one of file, memory, redis or none. Empty picks file for
	// the CLI and memory for the server.
	Backend       string `toml:"backend" json:"backend"`
	Dir           string `toml:"dir" json:"dir,omitempty"`
	MemoryEntries int    `toml:"memory_entries" json:"memory_entries"`
	RedisAddr     string `toml:"redis_addr" json:"redis_addr,omitempty"`
	RedisPassword string `toml:"redis_password" json:"-"`
	RedisDB       int    `toml:"redis_db" json:"redis_db"`
}

// ServerSettings configures `jsontypings serve`.
type ServerSettings struct {
	Addr         string   `toml:"addr" json:"addr"`
	ReadTimeout  Duration `toml:"read_timeout" json:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" json:"write_timeout"`
	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes int64 `toml:"max_body_bytes" json:"max_body_bytes"`
}

// LogSettings configures the optional rotating log file.
type LogSettings struct {
	File       string `toml:"file" json:"file,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" json:"max_age_days"`
	Compress   bool   `toml:"compress" json:"compress"`
}

// Duration is a time.Duration that reads and writes as a string such as
// "30s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Config: render.DefaultConfig(),
		Name:   DefaultName,
		Cache: CacheSettings{
			MemoryEntries: DefaultMemoryEntries,
		},
		Server: ServerSettings{
			Addr:         DefaultServerAddr,
			ReadTimeout:  Duration{30 * time.Second},
			WriteTimeout: Duration{60 * time.Second},
			MaxBodyBytes: 8 << 20,
		},
		Log: LogSettings{
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
			Compress:   true,
		},
	}
}

// Validate checks the render settings and the cache backend.
func (s Settings) Validate() error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	if err := errors.ValidateTypeName(casing.Pascal(s.Name)); err != nil {
		return err
	}
	switch s.Cache.Backend {
	case "", CacheFile, CacheMemory, CacheRedis, CacheNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid cache backend: %q (must be one of: file, memory, redis, none)", s.Cache.Backend)
	}
	if s.Cache.Backend == CacheRedis && s.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend redis requires redis_addr")
	}
	return nil
}

// Encode writes s as TOML.
func (s Settings) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// =============================================================================
// Loading
// =============================================================================

// Load builds settings from defaults, the config file at path and the
// environment. An empty path loads DefaultFileName from the working
// directory if it exists. Flags are applied by the caller afterwards.
func Load(path string) (Settings, error) {
	s := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFileName); err == nil {
			path = DefaultFileName
		}
	}
	if path != "" {
		if err := LoadFile(path, &s); err != nil {
			return Settings{}, err
		}
	}

	if err := ApplyEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadFile decodes the TOML file at path over s. Keys absent from the file
// keep their current value; unknown keys are an error.
func LoadFile(path string, s *Settings) error {
	md, err := toml.DecodeFile(path, s)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file %s", filepath.Base(path))
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", filepath.Base(path), strings.Join(keys, ", "))
	}
	return nil
}

// Merge returns base with every non-zero field of override applied.
// Booleans can only be switched on by an override.
func Merge(base, override render.Config) render.Config {
	out := base
	if override.StringDelimiter != "" {
		out.StringDelimiter = override.StringDelimiter
	}
	if override.Indentation != "" {
		out.Indentation = override.Indentation
	}
	if override.TypeScriptVersion != "" {
		out.TypeScriptVersion = override.TypeScriptVersion
	}
	if override.Strategy != "" {
		out.Strategy = override.Strategy
	}
	if override.Partition != "" {
		out.Partition = override.Partition
	}
	out.Sort = out.Sort || override.Sort
	out.WrapArrays = out.WrapArrays || override.WrapArrays
	return out
}

// StrategyFlags resolves the --tree and --family switches. Neither set
// returns an empty kind; both set is a configuration error.
func StrategyFlags(tree, family bool) (render.StrategyKind, error) {
	switch {
	case tree && family:
		return "", errors.New(errors.ErrCodeInvalidConfig, "--tree and --family are mutually exclusive")
	case tree:
		return render.StrategyTree, nil
	case family:
		return render.StrategyFamily, nil
	default:
		return "", nil
	}
}
