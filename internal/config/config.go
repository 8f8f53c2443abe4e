package config

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bashhack/gitpix/internal/errors"
	"github.com/bashhack/gitpix/internal/git"
	"github.com/bashhack/gitpix/internal/grid"
)

const (
	// DefaultWeight is the number of commits painted into each background cell.
	// Ten is enough for the darkest shade on a typical contribution graph.
	DefaultWeight = grid.DefaultWeight

	// MaxWeight caps the per-cell commit count. The full default scene at
	// this weight is already tens of thousands of commits.
	MaxWeight = 100

	// DefaultMessagePrefix starts every commit message: "pixel #N".
	DefaultMessagePrefix = git.DefaultMessagePrefix

	// DefaultProgressEvery is how many attempted commits pass between
	// progress lines. Zero disables them.
	DefaultProgressEvery = git.DefaultProgressEvery

	// EnvPrefix namespaces every environment variable gitpix reads.
	EnvPrefix = "GITPIX_"
)

// Config holds all gitpix settings, merged from defaults, an optional YAML
// file, GITPIX_* environment variables and command-line flags, in that order.
type Config struct {
	// Mode

	// Commit selects commit mode. Without it gitpix only prints the preview.
	Commit bool `yaml:"-"`

	// Repository configuration

	// RepoPath is the repository commits are written to.
	// If empty, the current working directory is used.
	RepoPath string `yaml:"repo"`

	// Painting options

	// Weight is the commit count per background cell.
	Weight int `yaml:"weight"`

	// MessagePrefix starts every commit message; the sequence number follows.
	MessagePrefix string `yaml:"message_prefix"`

	// ProgressEvery prints a progress line after this many attempts.
	ProgressEvery int `yaml:"progress_every"`

	// Strict makes a commit run with any failed commit exit non-zero.
	Strict bool `yaml:"strict"`

	// User experience options

	// Verbose controls informational output. Inverted by --quiet.
	Verbose bool `yaml:"verbose"`

	// Debugging options

	// Debug enables the internal log file.
	Debug bool `yaml:"debug"`

	// LogFile is where debug logs go. If empty it is derived from RepoPath.
	LogFile string `yaml:"log_file"`

	// ConfigFile is the YAML file that was loaded, if any.
	ConfigFile string `yaml:"-"`

	// Special flags

	// Version prints version information and exits.
	Version bool `yaml:"-"`

	// ShowLogo prints the logo and exits.
	ShowLogo bool `yaml:"-"`

	// VersionInfo contains version, commit, and build date information.
	VersionInfo VersionInfo `yaml:"-"`

	// ParsedQuiet tracks the state of the --quiet flag until ApplyFlags.
	ParsedQuiet *bool `yaml:"-"`
}

// VersionInfo contains build-time version metadata, injected via -ldflags.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		Weight:        DefaultWeight,
		MessagePrefix: DefaultMessagePrefix,
		ProgressEvery: DefaultProgressEvery,
		Verbose:       true,

		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// FindConfigPath returns the value of --config in args, falling back to
// GITPIX_CONFIG. Flags are not registered yet when this runs, so argv is
// scanned by hand; scanning stops at "--".
func FindConfigPath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if value, ok := strings.CutPrefix(arg, "--config="); ok {
			return value
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(EnvPrefix + "CONFIG")
}

// LoadFile merges the YAML document at path into c. Keys absent from the
// file keep their current values; unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewConfigError("config", path,
			errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.NewConfigError("config", path,
			errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	c.ConfigFile = path
	return nil
}

// LoadFromEnvironment updates config from GITPIX_* environment variables
func (c *Config) LoadFromEnvironment() {
	c.RepoPath = getEnvString("REPO_PATH", c.RepoPath)
	c.Weight = getEnvInt("WEIGHT", c.Weight)
	c.MessagePrefix = getEnvString("MESSAGE_PREFIX", c.MessagePrefix)
	c.ProgressEvery = getEnvInt("PROGRESS_EVERY", c.ProgressEvery)
	c.Strict = getEnvBool("STRICT", c.Strict)
	c.Verbose = getEnvBool("VERBOSE", c.Verbose)
	c.Debug = getEnvBool("DEBUG", c.Debug)
	c.LogFile = getEnvString("LOG_FILE", c.LogFile)
}

// SetupFlags registers flags on fs with the current values as defaults, so
// anything loaded earlier shows up in --help and is overridden by the flag.
func (c *Config) SetupFlags(fs *pflag.FlagSet) {
	var quiet bool

	fs.BoolVar(&c.Commit, "commit", c.Commit, "Create the commits (default: preview only)")
	fs.StringVar(&c.RepoPath, "repo", c.RepoPath, "Path to repository (default: current directory)")
	fs.IntVar(&c.Weight, "weight", c.Weight, fmt.Sprintf("Commits per background cell (1-%d)", MaxWeight))
	fs.StringVar(&c.MessagePrefix, "prefix", c.MessagePrefix, "Commit message prefix")
	fs.IntVar(&c.ProgressEvery, "progress-every", c.ProgressEvery, "Print progress every N commits (0 = never)")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "Exit non-zero if any commit fails")
	fs.BoolVar(&quiet, "quiet", !c.Verbose, "Hide informational messages")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Path to log file (default: ~/.local/share/gitpix/logs/gitpix-{repo-hash}.log)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML file with default settings (env: GITPIX_CONFIG)")
	fs.BoolVar(&c.Version, "version", c.Version, "Print version information and exit")
	fs.BoolVar(&c.ShowLogo, "logo", c.ShowLogo, "Display ASCII logo and exit")

	c.ParsedQuiet = &quiet
}

// ApplyFlags resolves inverted flags once parsing has succeeded.
func (c *Config) ApplyFlags() {
	if c.ParsedQuiet != nil {
		c.Verbose = !(*c.ParsedQuiet)
	}
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if c.Weight < 1 || c.Weight > MaxWeight {
		err := errors.Errorf("invalid weight: %d (must be between 1 and %d)", c.Weight, MaxWeight)
		return errors.NewConfigError("weight", c.Weight, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	if c.ProgressEvery < 0 {
		err := errors.Errorf("invalid progress interval: %d (must be 0 or greater)", c.ProgressEvery)
		return errors.NewConfigError("progressEvery", c.ProgressEvery, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	c.MessagePrefix = strings.TrimSpace(c.MessagePrefix)
	if c.MessagePrefix == "" {
		return errors.NewConfigError("messagePrefix", nil,
			errors.Wrap(errors.ErrInvalidConfiguration, "commit message prefix must not be empty"))
	}

	if c.RepoPath == "" {
		var err error
		c.RepoPath, err = os.Getwd()
		if err != nil {
			return errors.NewConfigError("repoPath", "", errors.Wrap(err, "failed to get current directory"))
		}
	}

	absRepoPath, err := filepath.Abs(c.RepoPath)
	if err != nil {
		return errors.NewConfigError("repoPath", c.RepoPath, errors.Wrap(err, "failed to resolve absolute path"))
	}
	c.RepoPath = absRepoPath

	if c.LogFile == "" {
		c.LogFile = DefaultLogFile(c.RepoPath)
	}

	return nil
}

// DefaultLogFile follows the XDG base directory layout:
// $XDG_DATA_HOME/gitpix/logs/gitpix-<repo-hash>.log
func DefaultLogFile(repoPath string) string {
	logDir := os.Getenv("XDG_DATA_HOME")
	if logDir == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			logDir = filepath.Join(homeDir, ".local", "share")
		} else {
			logDir = os.TempDir()
		}
	}

	sum := sha256.Sum256([]byte(repoPath))
	return filepath.Join(logDir, "gitpix", "logs", fmt.Sprintf("gitpix-%x.log", sum[:8]))
}

// getEnvString returns an environment variable string or a default value
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(EnvPrefix + key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as int or a default value
func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(EnvPrefix + key); exists {
		if value, err := strconv.Atoi(strings.TrimSpace(valueStr)); err == nil {
			return value
		}
	}
	return defaultValue
}

// getEnvBool returns an environment variable as bool or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(EnvPrefix + key); exists {
		switch strings.ToLower(strings.TrimSpace(valueStr)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultValue
}
