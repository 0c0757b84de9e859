package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps viper so settings can come from flags, environment
// variables (WORDLER_ prefix) or an optional wordler.yml next to the
// executable, in that order of precedence.
type Config struct {
	v    *viper.Viper
	args []string
}

func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("wordler", pflag.ContinueOnError)
	fs.String("data-path", "./data", "directory holding the word lists")
	fs.String("goal-list", "goals.txt", "file of valid answer words, relative to data-path")
	fs.String("extra-list", "extra.txt", "file of extra accepted guesses, relative to data-path")
	fs.String("goal", "", "secret goal word for self-play; leave empty to set one in the shell")
	fs.Int("max-solve-size", 1000, "skip recommendations while more goal words than this remain")
	fs.Int("show-pool-limit", 20, "list the remaining goal words once the pool is this small or smaller")
	fs.Int("threads", 0, "search threads; 0 picks a value based on CPU count")
	fs.Bool("debug", false, "debug logging")
	fs.String("cpu-profile", "", "write a CPU profile to this file")
	fs.String("mem-profile", "", "write a memory profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	// anything that wasn't a flag is a one-shot shell command line
	c.args = fs.Args()

	c.v.SetEnvPrefix("wordler")
	c.v.AutomaticEnv()

	c.v.SetConfigName("wordler")
	c.v.AddConfigPath(".")
	if err := c.v.ReadInConfig(); err != nil {
		// a config file is optional
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

// Args returns the non-flag arguments left over after Load.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// GoalListPath and ExtraListPath resolve the word-list files against
// data-path, unless an absolute path was given.
func (c *Config) GoalListPath() string {
	return c.resolve(c.GetString("goal-list"))
}

func (c *Config) ExtraListPath() string {
	return c.resolve(c.GetString("extra-list"))
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.GetString("data-path"), p)
}

// AdjustRelativePaths anchors a relative data-path at the executable's
// directory, so the binary finds its word lists no matter where it is
// invoked from.
func (c *Config) AdjustRelativePaths(exPath string) {
	dp := c.GetString("data-path")
	if !filepath.IsAbs(dp) {
		c.v.Set("data-path", filepath.Join(exPath, dp))
	}
}

// SanitizedSettings returns the settings for the startup log line.
func (c *Config) SanitizedSettings() string {
	return fmt.Sprintf("%v", c.v.AllSettings())
}
