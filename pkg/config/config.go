package config

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// ProjectPlaceholder is replaced with the project name in the bootstrap command.
const ProjectPlaceholder = "{project}"

// Config holds the literal commands and directory names used by the bootstrap steps.
type Config struct {
	// Marker separates the source root from the build output in the executable's path.
	Marker string `yaml:"marker"`
	// Checkouts is the directory (relative to the source root) holding fetched dependencies.
	Checkouts  string   `yaml:"checkouts"`
	Bootstrap  []string `yaml:"bootstrap"`
	Build      []string `yaml:"build"`
	Submodules []string `yaml:"submodules"`
	Resolve    []string `yaml:"resolve"`
}

// Env lists the settings read from the environment.
type Env struct {
	ConfigPath string `env:"BOOTSTRAP_CONFIG"`
	Verbose    bool   `env:"BOOTSTRAP_VERBOSE"`
	Debug      bool   `env:"BOOTSTRAP_DEBUG"`
	Marker     string `env:"BOOTSTRAP_MARKER"`
	Checkouts  string `env:"BOOTSTRAP_CHECKOUTS"`
	CI         bool   `env:"CI"`
}

func Default() *Config {
	return &Config{
		Marker:     ".build/",
		Checkouts:  ".build/checkouts",
		Bootstrap:  []string{"bootstrap-" + ProjectPlaceholder},
		Build:      []string{"swift", "build"},
		Submodules: []string{"git", "submodule", "update", "--init", "--recursive"},
		Resolve:    []string{"swift", "package", "resolve"},
	}
}

func LoadEnv() (Env, error) {
	var result Env
	if err := env.Parse(&result); err != nil {
		return result, eris.Wrap(err, "Failed to parse environment")
	}
	return result, nil
}

// Load builds the effective configuration. Values from the file at path (if path
// isn't empty) replace the defaults and non-empty values in environ replace both.
func Load(path string, environ Env) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "Could not open file %s.", path)
		}

		err = yaml.Unmarshal(data, cfg)
		if err != nil {
			return nil, eris.Wrapf(err, "Failed to parse %s.", path)
		}
	}

	if environ.Marker != "" {
		cfg.Marker = environ.Marker
	}
	if environ.Checkouts != "" {
		cfg.Checkouts = environ.Checkouts
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Marker == "" {
		return eris.New("marker must not be empty")
	}
	if c.Checkouts == "" {
		return eris.New("checkouts must not be empty")
	}

	for name, cmd := range map[string][]string{
		"bootstrap":  c.Bootstrap,
		"build":      c.Build,
		"submodules": c.Submodules,
		"resolve":    c.Resolve,
	} {
		if len(cmd) == 0 || cmd[0] == "" {
			return eris.Errorf("%s command must not be empty", name)
		}
	}

	found := false
	for _, arg := range c.Bootstrap {
		if strings.Contains(arg, ProjectPlaceholder) {
			found = true
			break
		}
	}
	if !found {
		return eris.Errorf("bootstrap command must reference %s", ProjectPlaceholder)
	}

	return nil
}

// BootstrapCommand returns the bootstrap command for the given project.
func (c *Config) BootstrapCommand(project string) []string {
	args := make([]string, len(c.Bootstrap))
	for idx, arg := range c.Bootstrap {
		args[idx] = strings.ReplaceAll(arg, ProjectPlaceholder, project)
	}
	return args
}
