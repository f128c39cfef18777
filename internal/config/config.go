// Package config loads navgen settings from a TOML file.
//
//	package  = "navigation"
//	output   = "./navigation"
//	runtime  = "navroute-generator/nav"
//	comments = true
//
//	sources      = ["./screens"]
//	declarations = ["routes.yaml", "extra.hcl"]
//
// File paths are resolved against the directory of the file, which is also
// where source package patterns are loaded from.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"navroute-generator/internal/gen"
)

// DefaultFilename is the config file looked up when none is given.
const DefaultFilename = "navgen.toml"

// Config holds generator settings.
type Config struct {
	// Package is the name of the generated package.
	Package string `toml:"package"`
	// Output is the directory generated files are written to.
	Output string `toml:"output"`
	// Runtime is the import path of the nav runtime.
	Runtime string `toml:"runtime"`
	// Comments enables doc comments in generated code.
	Comments bool `toml:"comments"`
	// Sources are Go package patterns scanned for annotated structs.
	Sources []string `toml:"sources"`
	// Declarations are YAML or HCL declaration files.
	Declarations []string `toml:"declarations"`

	// Dir is the directory the config was loaded from.
	Dir string `toml:"-"`
}

// Default returns the configuration used without a config file.
func Default() Config {
	g := gen.DefaultGeneratorConfig()

	return Config{
		Package:  g.PackageName,
		Output:   g.OutputDir,
		Runtime:  g.RuntimeImport,
		Comments: g.GenerateComments,
	}
}

// Load reads path on top of the defaults. Keys the Config does not know
// are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return Config{}, fmt.Errorf("loading config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.resolve(filepath.Dir(path))

	return cfg, nil
}

// resolve makes relative file paths relative to dir.
func (c *Config) resolve(dir string) {
	c.Dir = dir

	if c.Output != "" && !filepath.IsAbs(c.Output) {
		c.Output = filepath.Join(dir, c.Output)
	}

	for i, d := range c.Declarations {
		if !filepath.IsAbs(d) {
			c.Declarations[i] = filepath.Join(dir, d)
		}
	}
}

// Validate checks that the configuration can drive a generator run.
func (c *Config) Validate() error {
	var errs []error

	if c.Package == "" {
		errs = append(errs, errors.New("package is required"))
	}

	if c.Output == "" {
		errs = append(errs, errors.New("output is required"))
	}

	if len(c.Sources) == 0 && len(c.Declarations) == 0 {
		errs = append(errs, errors.New("at least one source or declaration file is required"))
	}

	return errors.Join(errs...)
}

// GeneratorConfig converts the settings into a generator configuration.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		PackageName:      c.Package,
		OutputDir:        c.Output,
		RuntimeImport:    c.Runtime,
		GenerateComments: c.Comments,
	}
}
