package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAMLFile loads and parses a YAML declaration file from the given path.
func LoadYAMLFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	f, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.setSource(path)

	return f, nil
}

// ParseYAML parses YAML data into a File.
func ParseYAML(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// yamlArgument mirrors ArgumentDecl for decoding. Default is kept as a raw
// node so an explicit null can be told apart from an absent key.
type yamlArgument struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"`
	Nullable bool      `yaml:"nullable"`
	Default  yaml.Node `yaml:"default"`
}

// UnmarshalYAML implements custom YAML unmarshaling for ArgumentDecl.
// Accepts any scalar default; "default: null" declares a null default.
func (a *ArgumentDecl) UnmarshalYAML(node *yaml.Node) error {
	var raw yamlArgument

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	*a = ArgumentDecl{
		Name:     raw.Name,
		Type:     raw.Type,
		Nullable: raw.Nullable,
	}

	switch raw.Default.Kind {
	case 0:
		// No default key.
	case yaml.ScalarNode:
		if raw.Default.ShortTag() == "!!null" {
			a.Default = &DefaultValue{Null: true}
		} else {
			a.Default = &DefaultValue{Text: raw.Default.Value}
		}
	default:
		return fmt.Errorf("line %d: default of argument %q must be a scalar", raw.Default.Line, raw.Name)
	}

	return nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

func (f *File) setSource(path string) {
	for i := range f.Destinations {
		if f.Destinations[i].Source == "" {
			f.Destinations[i].Source = path
		}
	}
}
