package schema

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
)

// LoadFiles loads declaration files and merges them into one File.
// The format is chosen by extension: .yaml/.yml or .hcl.
func LoadFiles(paths ...string) (*File, error) {
	parser := hclparse.NewParser()
	files := make([]*File, 0, len(paths))

	for _, path := range paths {
		var (
			f   *File
			err error
		)

		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			f, err = LoadYAMLFile(path)
		case ".hcl":
			f, err = LoadHCLFile(path, parser)
		default:
			err = fmt.Errorf("unsupported declaration file %s: extension %q", path, ext)
		}

		if err != nil {
			return nil, err
		}

		files = append(files, f)
	}

	return Merge(files...)
}

// Merge concatenates the destinations of several files, keeping order.
// Files must agree on the package name when they set one.
func Merge(files ...*File) (*File, error) {
	out := &File{Version: CurrentVersion}

	for _, f := range files {
		if f == nil {
			continue
		}

		if f.Version != CurrentVersion {
			return nil, fmt.Errorf("unsupported declaration version %q (want %q)", f.Version, CurrentVersion)
		}

		if f.Package != "" {
			if out.Package != "" && out.Package != f.Package {
				return nil, fmt.Errorf("conflicting package names %q and %q", out.Package, f.Package)
			}

			out.Package = f.Package
		}

		out.Destinations = append(out.Destinations, f.Destinations...)
	}

	return out, nil
}
