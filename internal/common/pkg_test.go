package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageName(t *testing.T) {
	tests := []struct {
		importPath string
		want       string
	}{
		{"", ""},
		{"navroute-generator/nav", "nav"},
		{"nav", "nav"},
		{"example.com/app/nav/v2", "nav"},
		{"example.com/app/go-nav", "nav"},
		{"gopkg.in/yaml.v3", "yaml"},
		{"example.com/app/nav-kit", "navkit"},
		{"v3", "v3"},
	}

	for _, tt := range tests {
		t.Run(tt.importPath, func(t *testing.T) {
			assert.Equal(t, tt.want, PackageName(tt.importPath))
		})
	}
}
