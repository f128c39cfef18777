package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navroute-generator/internal/diagnostic"
	"navroute-generator/internal/schema"
)

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	decls, err := analyzer.LoadPackages("navroute-generator/examples/screens")
	require.NoError(t, err)
	require.Len(t, decls, 3)
	assert.True(t, analyzer.Diagnostics().IsValid())

	ids := make([]string, 0, len(decls))
	for _, d := range decls {
		ids = append(ids, d.ID)
	}

	// Source order
	assert.Equal(t, []string{"home", "search", "profile"}, ids)
}

func TestAnalyzer_ZeroArguments(t *testing.T) {
	decls, err := NewAnalyzer().LoadPackages("navroute-generator/examples/screens")
	require.NoError(t, err)

	home := decls[0]
	assert.Equal(t, "Home", home.Name)
	assert.Empty(t, home.Arguments)
	assert.Contains(t, home.Source, "screens.go:")
}

func TestAnalyzer_SearchFields(t *testing.T) {
	decls, err := NewAnalyzer().LoadPackages("navroute-generator/examples/screens")
	require.NoError(t, err)

	search := decls[1]
	assert.Equal(t, "Search", search.Name)
	require.Len(t, search.Arguments, 3)

	assert.Equal(t, schema.ArgumentDecl{Name: "query", Type: "string"}, search.Arguments[0])

	page := search.Arguments[1]
	assert.Equal(t, "page", page.Name)
	assert.Equal(t, "int", page.Type)
	assert.False(t, page.Nullable)
	require.NotNil(t, page.Default)
	assert.Equal(t, "1", page.Default.Text)

	sort := search.Arguments[2]
	assert.Equal(t, "sort", sort.Name)
	assert.Equal(t, "string", sort.Type)
	assert.True(t, sort.Nullable)
	assert.Nil(t, sort.Default)
}

func TestAnalyzer_DirectiveName(t *testing.T) {
	decls, err := NewAnalyzer().LoadPackages("navroute-generator/examples/screens")
	require.NoError(t, err)

	profile := decls[2]
	assert.Equal(t, "profile", profile.ID)
	assert.Equal(t, "UserProfile", profile.Name)

	// Cache is skipped by its tag
	require.Len(t, profile.Arguments, 2)
	assert.Equal(t, "userId", profile.Arguments[0].Name)
	assert.Equal(t, "int", profile.Arguments[0].Type)
	assert.Equal(t, "tab", profile.Arguments[1].Name)
	assert.True(t, profile.Arguments[1].Nullable)
}

func TestAnalyzer_InvalidDeclarations(t *testing.T) {
	analyzer := NewAnalyzer()
	analyzer.Dir = "testdata/invalid"

	decls, err := analyzer.LoadPackages(".")
	require.NoError(t, err)

	// NotAStruct is dropped, Ignored has no directive
	require.Len(t, decls, 1)
	assert.Equal(t, "broken", decls[0].ID)
	require.Len(t, decls[0].Arguments, 1)
	assert.Equal(t, "name", decls[0].Arguments[0].Name)

	diags := analyzer.Diagnostics()
	assert.True(t, diags.HasErrors())

	codes := make(map[string]diagnostic.Diagnostic)
	for _, d := range diags.All() {
		codes[d.Code] = d
	}

	require.Contains(t, codes, "unsupported_field_type")
	assert.Equal(t, "Tags", codes["unsupported_field_type"].Argument)

	require.Contains(t, codes, "directive_not_struct")
	assert.Contains(t, codes["directive_not_struct"].Destination, "not_a_struct")

	require.Contains(t, codes, "unknown_directive_key")
	assert.Equal(t, diagnostic.DiagnosticWarning, codes["unknown_directive_key"].Severity)
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("navroute-generator/does/not/exist")
	require.Error(t, err)
}
