package analyze

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comments(lines ...string) *ast.CommentGroup {
	g := &ast.CommentGroup{}
	for _, l := range lines {
		g.List = append(g.List, &ast.Comment{Text: l})
	}

	return g
}

func TestFindDirective(t *testing.T) {
	tests := []struct {
		name   string
		groups []*ast.CommentGroup
		found  bool
		want   directive
	}{
		{
			name:   "no comments",
			groups: []*ast.CommentGroup{nil},
		},
		{
			name:   "plain doc",
			groups: []*ast.CommentGroup{comments("// Search lists results.")},
		},
		{
			name:   "bare directive",
			groups: []*ast.CommentGroup{comments("// Home.", "//", "//navgen:destination")},
			found:  true,
		},
		{
			name:   "id and name",
			groups: []*ast.CommentGroup{comments("//navgen:destination id=profile name=UserProfile")},
			found:  true,
			want:   directive{ID: "profile", Name: "UserProfile"},
		},
		{
			name:   "unknown keys",
			groups: []*ast.CommentGroup{comments("//navgen:destination id=x colour=red")},
			found:  true,
			want:   directive{ID: "x", Unknown: []string{"colour"}},
		},
		{
			name:   "prefix of another directive",
			groups: []*ast.CommentGroup{comments("//navgen:destinations id=x")},
		},
		{
			name:   "second group",
			groups: []*ast.CommentGroup{nil, comments("//navgen:destination id=late")},
			found:  true,
			want:   directive{ID: "late"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := findDirective(tt.groups...)
			require.Equal(t, tt.found, ok)

			if ok {
				assert.Equal(t, tt.want, *d)
			}
		})
	}
}

func TestParseFieldTag(t *testing.T) {
	assert.Equal(t, fieldTag{}, parseFieldTag(""))
	assert.Equal(t, fieldTag{Skip: true}, parseFieldTag("-"))
	assert.Equal(t, fieldTag{Name: "page"}, parseFieldTag("page"))

	ft := parseFieldTag(",default=a,b")
	assert.Empty(t, ft.Name)
	require.NotNil(t, ft.Default)
	assert.Equal(t, "a,b", *ft.Default)

	ft = parseFieldTag("page,default=")
	assert.Equal(t, "page", ft.Name)
	require.NotNil(t, ft.Default)
	assert.Empty(t, *ft.Default)
}
