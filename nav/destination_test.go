package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navroute-generator/nav"
)

func TestNewDestination_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		args    []nav.Argument[testKey]
		wantErr error
	}{
		{name: "empty id", id: "", wantErr: nav.ErrInvalidDestination},
		{name: "reserved char in id", id: "a/b", wantErr: nav.ErrInvalidDestination},
		{
			name:    "empty argument name",
			id:      "detail",
			args:    []nav.Argument[testKey]{{Key: "", Type: nav.TypeInt}},
			wantErr: nav.ErrInvalidDestination,
		},
		{
			name: "duplicate argument",
			id:   "detail",
			args: []nav.Argument[testKey]{
				{Key: keyID, Type: nav.TypeInt},
				{Key: keyID, Type: nav.TypeString, Nullable: true},
			},
			wantErr: nav.ErrDuplicateArgument,
		},
		{
			name:    "default of wrong type",
			id:      "detail",
			args:    []nav.Argument[testKey]{{Key: keyID, Type: nav.TypeInt, Default: nav.Default(nav.String("1"))}},
			wantErr: nav.ErrArgumentTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := nav.NewDestination(tt.id, tt.args...)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMustDestination_Panics(t *testing.T) {
	assert.Panics(t, func() { nav.MustDestination[testKey]("") })
}

func TestDestination_Pattern(t *testing.T) {
	tests := []struct {
		name string
		args []nav.Argument[testKey]
		want string
	}{
		{name: "no arguments", want: "detail/"},
		{
			name: "required only",
			args: []nav.Argument[testKey]{{Key: keyA, Type: nav.TypeInt}, {Key: keyB, Type: nav.TypeString}},
			want: "detail/{a}/{b}",
		},
		{
			name: "optional only",
			args: []nav.Argument[testKey]{
				{Key: keyP, Type: nav.TypeInt, Nullable: true},
				{Key: keyQ, Type: nav.TypeString, Default: nav.Default(nav.String("x"))},
			},
			want: "detail/?p={p}&q={q}",
		},
		{
			name: "mixed",
			args: []nav.Argument[testKey]{
				{Key: keyTab, Type: nav.TypeString, Nullable: true},
				{Key: keyID, Type: nav.TypeInt},
			},
			want: "detail/{id}?tab={tab}",
		},
		{
			name: "escaped query name",
			args: []nav.Argument[testKey]{{Key: testKey("a+b"), Type: nav.TypeString, Nullable: true}},
			want: "detail/?a%2Bb={a+b}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := nav.MustDestination("detail", tt.args...)
			assert.Equal(t, tt.want, d.Pattern())
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDestination_Accessors(t *testing.T) {
	d := nav.MustDestination("detail",
		nav.Argument[testKey]{Key: keyID, Type: nav.TypeInt},
		nav.Argument[testKey]{Key: keyTab, Type: nav.TypeString, Nullable: true},
	)

	assert.Equal(t, "detail", d.ID())

	args := d.Arguments()
	require.Len(t, args, 2)
	assert.Equal(t, "id", args[0].Name())
	assert.False(t, args[0].Optional())
	assert.True(t, args[1].Optional())

	// The returned slice is a copy.
	args[0].Type = nav.TypeString
	arg, ok := d.Argument(keyID)
	require.True(t, ok)
	assert.Equal(t, nav.TypeInt, arg.Type)

	_, ok = d.Argument(keyNope)
	assert.False(t, ok)
}
