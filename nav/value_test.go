package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navroute-generator/nav"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		value nav.Value
		want  string
		kind  nav.Kind
	}{
		{nav.Null(), "null", nav.KindNull},
		{nav.String("x"), "x", nav.KindString},
		{nav.Int(-12), "-12", nav.KindInt},
		{nav.Bool(true), "true", nav.KindBool},
		{nav.Float(2.5), "2.5", nav.KindFloat},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.kind == nav.KindNull, tt.value.IsNull())
		})
	}
}

func TestValue_Conforms(t *testing.T) {
	assert.True(t, nav.Null().Conforms(nav.TypeInt))
	assert.True(t, nav.Int(1).Conforms(nav.TypeInt))
	assert.False(t, nav.Int(1).Conforms(nav.TypeString))
	assert.True(t, nav.Bool(true).Conforms(nav.TypeUnknown))
}

func TestParseValue(t *testing.T) {
	v, err := nav.ParseValue(nav.TypeInt, "42")
	require.NoError(t, err)
	assert.Equal(t, nav.Int(42), v)

	v, err = nav.ParseValue(nav.TypeBool, "false")
	require.NoError(t, err)
	assert.Equal(t, nav.Bool(false), v)

	v, err = nav.ParseValue(nav.TypeFloat, "0.25")
	require.NoError(t, err)
	assert.Equal(t, nav.Float(0.25), v)

	v, err = nav.ParseValue(nav.TypeUnknown, "raw")
	require.NoError(t, err)
	assert.Equal(t, nav.String("raw"), v)

	_, err = nav.ParseValue(nav.TypeInt, "4x")
	assert.Error(t, err)
}

func TestParseArgType(t *testing.T) {
	for _, name := range nav.ArgTypeNames() {
		typ, ok := nav.ParseArgType(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, typ.String())
	}

	typ, ok := nav.ParseArgType("float64")
	assert.True(t, ok)
	assert.Equal(t, nav.TypeFloat, typ)

	_, ok = nav.ParseArgType("strng")
	assert.False(t, ok)

	assert.Equal(t, "ArgType(9)", nav.ArgType(9).String())
}
