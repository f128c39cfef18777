package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navroute-generator/nav"
)

type testKey string

func (k testKey) ArgumentKey() string { return string(k) }

const (
	keyA    testKey = "a"
	keyB    testKey = "b"
	keyP    testKey = "p"
	keyQ    testKey = "q"
	keyID   testKey = "id"
	keyTab  testKey = "tab"
	keyNope testKey = "nope"
)

func TestNewRoute_NoArguments(t *testing.T) {
	d := nav.MustDestination[testKey]("home")

	route, err := nav.NewRoute(d, nil)
	require.NoError(t, err)
	assert.Equal(t, "home/", route.String())
	assert.Equal(t, "home", route.Destination())
}

func TestNewRoute_TopLevel(t *testing.T) {
	route, err := nav.NewRoute(nav.TopLevel("search"), nil)
	require.NoError(t, err)
	assert.Equal(t, "search/", route.String())
}

func TestNewRoute_RequiredArguments(t *testing.T) {
	d := nav.MustDestination("detail",
		nav.Argument[testKey]{Key: keyA, Type: nav.TypeInt},
		nav.Argument[testKey]{Key: keyB, Type: nav.TypeString},
	)

	route, err := nav.NewRoute(d, nav.Values[testKey]{
		keyA: nav.Int(1),
		keyB: nav.String("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, "detail/1/x", route.String())
}

func TestNewRoute_Optional(t *testing.T) {
	nullableP := nav.Argument[testKey]{Key: keyP, Type: nav.TypeInt, Nullable: true}
	defaultQ := nav.Argument[testKey]{Key: keyQ, Type: nav.TypeString, Default: nav.Default(nav.String("asc"))}

	tests := []struct {
		name   string
		args   []nav.Argument[testKey]
		values nav.Values[testKey]
		want   string
	}{
		{
			name: "nullable without value omits query",
			args: []nav.Argument[testKey]{nullableP},
			want: "search/",
		},
		{
			name:   "explicit null omits query",
			args:   []nav.Argument[testKey]{nullableP},
			values: nav.Values[testKey]{keyP: nav.Null()},
			want:   "search/",
		},
		{
			name:   "provided value",
			args:   []nav.Argument[testKey]{nullableP},
			values: nav.Values[testKey]{keyP: nav.Int(5)},
			want:   "search/?p=5",
		},
		{
			name: "default value",
			args: []nav.Argument[testKey]{defaultQ},
			want: "search/?q=asc",
		},
		{
			name:   "provided value overrides default",
			args:   []nav.Argument[testKey]{defaultQ},
			values: nav.Values[testKey]{keyQ: nav.String("desc")},
			want:   "search/?q=desc",
		},
		{
			name:   "declaration order kept",
			args:   []nav.Argument[testKey]{nullableP, defaultQ},
			values: nav.Values[testKey]{keyQ: nav.String("desc"), keyP: nav.Int(2)},
			want:   "search/?p=2&q=desc",
		},
		{
			name: "null pair skipped between others",
			args: []nav.Argument[testKey]{
				defaultQ,
				nullableP,
				{Key: keyTab, Type: nav.TypeBool, Default: nav.Default(nav.Bool(true))},
			},
			want: "search/?q=asc&tab=true",
		},
		{
			name:   "nullable with default given null",
			args:   []nav.Argument[testKey]{{Key: keyP, Type: nav.TypeInt, Nullable: true, Default: nav.Default(nav.Int(3))}},
			values: nav.Values[testKey]{keyP: nav.Null()},
			want:   "search/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := nav.MustDestination("search", tt.args...)

			route, err := nav.NewRoute(d, tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, route.String())
		})
	}
}

func TestNewRoute_RequiredAndOptional(t *testing.T) {
	d := nav.MustDestination("detail",
		nav.Argument[testKey]{Key: keyTab, Type: nav.TypeString, Nullable: true},
		nav.Argument[testKey]{Key: keyID, Type: nav.TypeInt},
	)

	route, err := nav.NewRoute(d, nav.Values[testKey]{
		keyID:  nav.Int(7),
		keyTab: nav.String("info"),
	})
	require.NoError(t, err)
	assert.Equal(t, "detail/7?tab=info", route.String())
}

func TestNewRoute_MissingRequiredArgument(t *testing.T) {
	d := nav.MustDestination("detail",
		nav.Argument[testKey]{Key: keyA, Type: nav.TypeInt},
		nav.Argument[testKey]{Key: keyB, Type: nav.TypeString},
	)

	route, err := nav.NewRoute(d, nav.Values[testKey]{keyA: nav.Int(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, nav.ErrMissingRequiredArgument)
	assert.True(t, nav.IsMissingRequiredArgument(err))
	assert.Empty(t, route.String())

	var argErr *nav.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "detail", argErr.Destination)
	assert.Equal(t, "b", argErr.Argument)
}

func TestNewRoute_NonNullableNullValue(t *testing.T) {
	tests := []struct {
		name   string
		arg    nav.Argument[testKey]
		values nav.Values[testKey]
	}{
		{
			name:   "required given null",
			arg:    nav.Argument[testKey]{Key: keyA, Type: nav.TypeString},
			values: nav.Values[testKey]{keyA: nav.Null()},
		},
		{
			name:   "defaulted given null",
			arg:    nav.Argument[testKey]{Key: keyA, Type: nav.TypeString, Default: nav.Default(nav.String("x"))},
			values: nav.Values[testKey]{keyA: nav.Null()},
		},
		{
			name: "null default on non-nullable",
			arg:  nav.Argument[testKey]{Key: keyA, Type: nav.TypeString, Default: nav.Default(nav.Null())},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := nav.MustDestination("screen", tt.arg)

			_, err := nav.NewRoute(d, tt.values)
			require.Error(t, err)
			assert.True(t, nav.IsNonNullableNullValue(err))
		})
	}
}

func TestNewRoute_TypeMismatch(t *testing.T) {
	d := nav.MustDestination("detail", nav.Argument[testKey]{Key: keyID, Type: nav.TypeInt})

	_, err := nav.NewRoute(d, nav.Values[testKey]{keyID: nav.String("7")})
	assert.ErrorIs(t, err, nav.ErrArgumentTypeMismatch)
}

func TestNewRoute_UnknownTypeAcceptsAnyKind(t *testing.T) {
	d := nav.MustDestination("detail", nav.Argument[testKey]{Key: keyID})

	route, err := nav.NewRoute(d, nav.Values[testKey]{keyID: nav.Float(1.5)})
	require.NoError(t, err)
	assert.Equal(t, "detail/1.5", route.String())
}

func TestNewRoute_Escaping(t *testing.T) {
	d := nav.MustDestination("search",
		nav.Argument[testKey]{Key: keyA, Type: nav.TypeString},
		nav.Argument[testKey]{Key: keyQ, Type: nav.TypeString, Nullable: true},
	)

	route, err := nav.NewRoute(d, nav.Values[testKey]{
		keyA: nav.String("hello world/x"),
		keyQ: nav.String("a&b c"),
	})
	require.NoError(t, err)
	assert.Equal(t, "search/hello%20world%2Fx?q=a%26b+c", route.String())
}

func TestNewRoute_IgnoresUndeclaredValues(t *testing.T) {
	d := nav.MustDestination("detail", nav.Argument[testKey]{Key: keyID, Type: nav.TypeInt})

	route, err := nav.NewRoute(d, nav.Values[testKey]{
		keyID:   nav.Int(3),
		keyNope: nav.String("ignored"),
	})
	require.NoError(t, err)
	assert.Equal(t, "detail/3", route.String())
}

func TestNewRoute_NilDestination(t *testing.T) {
	_, err := nav.NewRoute[testKey](nil, nil)
	assert.ErrorIs(t, err, nav.ErrInvalidDestination)
}

func TestMustRoute_Panics(t *testing.T) {
	d := nav.MustDestination("detail", nav.Argument[testKey]{Key: keyID, Type: nav.TypeInt})

	assert.Panics(t, func() { nav.MustRoute(d, nil) })
	assert.NotPanics(t, func() { nav.MustRoute(d, nav.Values[testKey]{keyID: nav.Int(1)}) })
}
