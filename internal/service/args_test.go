package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/hanpama/graphdoc/internal/language"
	response "github.com/hanpama/graphdoc/internal/response"
)

func mustFieldArgs(t *testing.T, query string) language.ArgumentList {
	t.Helper()
	doc, err := language.ParseQuery(query)
	require.NoError(t, err)
	field, ok := doc.Operations[0].SelectionSet[0].(*language.Field)
	require.True(t, ok)
	return field.Arguments
}

func TestMaterializeArgumentsLiterals(t *testing.T) {
	args := mustFieldArgs(t, `{
		f(s: "x", i: 3, fl: 1.5, b: true, e: RED, n: null, l: [1, 2], o: {a: 1}, v: $var)
	}`)

	tree, err := MaterializeArguments(args, map[string]any{"var": "hello"})
	require.NoError(t, err)

	out, err := json.Marshal(tree)
	require.NoError(t, err)
	require.Equal(t,
		`{"s":"x","i":3,"fl":1.5,"b":true,"e":"RED","n":null,"l":[1,2],"o":{"a":1},"v":"hello"}`,
		string(out))

	e, err := tree.Member("e")
	require.NoError(t, err)
	require.Equal(t, response.KindEnum, e.Kind())
}

func TestMaterializeArgumentsUnboundVariableIsNull(t *testing.T) {
	args := mustFieldArgs(t, `{ f(v: $missing) }`)
	tree, err := MaterializeArguments(args, nil)
	require.NoError(t, err)

	v, err := tree.Member("v")
	require.NoError(t, err)
	require.Equal(t, response.KindNull, v.Kind())
}

func TestFromGoSortsMapKeys(t *testing.T) {
	v, err := FromGo(map[string]any{"b": 2, "a": 1})
	require.NoError(t, err)
	out, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, `{"a":1,"b":2}`, string(out))
}

func TestFromGoIntegralFloatBecomesInt(t *testing.T) {
	v, err := FromGo(float64(3))
	require.NoError(t, err)
	require.Equal(t, response.KindInt, v.Kind())

	v, err = FromGo(1.5)
	require.NoError(t, err)
	require.Equal(t, response.KindFloat, v.Kind())
}

func TestTypedArgumentExtraction(t *testing.T) {
	args := response.NewValue(response.KindObject)
	require.NoError(t, args.AppendMember("id", response.NewString("dGFzay0x")))
	require.NoError(t, args.AppendMember("first", response.NewInt(5)))
	require.NoError(t, args.AppendMember("exact", response.NewFloat(2)))
	require.NoError(t, args.AppendMember("done", response.NewBoolean(true)))
	require.NoError(t, args.AppendMember("after", response.Value{}))

	id, err := RequireID(&args, "id")
	require.NoError(t, err)
	require.Equal(t, []byte("dGFzay0x"), id)

	first, ok, err := FindInt(&args, "first")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, first)

	// An integral Float is accepted where an Int is expected.
	exact, err := RequireInt(&args, "exact")
	require.NoError(t, err)
	require.Equal(t, 2, exact)

	done, err := RequireBoolean(&args, "done")
	require.NoError(t, err)
	require.True(t, done)

	_, ok, err = FindInt(&args, "absent")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = RequireString(&args, "absent")
	require.ErrorIs(t, err, response.ErrMissingMember)

	// A Null argument counts as absent for FindValue.
	_, ok, err = FindValue(&args, "after")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWrongTypedArgumentIsADataError(t *testing.T) {
	args := response.NewValue(response.KindObject)
	require.NoError(t, args.AppendMember("first", response.NewString("five")))
	require.NoError(t, args.AppendMember("frac", response.NewFloat(1.5)))

	_, err := RequireInt(&args, "first")
	require.Error(t, err)
	require.False(t, IsDefect(err))

	_, err = RequireInt(&args, "frac")
	require.Error(t, err)
	require.False(t, IsDefect(err))

	_, err = RequireBoolean(&args, "first")
	require.Error(t, err)
	require.False(t, IsDefect(err))
}

func TestPathString(t *testing.T) {
	p := Path{"tasks", 0, "title"}
	require.Equal(t, "tasks[0].title", p.String())
	require.Equal(t, "", Path{}.String())
}
