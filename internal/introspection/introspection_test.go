package introspection

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/hanpama/graphdoc/internal/language"
	service "github.com/hanpama/graphdoc/internal/service"
)

func testSchema() *Schema {
	return NewSchema("Query", "", []Type{
		{Kind: ScalarKind, Name: "String"},
		{Kind: ScalarKind, Name: "Boolean"},
		{
			Kind: EnumKind,
			Name: "TaskState",
			EnumValues: []EnumValue{
				{Name: "NEW"},
				{Name: "STARTED"},
				{Name: "COMPLETE", IsDeprecated: true, DeprecationReason: "use isComplete"},
			},
		},
		{
			Kind: ObjectKind,
			Name: "Query",
			Fields: []Field{
				{
					Name: "title",
					Type: NonNull(Named("String")),
					Args: []InputValue{{Name: "upper", Type: Named("Boolean")}},
				},
			},
		},
	})
}

func introspect(t *testing.T, s *Schema, query string) string {
	t.Helper()
	root := service.NewObject("Query", map[string]service.FieldResolver{
		"__schema": SchemaField(s),
		"__type":   TypeField(s),
	})
	doc, err := language.ParseQuery(query)
	require.NoError(t, err)
	state := service.NewState(nil, doc.Fragments)
	v, err := root.Resolve(context.Background(), service.ResolverParams{
		State:     state,
		Selection: doc.Operations[0].SelectionSet,
	})
	require.NoError(t, err)
	require.Empty(t, state.Errors())
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}

func TestSchemaRoots(t *testing.T) {
	got := introspect(t, testSchema(), `{
		__schema {
			queryType { name kind }
			mutationType { name }
			subscriptionType { name }
		}
	}`)
	require.Equal(t,
		`{"__schema":{"queryType":{"name":"Query","kind":"OBJECT"},`+
			`"mutationType":null,"subscriptionType":null}}`,
		got)
}

func TestTypesKeepDeclaredOrder(t *testing.T) {
	got := introspect(t, testSchema(), `{ __schema { types { name kind } } }`)
	require.Equal(t,
		`{"__schema":{"types":[`+
			`{"name":"String","kind":"SCALAR"},`+
			`{"name":"Boolean","kind":"SCALAR"},`+
			`{"name":"TaskState","kind":"ENUM"},`+
			`{"name":"Query","kind":"OBJECT"}]}}`,
		got)
}

func TestTypeLookupWithFieldsAndWrappers(t *testing.T) {
	got := introspect(t, testSchema(), `{
		__type(name: "Query") {
			name
			fields {
				name
				args { name type { name kind } }
				type { kind ofType { name kind } }
			}
		}
	}`)
	require.Equal(t,
		`{"__type":{"name":"Query","fields":[{"name":"title",`+
			`"args":[{"name":"upper","type":{"name":"Boolean","kind":"SCALAR"}}],`+
			`"type":{"kind":"NON_NULL","ofType":{"name":"String","kind":"SCALAR"}}}]}}`,
		got)
}

func TestUnknownTypeIsNull(t *testing.T) {
	got := introspect(t, testSchema(), `{ __type(name: "Nope") { name } }`)
	require.Equal(t, `{"__type":null}`, got)
}

func TestEnumValuesHonorIncludeDeprecated(t *testing.T) {
	got := introspect(t, testSchema(), `{ __type(name: "TaskState") { enumValues { name } } }`)
	require.Equal(t,
		`{"__type":{"enumValues":[{"name":"NEW"},{"name":"STARTED"}]}}`,
		got)

	got = introspect(t, testSchema(), `{
		__type(name: "TaskState") {
			enumValues(includeDeprecated: true) { name isDeprecated deprecationReason }
		}
	}`)
	require.Equal(t,
		`{"__type":{"enumValues":[`+
			`{"name":"NEW","isDeprecated":false,"deprecationReason":null},`+
			`{"name":"STARTED","isDeprecated":false,"deprecationReason":null},`+
			`{"name":"COMPLETE","isDeprecated":true,"deprecationReason":"use isComplete"}]}}`,
		got)
}

func TestDirectivesAreListed(t *testing.T) {
	got := introspect(t, testSchema(), `{ __schema { directives { name locations } } }`)
	require.Equal(t,
		`{"__schema":{"directives":[`+
			`{"name":"skip","locations":["FIELD","FRAGMENT_SPREAD","INLINE_FRAGMENT"]},`+
			`{"name":"include","locations":["FIELD","FRAGMENT_SPREAD","INLINE_FRAGMENT"]}]}}`,
		got)
}
