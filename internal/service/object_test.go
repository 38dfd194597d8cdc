package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	language "github.com/hanpama/graphdoc/internal/language"
	response "github.com/hanpama/graphdoc/internal/response"
)

func mustSelection(t *testing.T, query string) (language.SelectionSet, language.FragmentDefinitionList) {
	t.Helper()
	doc, err := language.ParseQuery(query)
	require.NoError(t, err)
	return doc.Operations[0].SelectionSet, doc.Fragments
}

func intResolver(i int) FieldResolver {
	return func(ctx context.Context, p ResolverParams) (response.Value, error) {
		return response.NewInt(i), nil
	}
}

func resolveJSON(t *testing.T, obj *Object, state *State, sel language.SelectionSet) string {
	t.Helper()
	v, err := obj.Resolve(context.Background(), ResolverParams{State: state, Selection: sel})
	require.NoError(t, err)
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}

func TestResolveAssemblesInDeclaredOrder(t *testing.T) {
	// Completion order is forced to c, b, a; member order must still be the
	// declared a, b, c.
	cDone := make(chan struct{})
	bDone := make(chan struct{})
	obj := NewObject("Query", map[string]FieldResolver{
		"a": func(ctx context.Context, p ResolverParams) (response.Value, error) {
			<-bDone
			return response.NewInt(1), nil
		},
		"b": func(ctx context.Context, p ResolverParams) (response.Value, error) {
			<-cDone
			defer close(bDone)
			return response.NewInt(2), nil
		},
		"c": func(ctx context.Context, p ResolverParams) (response.Value, error) {
			defer close(cDone)
			return response.NewInt(3), nil
		},
	})

	sel, frags := mustSelection(t, `{ a b c }`)
	got := resolveJSON(t, obj, NewState(nil, frags), sel)
	if diff := cmp.Diff(`{"a":1,"b":2,"c":3}`, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestAliasesGetIndependentArguments(t *testing.T) {
	obj := NewObject("Query", map[string]FieldResolver{
		"echo": func(ctx context.Context, p ResolverParams) (response.Value, error) {
			v, err := RequireInt(&p.Arguments, "v")
			if err != nil {
				return response.Value{}, err
			}
			return response.NewInt(v), nil
		},
	})

	sel, frags := mustSelection(t, `{ first: echo(v: 1) second: echo(v: 2) }`)
	got := resolveJSON(t, obj, NewState(nil, frags), sel)
	require.Equal(t, `{"first":1,"second":2}`, got)
}

func TestTypenameIsAnsweredWithoutAResolver(t *testing.T) {
	obj := NewObject("Appointment", map[string]FieldResolver{})
	sel, frags := mustSelection(t, `{ __typename alias: __typename }`)
	got := resolveJSON(t, obj, NewState(nil, frags), sel)
	require.Equal(t, `{"__typename":"Appointment","alias":"Appointment"}`, got)
}

func TestUnknownFieldIsRecordedAndOmitted(t *testing.T) {
	obj := NewObject("Query", map[string]FieldResolver{"known": intResolver(1)})
	sel, frags := mustSelection(t, `{ known missing }`)
	state := NewState(nil, frags)

	got := resolveJSON(t, obj, state, sel)
	require.Equal(t, `{"known":1}`, got)

	errs := state.Errors()
	require.Len(t, errs, 1)
	require.Equal(t, "Cannot query field 'missing' on type 'Query'", errs[0].Message)
	require.Equal(t, "missing", errs[0].Path.String())
}

func TestFieldErrorLeavesSiblingsIntact(t *testing.T) {
	obj := NewObject("Query", map[string]FieldResolver{
		"good": intResolver(1),
		"bad": func(ctx context.Context, p ResolverParams) (response.Value, error) {
			return response.Value{}, errors.New("boom")
		},
	})
	sel, frags := mustSelection(t, `{ good bad }`)
	state := NewState(nil, frags)

	got := resolveJSON(t, obj, state, sel)
	require.Equal(t, `{"good":1,"bad":null}`, got)

	errs := state.Errors()
	require.Len(t, errs, 1)
	require.Equal(t, "boom", errs[0].Message)
	require.Equal(t, "bad", errs[0].Path.String())
}

func TestContractViolationAbortsTheOperation(t *testing.T) {
	obj := NewObject("Query", map[string]FieldResolver{
		"broken": func(ctx context.Context, p ResolverParams) (response.Value, error) {
			v := response.NewInt(1)
			if _, err := v.StringValue(); err != nil {
				return response.Value{}, err
			}
			return v, nil
		},
	})
	sel, frags := mustSelection(t, `{ broken }`)

	_, err := obj.Resolve(context.Background(), ResolverParams{State: NewState(nil, frags), Selection: sel})
	require.ErrorIs(t, err, response.ErrContract)
}

func TestUnrequestedFieldsAreNeverResolved(t *testing.T) {
	var mu sync.Mutex
	called := map[string]bool{}
	record := func(name string) FieldResolver {
		return func(ctx context.Context, p ResolverParams) (response.Value, error) {
			mu.Lock()
			called[name] = true
			mu.Unlock()
			return response.NewInt(0), nil
		}
	}
	obj := NewObject("Query", map[string]FieldResolver{
		"wanted":   record("wanted"),
		"unwanted": record("unwanted"),
	})

	sel, frags := mustSelection(t, `{ wanted }`)
	resolveJSON(t, obj, NewState(nil, frags), sel)

	require.True(t, called["wanted"])
	require.False(t, called["unwanted"])
}

func TestResolveSerialRunsInDeclaredOrder(t *testing.T) {
	var order []string
	record := func(name string) FieldResolver {
		return func(ctx context.Context, p ResolverParams) (response.Value, error) {
			order = append(order, name)
			return response.NewInt(0), nil
		}
	}
	obj := NewObject("Mutation", map[string]FieldResolver{
		"a": record("a"), "b": record("b"), "c": record("c"),
	})

	sel, frags := mustSelection(t, `mutation { c a b }`)
	state := NewState(nil, frags)
	_, err := obj.ResolveSerial(context.Background(), ResolverParams{State: state, Selection: sel})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a", "b"}, order)
}

func TestCancellationDiscardsTheDocument(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	obj := NewObject("Query", map[string]FieldResolver{
		"a": func(ctx context.Context, p ResolverParams) (response.Value, error) {
			cancel()
			return response.NewInt(1), nil
		},
	})

	sel, frags := mustSelection(t, `{ a }`)
	_, err := obj.Resolve(ctx, ResolverParams{State: NewState(nil, frags), Selection: sel})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFragmentsAndConditionalDirectives(t *testing.T) {
	obj := NewObject("Query", map[string]FieldResolver{
		"id":    intResolver(1),
		"title": intResolver(2),
		"extra": intResolver(3),
	})
	sel, frags := mustSelection(t, `
		query Q($withTitle: Boolean!) {
			...common
			extra @skip(if: true)
		}
		fragment common on Query {
			id
			title @include(if: $withTitle)
		}`)

	state := NewState(map[string]any{"withTitle": false}, frags)
	got := resolveJSON(t, obj, state, sel)
	require.Equal(t, `{"id":1}`, got)

	state = NewState(map[string]any{"withTitle": true}, frags)
	got = resolveJSON(t, obj, state, sel)
	require.Equal(t, `{"id":1,"title":2}`, got)
}

func TestInlineFragmentTypeCondition(t *testing.T) {
	obj := NewObject("Task", map[string]FieldResolver{
		"id":    intResolver(1),
		"title": intResolver(2),
	})
	sel, frags := mustSelection(t, `{
		id
		... on Task { title }
		... on Appointment { subject }
	}`)

	got := resolveJSON(t, obj, NewState(nil, frags), sel)
	require.Equal(t, `{"id":1,"title":2}`, got)
}

func TestNestedErrorPath(t *testing.T) {
	child := NewObject("Task", map[string]FieldResolver{
		"title": func(ctx context.Context, p ResolverParams) (response.Value, error) {
			return response.Value{}, errors.New("not loaded")
		},
	})
	parent := NewObject("Query", map[string]FieldResolver{
		"task": func(ctx context.Context, p ResolverParams) (response.Value, error) {
			return child.Resolve(ctx, p)
		},
	})

	sel, frags := mustSelection(t, `{ task { title } }`)
	state := NewState(nil, frags)
	got := resolveJSON(t, parent, state, sel)
	require.Equal(t, `{"task":{"title":null}}`, got)

	errs := state.Errors()
	require.Len(t, errs, 1)
	require.Equal(t, "task.title", errs[0].Path.String())
}

func TestResolveListPathsAndNullEntries(t *testing.T) {
	element := func(id int, fail bool) *Object {
		return NewObject("Task", map[string]FieldResolver{
			"id": func(ctx context.Context, p ResolverParams) (response.Value, error) {
				if fail {
					return response.Value{}, fmt.Errorf("gone")
				}
				return response.NewInt(id), nil
			},
		})
	}
	parent := NewObject("Query", map[string]FieldResolver{
		"tasks": func(ctx context.Context, p ResolverParams) (response.Value, error) {
			return ResolveList(ctx, p, []*Object{element(0, false), nil, element(2, true)})
		},
	})

	sel, frags := mustSelection(t, `{ tasks { id } }`)
	state := NewState(nil, frags)
	got := resolveJSON(t, parent, state, sel)
	require.Equal(t, `{"tasks":[{"id":0},null,{"id":null}]}`, got)

	errs := state.Errors()
	require.Len(t, errs, 1)
	require.Equal(t, "tasks[2].id", errs[0].Path.String())
}
