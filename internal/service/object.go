package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	language "github.com/hanpama/graphdoc/internal/language"
	response "github.com/hanpama/graphdoc/internal/response"
)

// FieldResolver produces one field's response sub-tree. Resolvers may block;
// the dispatch layer never does. A data-level error return is attached to
// the field's path; a contract-level error aborts the operation.
type FieldResolver func(ctx context.Context, p ResolverParams) (response.Value, error)

// ResolverParams is the per-field input handed to a resolver adapter.
type ResolverParams struct {
	// State is the shared per-operation context: variables, fragments, and
	// the field-error sink.
	State *State
	// Selection is the sub-selection requested under this field.
	Selection language.SelectionSet
	// Arguments is the already-substituted argument tree for this field
	// occurrence, an Object keyed by argument name.
	Arguments response.Value
	// Path is the response path of this field.
	Path Path
	// Meta is the opaque handle attached to the enclosing Object, if any.
	Meta any
}

// Object binds a schema object type's declared fields to their resolvers.
// It answers the reserved __typename field itself; every other requested
// field dispatches through the resolvers map, and fields absent from the
// requested selection are never resolved.
type Object struct {
	typeName  string
	resolvers map[string]FieldResolver
	meta      any
}

// NewObject creates an Object for the named schema type.
func NewObject(typeName string, resolvers map[string]FieldResolver) *Object {
	return &Object{typeName: typeName, resolvers: resolvers}
}

// WithMeta attaches an opaque handle surfaced to this Object's resolvers
// through ResolverParams.Meta. Root objects use it to carry collaborator-built
// introspection metadata for the reserved __schema and __type fields.
func (o *Object) WithMeta(handle any) *Object {
	o.meta = handle
	return o
}

// TypeName returns the schema type name this Object represents.
func (o *Object) TypeName() string { return o.typeName }

// Resolve resolves a selection set against o into an Object value. Field
// groups resolve concurrently, each building an isolated sub-tree; the
// parent is assembled here, on the joining goroutine, in declared/alias
// order regardless of completion order.
func (o *Object) Resolve(ctx context.Context, p ResolverParams) (response.Value, error) {
	return o.resolve(ctx, p, true)
}

// ResolveSerial resolves field groups one at a time in declared order.
// Mutation root selections require it.
func (o *Object) ResolveSerial(ctx context.Context, p ResolverParams) (response.Value, error) {
	return o.resolve(ctx, p, false)
}

type fieldOutcome struct {
	value response.Value
	omit  bool
	err   error // contract-level only
}

func (o *Object) resolve(ctx context.Context, p ResolverParams, concurrent bool) (response.Value, error) {
	groups := collectFields(p.State, o.typeName, p.Selection)
	outcomes := make([]fieldOutcome, len(groups.groups))

	if concurrent && len(groups.groups) > 1 {
		var wg sync.WaitGroup
		for i := range groups.groups {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				outcomes[i] = o.resolveGroup(ctx, p, groups.groups[i])
			}(i)
		}
		wg.Wait()
	} else {
		for i := range groups.groups {
			outcomes[i] = o.resolveGroup(ctx, p, groups.groups[i])
			if outcomes[i].err != nil {
				break
			}
		}
	}

	// An abandoned selection attaches nothing: completed sub-trees are
	// simply dropped with the outcome slots.
	if err := ctx.Err(); err != nil {
		return response.Value{}, err
	}

	result := response.NewValue(response.KindObject)
	if err := result.Reserve(len(groups.groups)); err != nil {
		return response.Value{}, err
	}
	for i := range groups.groups {
		if outcomes[i].err != nil {
			return response.Value{}, outcomes[i].err
		}
		if outcomes[i].omit {
			continue
		}
		if err := result.AppendMember(groups.groups[i].ResponseName, outcomes[i].value); err != nil {
			return response.Value{}, err
		}
	}
	return result, nil
}

func (o *Object) resolveGroup(ctx context.Context, p ResolverParams, g fieldGroup) fieldOutcome {
	field := g.Fields[0]
	path := appendPath(p.Path, g.ResponseName)

	if field.Name == "__typename" {
		return fieldOutcome{value: response.NewString(o.typeName)}
	}

	r, ok := o.resolvers[field.Name]
	if !ok {
		p.State.AddError(fmt.Sprintf("Cannot query field '%s' on type '%s'", field.Name, o.typeName), path)
		return fieldOutcome{omit: true}
	}

	args, err := MaterializeArguments(field.Arguments, p.State.Variables)
	if err != nil {
		return o.fieldFailure(p.State, path, err)
	}

	child := ResolverParams{
		State:     p.State,
		Selection: mergeSelectionSets(g.Fields),
		Arguments: args,
		Path:      path,
		Meta:      o.meta,
	}
	v, err := r(ctx, child)
	if err != nil {
		return o.fieldFailure(p.State, path, err)
	}
	return fieldOutcome{value: v}
}

// fieldFailure routes an error per the taxonomy: contract violations and
// duplicate members abort the operation; everything else becomes a located
// field error and the member renders as null, leaving siblings intact.
func (o *Object) fieldFailure(state *State, path Path, err error) fieldOutcome {
	if IsDefect(err) {
		return fieldOutcome{err: err}
	}
	state.AddError(err.Error(), path)
	return fieldOutcome{value: response.Value{}}
}

// IsDefect reports whether err is a programming defect that must surface
// loudly instead of being attached to a response path.
func IsDefect(err error) bool {
	return errors.Is(err, response.ErrContract) || errors.Is(err, response.ErrDuplicateMember)
}

// ResolveList resolves one element Object per entry under index-aware paths
// and assembles them into a List value in entry order.
func ResolveList(ctx context.Context, p ResolverParams, objs []*Object) (response.Value, error) {
	list := response.NewValue(response.KindList)
	if err := list.Reserve(len(objs)); err != nil {
		return response.Value{}, err
	}
	for i, obj := range objs {
		if obj == nil {
			if err := list.Append(response.Value{}); err != nil {
				return response.Value{}, err
			}
			continue
		}
		cp := p
		cp.Path = appendPath(p.Path, i)
		v, err := obj.Resolve(ctx, cp)
		if err != nil {
			return response.Value{}, err
		}
		if err := list.Append(v); err != nil {
			return response.Value{}, err
		}
	}
	return list, nil
}
