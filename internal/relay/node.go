package relay

import (
	"context"

	response "github.com/hanpama/graphdoc/internal/response"
	service "github.com/hanpama/graphdoc/internal/service"
)

// Node is implemented by identity-bearing object types. The id is a stable,
// opaque byte sequence; which byte layout maps to which concrete type is
// decided by the surrounding application.
type Node interface {
	ID(ctx context.Context) ([]byte, error)
}

// LookupFunc resolves a raw id to the object handle for the correct concrete
// identity-bearing type. Returning a nil object without error yields null.
type LookupFunc func(ctx context.Context, id []byte) (*service.Object, error)

// NodeField adapts a LookupFunc into the resolver for the generic node(id:)
// entry point.
func NodeField(lookup LookupFunc) service.FieldResolver {
	return func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
		id, err := service.RequireID(&p.Arguments, "id")
		if err != nil {
			return response.Value{}, err
		}
		obj, err := lookup(ctx, id)
		if err != nil {
			return response.Value{}, err
		}
		if obj == nil {
			return response.Value{}, nil
		}
		return obj.Resolve(ctx, p)
	}
}

// IDField adapts a Node's id accessor into its id field resolver.
func IDField(n Node) service.FieldResolver {
	return func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
		id, err := n.ID(ctx)
		if err != nil {
			return response.Value{}, err
		}
		return response.NewString(string(id)), nil
	}
}
