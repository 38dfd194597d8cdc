// Package relay implements the standard cursor-pagination shape
// (connection/edge/pageInfo) and the global node-identity contract on top of
// the service dispatch layer. It fixes output shape and pass-through
// plumbing only: windowing policy and cursor encoding belong to the
// application's window supplier, and cursors stay opaque Values with a
// stable, comparable order guaranteed by that supplier.
package relay

import (
	"context"

	response "github.com/hanpama/graphdoc/internal/response"
	service "github.com/hanpama/graphdoc/internal/service"
)

// PageInfo reports whether more edges exist in either direction.
type PageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool
}

// PageArguments carries the four optional pagination inputs exactly as the
// client supplied them. Absent inputs are nil. Cursors are opaque.
type PageArguments struct {
	First  *int
	After  *response.Value
	Last   *int
	Before *response.Value
}

// Edge pairs an opaque cursor with the identified node object.
type Edge struct {
	Cursor response.Value
	Node   *service.Object
}

// Page is one sliced window of a connection.
type Page struct {
	Info  PageInfo
	Edges []Edge
}

// Window supplies the edge window for one connection resolution. The four
// pagination inputs reach Slice unmodified.
type Window interface {
	Slice(ctx context.Context, args PageArguments) (*Page, error)
}

// ConnectionField adapts a window supplier into the resolver for a
// connection-typed field.
func ConnectionField(typeName, edgeTypeName string, w Window) service.FieldResolver {
	return func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
		args, err := pageArguments(&p.Arguments)
		if err != nil {
			return response.Value{}, err
		}
		page, err := w.Slice(ctx, args)
		if err != nil {
			return response.Value{}, err
		}
		return NewConnection(typeName, edgeTypeName, page).Resolve(ctx, p)
	}
}

// NewConnection builds the connection object for an already-sliced page.
// pageInfo resolves even when the edge sequence is empty.
func NewConnection(typeName, edgeTypeName string, page *Page) *service.Object {
	return service.NewObject(typeName, map[string]service.FieldResolver{
		"pageInfo": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return NewPageInfo(page.Info).Resolve(ctx, p)
		},
		"edges": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			objs := make([]*service.Object, len(page.Edges))
			for i := range page.Edges {
				objs[i] = newEdgeObject(edgeTypeName, &page.Edges[i])
			}
			return service.ResolveList(ctx, p, objs)
		},
	})
}

// NewPageInfo builds the PageInfo object.
func NewPageInfo(info PageInfo) *service.Object {
	return service.NewObject("PageInfo", map[string]service.FieldResolver{
		"hasNextPage": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return response.NewBoolean(info.HasNextPage), nil
		},
		"hasPreviousPage": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return response.NewBoolean(info.HasPreviousPage), nil
		},
	})
}

func newEdgeObject(edgeTypeName string, edge *Edge) *service.Object {
	return service.NewObject(edgeTypeName, map[string]service.FieldResolver{
		"cursor": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return edge.Cursor.Clone(), nil
		},
		"node": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			if edge.Node == nil {
				return response.Value{}, nil
			}
			return edge.Node.Resolve(ctx, p)
		},
	})
}

func pageArguments(args *response.Value) (PageArguments, error) {
	var out PageArguments
	if first, ok, err := service.FindInt(args, "first"); err != nil {
		return out, err
	} else if ok {
		out.First = &first
	}
	if after, ok, err := service.FindValue(args, "after"); err != nil {
		return out, err
	} else if ok {
		out.After = &after
	}
	if last, ok, err := service.FindInt(args, "last"); err != nil {
		return out, err
	} else if ok {
		out.Last = &last
	}
	if before, ok, err := service.FindValue(args, "before"); err != nil {
		return out, err
	} else if ok {
		out.Before = &before
	}
	return out, nil
}
