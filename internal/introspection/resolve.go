package introspection

import (
	"context"

	response "github.com/hanpama/graphdoc/internal/response"
	service "github.com/hanpama/graphdoc/internal/service"
)

// SchemaField is the resolver for the reserved __schema field.
func SchemaField(s *Schema) service.FieldResolver {
	return func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
		return schemaObject(s).Resolve(ctx, p)
	}
}

// TypeField is the resolver for the reserved __type(name:) field. An
// unregistered name yields null.
func TypeField(s *Schema) service.FieldResolver {
	return func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
		name, err := service.RequireString(&p.Arguments, "name")
		if err != nil {
			return response.Value{}, err
		}
		t := s.Type(name)
		if t == nil {
			return response.Value{}, nil
		}
		return typeObject(s, t).Resolve(ctx, p)
	}
}

func schemaObject(s *Schema) *service.Object {
	return service.NewObject("__Schema", map[string]service.FieldResolver{
		"queryType": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return namedType(ctx, p, s, s.queryType)
		},
		"mutationType": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			if s.mutationType == "" {
				return response.Value{}, nil
			}
			return namedType(ctx, p, s, s.mutationType)
		},
		"subscriptionType": nullField,
		"types": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			types := s.Types()
			objs := make([]*service.Object, len(types))
			for i := range types {
				objs[i] = typeObject(s, &types[i])
			}
			return service.ResolveList(ctx, p, objs)
		},
		"directives": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			objs := make([]*service.Object, len(s.directives))
			for i := range s.directives {
				objs[i] = directiveObject(s, &s.directives[i])
			}
			return service.ResolveList(ctx, p, objs)
		},
	})
}

func namedType(ctx context.Context, p service.ResolverParams, s *Schema, name string) (response.Value, error) {
	t := s.Type(name)
	if t == nil {
		return response.Value{}, nil
	}
	return typeObject(s, t).Resolve(ctx, p)
}

func typeObject(s *Schema, t *Type) *service.Object {
	return service.NewObject("__Type", map[string]service.FieldResolver{
		"kind": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return response.NewEnum(string(t.Kind)), nil
		},
		"name":        stringField(t.Name),
		"description": stringField(t.Description),
		"fields": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			if t.Kind != ObjectKind && t.Kind != InterfaceKind {
				return response.Value{}, nil
			}
			includeDeprecated, _, err := service.FindBoolean(&p.Arguments, "includeDeprecated")
			if err != nil {
				return response.Value{}, err
			}
			var objs []*service.Object
			for i := range t.Fields {
				if t.Fields[i].IsDeprecated && !includeDeprecated {
					continue
				}
				objs = append(objs, fieldObject(s, &t.Fields[i]))
			}
			return service.ResolveList(ctx, p, objs)
		},
		"inputFields": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			if t.Kind != InputObjectKind {
				return response.Value{}, nil
			}
			objs := make([]*service.Object, len(t.InputFields))
			for i := range t.InputFields {
				objs[i] = inputValueObject(s, &t.InputFields[i])
			}
			return service.ResolveList(ctx, p, objs)
		},
		"interfaces": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			if t.Kind != ObjectKind && t.Kind != InterfaceKind {
				return response.Value{}, nil
			}
			return refList(ctx, p, s, t.Interfaces)
		},
		"possibleTypes": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			if t.Kind != InterfaceKind && t.Kind != UnionKind {
				return response.Value{}, nil
			}
			return refList(ctx, p, s, t.PossibleTypes)
		},
		"enumValues": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			if t.Kind != EnumKind {
				return response.Value{}, nil
			}
			includeDeprecated, _, err := service.FindBoolean(&p.Arguments, "includeDeprecated")
			if err != nil {
				return response.Value{}, err
			}
			var objs []*service.Object
			for i := range t.EnumValues {
				if t.EnumValues[i].IsDeprecated && !includeDeprecated {
					continue
				}
				objs = append(objs, enumValueObject(&t.EnumValues[i]))
			}
			return service.ResolveList(ctx, p, objs)
		},
		"ofType": nullField,
	})
}

// typeRefObject renders a TypeRef: wrappers expose kind and ofType only,
// named references resolve through the registry.
func typeRefObject(s *Schema, ref TypeRef) *service.Object {
	if ref.OfType != nil {
		of := *ref.OfType
		return service.NewObject("__Type", map[string]service.FieldResolver{
			"kind": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
				return response.NewEnum(string(ref.Kind)), nil
			},
			"name":          nullField,
			"description":   nullField,
			"fields":        nullField,
			"inputFields":   nullField,
			"interfaces":    nullField,
			"possibleTypes": nullField,
			"enumValues":    nullField,
			"ofType": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
				return typeRefObject(s, of).Resolve(ctx, p)
			},
		})
	}
	if t := s.Type(ref.Name); t != nil {
		return typeObject(s, t)
	}
	// Unregistered names render as opaque scalars.
	return typeObject(s, &Type{Kind: ScalarKind, Name: ref.Name})
}

func fieldObject(s *Schema, f *Field) *service.Object {
	return service.NewObject("__Field", map[string]service.FieldResolver{
		"name":        stringField(f.Name),
		"description": stringField(f.Description),
		"args": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			objs := make([]*service.Object, len(f.Args))
			for i := range f.Args {
				objs[i] = inputValueObject(s, &f.Args[i])
			}
			return service.ResolveList(ctx, p, objs)
		},
		"type": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return typeRefObject(s, f.Type).Resolve(ctx, p)
		},
		"isDeprecated": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return response.NewBoolean(f.IsDeprecated), nil
		},
		"deprecationReason": stringField(f.DeprecationReason),
	})
}

func inputValueObject(s *Schema, v *InputValue) *service.Object {
	return service.NewObject("__InputValue", map[string]service.FieldResolver{
		"name":        stringField(v.Name),
		"description": stringField(v.Description),
		"type": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return typeRefObject(s, v.Type).Resolve(ctx, p)
		},
		"defaultValue": stringField(v.DefaultValue),
	})
}

func enumValueObject(v *EnumValue) *service.Object {
	return service.NewObject("__EnumValue", map[string]service.FieldResolver{
		"name":        stringField(v.Name),
		"description": stringField(v.Description),
		"isDeprecated": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return response.NewBoolean(v.IsDeprecated), nil
		},
		"deprecationReason": stringField(v.DeprecationReason),
	})
}

func directiveObject(s *Schema, d *Directive) *service.Object {
	return service.NewObject("__Directive", map[string]service.FieldResolver{
		"name":        stringField(d.Name),
		"description": stringField(d.Description),
		"locations": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			out := response.NewValue(response.KindList)
			for _, loc := range d.Locations {
				if err := out.Append(response.NewEnum(loc)); err != nil {
					return response.Value{}, err
				}
			}
			return out, nil
		},
		"args": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			objs := make([]*service.Object, len(d.Args))
			for i := range d.Args {
				objs[i] = inputValueObject(s, &d.Args[i])
			}
			return service.ResolveList(ctx, p, objs)
		},
	})
}

func refList(ctx context.Context, p service.ResolverParams, s *Schema, refs []TypeRef) (response.Value, error) {
	objs := make([]*service.Object, len(refs))
	for i := range refs {
		objs[i] = typeRefObject(s, refs[i])
	}
	return service.ResolveList(ctx, p, objs)
}

func stringField(v string) service.FieldResolver {
	return func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
		if v == "" {
			return response.Value{}, nil
		}
		return response.NewString(v), nil
	}
}

func nullField(ctx context.Context, p service.ResolverParams) (response.Value, error) {
	return response.Value{}, nil
}
