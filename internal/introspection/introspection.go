// Package introspection serves the reserved __schema and __type entry points
// from a declarative description of the server's type system. The description
// is hand-registered next to the root objects; nothing here inspects resolver
// maps at runtime.
package introspection

// TypeKind is the __TypeKind enum.
type TypeKind string

const (
	ScalarKind      TypeKind = "SCALAR"
	ObjectKind      TypeKind = "OBJECT"
	InterfaceKind   TypeKind = "INTERFACE"
	UnionKind       TypeKind = "UNION"
	EnumKind        TypeKind = "ENUM"
	InputObjectKind TypeKind = "INPUT_OBJECT"
	ListKind        TypeKind = "LIST"
	NonNullKind     TypeKind = "NON_NULL"
)

// TypeRef references a type: a name for registered types, or a LIST/NON_NULL
// wrapper around another reference.
type TypeRef struct {
	Kind   TypeKind
	Name   string
	OfType *TypeRef
}

// Named references a registered type by name.
func Named(name string) TypeRef { return TypeRef{Name: name} }

// List wraps a reference in a LIST.
func List(of TypeRef) TypeRef { return TypeRef{Kind: ListKind, OfType: &of} }

// NonNull wraps a reference in a NON_NULL.
func NonNull(of TypeRef) TypeRef { return TypeRef{Kind: NonNullKind, OfType: &of} }

// Field describes one output field of an object or interface type.
type Field struct {
	Name              string
	Description       string
	Args              []InputValue
	Type              TypeRef
	IsDeprecated      bool
	DeprecationReason string
}

// InputValue describes one argument or input-object field.
type InputValue struct {
	Name         string
	Description  string
	Type         TypeRef
	DefaultValue string
}

// EnumValue describes one value of an enum type.
type EnumValue struct {
	Name              string
	Description       string
	IsDeprecated      bool
	DeprecationReason string
}

// Type describes one registered type.
type Type struct {
	Kind          TypeKind
	Name          string
	Description   string
	Fields        []Field
	InputFields   []InputValue
	Interfaces    []TypeRef
	PossibleTypes []TypeRef
	EnumValues    []EnumValue
}

// Directive describes one directive the server supports.
type Directive struct {
	Name        string
	Description string
	Locations   []string
	Args        []InputValue
}

// Schema is the registered type system. Root objects attach it with WithMeta
// and wire SchemaField and TypeField into their resolver maps.
type Schema struct {
	queryType    string
	mutationType string
	types        []Type
	directives   []Directive
	index        map[string]int
}

// NewSchema registers the type system. mutationType may be empty. The
// declared type order is preserved in the types listing; skip and include
// are always registered as supported directives.
func NewSchema(queryType, mutationType string, types []Type) *Schema {
	s := &Schema{
		queryType:    queryType,
		mutationType: mutationType,
		types:        types,
		index:        make(map[string]int, len(types)),
		directives: []Directive{
			{
				Name:        "skip",
				Description: "Skips this field or fragment when the if argument is true.",
				Locations:   []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
				Args:        []InputValue{{Name: "if", Type: NonNull(Named("Boolean"))}},
			},
			{
				Name:        "include",
				Description: "Includes this field or fragment only when the if argument is true.",
				Locations:   []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
				Args:        []InputValue{{Name: "if", Type: NonNull(Named("Boolean"))}},
			},
		},
	}
	for i := range types {
		if _, exists := s.index[types[i].Name]; !exists {
			s.index[types[i].Name] = i
		}
	}
	return s
}

// Type returns the registered type with the given name, or nil.
func (s *Schema) Type(name string) *Type {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return &s.types[i]
}

// Types returns the registered types in declared order.
func (s *Schema) Types() []Type { return s.types }
