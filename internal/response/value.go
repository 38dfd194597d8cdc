// Package response implements the typed response-document model: a
// tagged-union Value node that can represent every runtime value kind a
// GraphQL response can emit, under strict kind discipline.
//
// A Value has exactly one active representation, fixed at construction and
// changed only by Move. Every accessor is checked against the active kind;
// a wrong-kind call is a programming defect and fails with ErrContract.
// Object members keep insertion order (output order is protocol-visible)
// while name lookup stays O(1).
//
// Values own their descendants exclusively. Passing a Value to AppendMember,
// Append, SetScalar or a constructor hands over ownership: the caller must
// not use the passed Value afterwards. Use Clone for an independent deep
// copy and Move to transfer a payload while resetting the source to Null.
package response

// Kind identifies the active representation of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindObject
	KindList
	KindString
	KindBoolean
	KindInt
	KindFloat
	KindEnum
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindObject:
		return "Object"
	case KindList:
		return "List"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindEnum:
		return "Enum"
	case KindScalar:
		return "Scalar"
	default:
		return "Unknown"
	}
}

// NotFound is the position sentinel returned by Find for absent members.
const NotFound = -1

// Member is one named child of an Object-kind Value.
type Member struct {
	Name  string
	Value Value
}

// Value is one node of a response document. The zero Value is Null.
//
// Object, List and Scalar payloads are held behind pointers so that moving
// a Value is cheap and nesting depth is unbounded by the node's own size.
type Value struct {
	kind    Kind
	object  *memberList
	list    *[]Value
	text    *string
	boolean bool
	integer int
	float   float64
	scalar  *Value
}

// NewValue constructs an empty Value of the given kind with the
// kind-appropriate payload allocated.
func NewValue(kind Kind) Value {
	v := Value{kind: kind}
	switch kind {
	case KindObject:
		v.object = newMemberList()
	case KindList:
		list := make([]Value, 0)
		v.list = &list
	case KindString, KindEnum:
		v.text = new(string)
	case KindScalar:
		v.scalar = new(Value)
	}
	return v
}

// NewString constructs a String-kind Value holding s.
func NewString(s string) Value { return Value{kind: KindString, text: &s} }

// NewBoolean constructs a Boolean-kind Value holding b.
func NewBoolean(b bool) Value { return Value{kind: KindBoolean, boolean: b} }

// NewInt constructs an Int-kind Value holding i.
func NewInt(i int) Value { return Value{kind: KindInt, integer: i} }

// NewFloat constructs a Float-kind Value holding f.
func NewFloat(f float64) Value { return Value{kind: KindFloat, float: f} }

// NewEnum constructs an Enum-kind Value holding the literal name.
func NewEnum(name string) Value { return Value{kind: KindEnum, text: &name} }

// Kind returns the active kind tag. It never fails.
func (v *Value) Kind() Kind { return v.kind }

// Reserve pre-allocates capacity for n members or elements.
// Valid only for Object and List.
func (v *Value) Reserve(n int) error {
	switch v.kind {
	case KindObject:
		v.object.reserve(n)
		return nil
	case KindList:
		if cap(*v.list) < n {
			grown := make([]Value, len(*v.list), n)
			copy(grown, *v.list)
			*v.list = grown
		}
		return nil
	default:
		return contractErr("Reserve", v.kind)
	}
}

// Size returns the member or element count. Valid only for Object and List.
func (v *Value) Size() (int, error) {
	switch v.kind {
	case KindObject:
		return v.object.len(), nil
	case KindList:
		return len(*v.list), nil
	default:
		return 0, contractErr("Size", v.kind)
	}
}

// AppendMember appends a new named member to an Object. Appending a name
// that is already present fails with ErrDuplicateMember and leaves the
// existing members untouched. The appended Value is owned by the Object
// afterwards.
func (v *Value) AppendMember(name string, val Value) error {
	if v.kind != KindObject {
		return contractErr("AppendMember", v.kind)
	}
	return v.object.append(name, val)
}

// Append appends an element to a List. The appended Value is owned by the
// List afterwards.
func (v *Value) Append(val Value) error {
	if v.kind != KindList {
		return contractErr("Append", v.kind)
	}
	*v.list = append(*v.list, val)
	return nil
}

// Find returns the position of the named member, or NotFound when absent.
// Absence is not a failure; calling Find on a non-Object is.
func (v *Value) Find(name string) (int, error) {
	if v.kind != KindObject {
		return NotFound, contractErr("Find", v.kind)
	}
	return v.object.find(name), nil
}

// Member returns the named member's value. Unlike Find, absence fails with
// ErrMissingMember.
func (v *Value) Member(name string) (*Value, error) {
	if v.kind != KindObject {
		return nil, contractErr("Member", v.kind)
	}
	pos := v.object.find(name)
	if pos == NotFound {
		return nil, missingMemberErr(name)
	}
	return &v.object.members[pos].Value, nil
}

// Members returns the member sequence in insertion order. The slice aliases
// the Object's storage; callers must not grow it.
func (v *Value) Members() ([]Member, error) {
	if v.kind != KindObject {
		return nil, contractErr("Members", v.kind)
	}
	return v.object.members, nil
}

// Element returns the i-th List element, bounds-checked.
func (v *Value) Element(i int) (*Value, error) {
	if v.kind != KindList {
		return nil, contractErr("Element", v.kind)
	}
	if i < 0 || i >= len(*v.list) {
		return nil, indexErr(i, len(*v.list))
	}
	return &(*v.list)[i], nil
}

// Elements returns the element sequence. The slice aliases the List's
// storage; callers must not grow it.
func (v *Value) Elements() ([]Value, error) {
	if v.kind != KindList {
		return nil, contractErr("Elements", v.kind)
	}
	return *v.list, nil
}

// SetString replaces the text payload. Valid for String and Enum kinds.
func (v *Value) SetString(s string) error {
	if v.kind != KindString && v.kind != KindEnum {
		return contractErr("SetString", v.kind)
	}
	*v.text = s
	return nil
}

// SetBoolean replaces the boolean payload.
func (v *Value) SetBoolean(b bool) error {
	if v.kind != KindBoolean {
		return contractErr("SetBoolean", v.kind)
	}
	v.boolean = b
	return nil
}

// SetInt replaces the integer payload.
func (v *Value) SetInt(i int) error {
	if v.kind != KindInt {
		return contractErr("SetInt", v.kind)
	}
	v.integer = i
	return nil
}

// SetFloat replaces the float payload.
func (v *Value) SetFloat(f float64) error {
	if v.kind != KindFloat {
		return contractErr("SetFloat", v.kind)
	}
	v.float = f
	return nil
}

// SetScalar replaces the nested scalar payload, taking ownership of val.
func (v *Value) SetScalar(val Value) error {
	if v.kind != KindScalar {
		return contractErr("SetScalar", v.kind)
	}
	*v.scalar = val
	return nil
}

// StringValue returns the text payload of a String or Enum Value.
func (v *Value) StringValue() (string, error) {
	if v.kind != KindString && v.kind != KindEnum {
		return "", contractErr("StringValue", v.kind)
	}
	return *v.text, nil
}

// BooleanValue returns the boolean payload.
func (v *Value) BooleanValue() (bool, error) {
	if v.kind != KindBoolean {
		return false, contractErr("BooleanValue", v.kind)
	}
	return v.boolean, nil
}

// IntValue returns the integer payload.
func (v *Value) IntValue() (int, error) {
	if v.kind != KindInt {
		return 0, contractErr("IntValue", v.kind)
	}
	return v.integer, nil
}

// FloatValue returns the float payload.
func (v *Value) FloatValue() (float64, error) {
	if v.kind != KindFloat {
		return 0, contractErr("FloatValue", v.kind)
	}
	return v.float, nil
}

// ScalarValue returns the nested scalar payload.
func (v *Value) ScalarValue() (*Value, error) {
	if v.kind != KindScalar {
		return nil, contractErr("ScalarValue", v.kind)
	}
	return v.scalar, nil
}

// ReleaseMembers moves the member sequence out of an Object. The Object
// stays an Object but is left empty: its size becomes 0 and the name index
// is cleared.
func (v *Value) ReleaseMembers() ([]Member, error) {
	if v.kind != KindObject {
		return nil, contractErr("ReleaseMembers", v.kind)
	}
	return v.object.release(), nil
}

// ReleaseElements moves the element sequence out of a List, leaving it empty.
func (v *Value) ReleaseElements() ([]Value, error) {
	if v.kind != KindList {
		return nil, contractErr("ReleaseElements", v.kind)
	}
	out := *v.list
	fresh := make([]Value, 0)
	v.list = &fresh
	return out, nil
}

// ReleaseString moves the text payload out of a String or Enum Value,
// leaving it empty.
func (v *Value) ReleaseString() (string, error) {
	if v.kind != KindString && v.kind != KindEnum {
		return "", contractErr("ReleaseString", v.kind)
	}
	out := *v.text
	v.text = new(string)
	return out, nil
}

// ReleaseScalar moves the nested payload out of a Scalar Value, leaving a
// Null nested value behind.
func (v *Value) ReleaseScalar() (Value, error) {
	if v.kind != KindScalar {
		return Value{}, contractErr("ReleaseScalar", v.kind)
	}
	out := v.scalar.Move()
	return out, nil
}

// Clone returns a deep copy: same kind, independently owned payload.
// Mutating the copy never affects the original.
func (v *Value) Clone() Value {
	out := Value{kind: v.kind}
	switch v.kind {
	case KindObject:
		out.object = v.object.clone()
	case KindList:
		list := make([]Value, len(*v.list))
		for i := range *v.list {
			list[i] = (*v.list)[i].Clone()
		}
		out.list = &list
	case KindString, KindEnum:
		text := *v.text
		out.text = &text
	case KindBoolean:
		out.boolean = v.boolean
	case KindInt:
		out.integer = v.integer
	case KindFloat:
		out.float = v.float
	case KindScalar:
		nested := v.scalar.Clone()
		out.scalar = &nested
	}
	return out
}

// Move transfers the payload and kind tag to the returned Value and resets
// the receiver to Null.
func (v *Value) Move() Value {
	out := *v
	*v = Value{}
	return out
}
