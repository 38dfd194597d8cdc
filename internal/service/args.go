package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	language "github.com/hanpama/graphdoc/internal/language"
	response "github.com/hanpama/graphdoc/internal/response"
)

// MaterializeArguments builds the generic argument tree for one field from
// its AST arguments, substituting variable values. The resulting Value is an
// Object keyed by argument name; every adapter receives its own tree, so two
// aliases of the same declared field get independent argument trees.
func MaterializeArguments(args language.ArgumentList, variables map[string]any) (response.Value, error) {
	out := response.NewValue(response.KindObject)
	if err := out.Reserve(len(args)); err != nil {
		return response.Value{}, err
	}
	for _, arg := range args {
		v, err := astValueToValue(arg.Value, variables)
		if err != nil {
			return response.Value{}, fmt.Errorf("argument %q: %w", arg.Name, err)
		}
		if err := out.AppendMember(arg.Name, v); err != nil {
			return response.Value{}, err
		}
	}
	return out, nil
}

func astValueToValue(value *language.Value, variables map[string]any) (response.Value, error) {
	if value == nil {
		return response.Value{}, nil
	}
	switch value.Kind {
	case language.Variable:
		return FromGo(variables[value.Raw])
	case language.IntValue:
		i, err := strconv.Atoi(value.Raw)
		if err != nil {
			return response.Value{}, fmt.Errorf("malformed int literal %q", value.Raw)
		}
		return response.NewInt(i), nil
	case language.FloatValue:
		f, err := strconv.ParseFloat(value.Raw, 64)
		if err != nil {
			return response.Value{}, fmt.Errorf("malformed float literal %q", value.Raw)
		}
		return response.NewFloat(f), nil
	case language.StringValue, language.BlockValue:
		return response.NewString(value.Raw), nil
	case language.BooleanValue:
		return response.NewBoolean(value.Raw == "true"), nil
	case language.NullValue:
		return response.Value{}, nil
	case language.EnumValue:
		return response.NewEnum(value.Raw), nil
	case language.ListValue:
		out := response.NewValue(response.KindList)
		for _, child := range value.Children {
			cv, err := astValueToValue(child.Value, variables)
			if err != nil {
				return response.Value{}, err
			}
			if err := out.Append(cv); err != nil {
				return response.Value{}, err
			}
		}
		return out, nil
	case language.ObjectValue:
		out := response.NewValue(response.KindObject)
		for _, child := range value.Children {
			cv, err := astValueToValue(child.Value, variables)
			if err != nil {
				return response.Value{}, err
			}
			if err := out.AppendMember(child.Name, cv); err != nil {
				return response.Value{}, err
			}
		}
		return out, nil
	default:
		return response.Value{}, fmt.Errorf("unsupported value kind %d", value.Kind)
	}
}

// FromGo converts a JSON-decoded Go value (a variable value or a cursor
// round-tripped through transport) into a document Value. Map keys are
// emitted in sorted order since Go maps carry no insertion order. Integral
// float64 values become Int, matching what encoding/json produces for
// integer variable values.
func FromGo(v any) (response.Value, error) {
	switch val := v.(type) {
	case nil:
		return response.Value{}, nil
	case string:
		return response.NewString(val), nil
	case bool:
		return response.NewBoolean(val), nil
	case int:
		return response.NewInt(val), nil
	case int32:
		return response.NewInt(int(val)), nil
	case int64:
		return response.NewInt(int(val)), nil
	case float64:
		if math.Trunc(val) == val && !math.IsInf(val, 0) {
			return response.NewInt(int(val)), nil
		}
		return response.NewFloat(val), nil
	case []any:
		out := response.NewValue(response.KindList)
		if err := out.Reserve(len(val)); err != nil {
			return response.Value{}, err
		}
		for _, item := range val {
			cv, err := FromGo(item)
			if err != nil {
				return response.Value{}, err
			}
			if err := out.Append(cv); err != nil {
				return response.Value{}, err
			}
		}
		return out, nil
	case map[string]any:
		names := make([]string, 0, len(val))
		for name := range val {
			names = append(names, name)
		}
		sort.Strings(names)
		out := response.NewValue(response.KindObject)
		if err := out.Reserve(len(names)); err != nil {
			return response.Value{}, err
		}
		for _, name := range names {
			cv, err := FromGo(val[name])
			if err != nil {
				return response.Value{}, err
			}
			if err := out.AppendMember(name, cv); err != nil {
				return response.Value{}, err
			}
		}
		return out, nil
	default:
		return response.Value{}, fmt.Errorf("cannot convert %T to response value", v)
	}
}

// Typed argument extraction. Require* forms fail with a data-level error
// when the argument is absent; Find* forms report absence without failing.
// Both treat a wrong-typed argument as a data failure tied to the field,
// never as a contract violation.

// RequireString extracts a required String argument.
func RequireString(args *response.Value, name string) (string, error) {
	m, err := args.Member(name)
	if err != nil {
		return "", err
	}
	return argString(name, m)
}

// FindString extracts an optional String argument.
func FindString(args *response.Value, name string) (string, bool, error) {
	m, ok, err := findArg(args, name)
	if err != nil || !ok {
		return "", false, err
	}
	s, err := argString(name, m)
	return s, err == nil, err
}

// RequireInt extracts a required Int argument.
func RequireInt(args *response.Value, name string) (int, error) {
	m, err := args.Member(name)
	if err != nil {
		return 0, err
	}
	return argInt(name, m)
}

// FindInt extracts an optional Int argument.
func FindInt(args *response.Value, name string) (int, bool, error) {
	m, ok, err := findArg(args, name)
	if err != nil || !ok {
		return 0, false, err
	}
	i, err := argInt(name, m)
	return i, err == nil, err
}

// RequireBoolean extracts a required Boolean argument.
func RequireBoolean(args *response.Value, name string) (bool, error) {
	m, err := args.Member(name)
	if err != nil {
		return false, err
	}
	return argBoolean(name, m)
}

// FindBoolean extracts an optional Boolean argument.
func FindBoolean(args *response.Value, name string) (bool, bool, error) {
	m, ok, err := findArg(args, name)
	if err != nil || !ok {
		return false, false, err
	}
	b, err := argBoolean(name, m)
	return b, err == nil, err
}

// RequireID extracts a required ID argument as its opaque byte sequence.
func RequireID(args *response.Value, name string) ([]byte, error) {
	s, err := RequireString(args, name)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// RequireValue extracts a required argument as an owned copy of its raw
// Value tree, for opaque inputs like cursors and input objects.
func RequireValue(args *response.Value, name string) (response.Value, error) {
	m, err := args.Member(name)
	if err != nil {
		return response.Value{}, err
	}
	return m.Clone(), nil
}

// FindValue extracts an optional argument as an owned copy of its raw Value
// tree. A Null-kind argument counts as absent.
func FindValue(args *response.Value, name string) (response.Value, bool, error) {
	m, ok, err := findArg(args, name)
	if err != nil || !ok {
		return response.Value{}, false, err
	}
	if m.Kind() == response.KindNull {
		return response.Value{}, false, nil
	}
	return m.Clone(), true, nil
}

func findArg(args *response.Value, name string) (*response.Value, bool, error) {
	pos, err := args.Find(name)
	if err != nil {
		return nil, false, err
	}
	if pos == response.NotFound {
		return nil, false, nil
	}
	members, err := args.Members()
	if err != nil {
		return nil, false, err
	}
	return &members[pos].Value, true, nil
}

func argString(name string, v *response.Value) (string, error) {
	switch v.Kind() {
	case response.KindString, response.KindEnum:
		return v.StringValue()
	default:
		return "", fmt.Errorf("argument %q: expected String, got %s", name, v.Kind())
	}
}

func argInt(name string, v *response.Value) (int, error) {
	switch v.Kind() {
	case response.KindInt:
		return v.IntValue()
	case response.KindFloat:
		f, err := v.FloatValue()
		if err != nil {
			return 0, err
		}
		if math.Trunc(f) != f {
			return 0, fmt.Errorf("argument %q: expected Int, got fractional Float", name)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("argument %q: expected Int, got %s", name, v.Kind())
	}
}

func argBoolean(name string, v *response.Value) (bool, error) {
	if v.Kind() != response.KindBoolean {
		return false, fmt.Errorf("argument %q: expected Boolean, got %s", name, v.Kind())
	}
	return v.BooleanValue()
}
