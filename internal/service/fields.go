package service

import (
	language "github.com/hanpama/graphdoc/internal/language"
)

// fieldGroupMap preserves the declared/alias order of response keys while
// merging selections that repeat the same response key.
type fieldGroupMap struct {
	groups []fieldGroup
	index  map[string]int
}

type fieldGroup struct {
	ResponseName string
	Fields       []*language.Field
}

func newFieldGroupMap() *fieldGroupMap {
	return &fieldGroupMap{index: make(map[string]int)}
}

func (fgm *fieldGroupMap) add(responseName string, field *language.Field) {
	if idx, exists := fgm.index[responseName]; exists {
		fgm.groups[idx].Fields = append(fgm.groups[idx].Fields, field)
		return
	}
	fgm.index[responseName] = len(fgm.groups)
	fgm.groups = append(fgm.groups, fieldGroup{
		ResponseName: responseName,
		Fields:       []*language.Field{field},
	})
}

// collectFields walks a selection set into ordered field groups. The same
// declared field requested under different aliases yields separate groups,
// each resolved independently with its own arguments.
func collectFields(state *State, typeName string, selectionSet language.SelectionSet) *fieldGroupMap {
	groups := newFieldGroupMap()
	visited := make(map[string]bool)
	collectFieldsImpl(state, typeName, selectionSet, groups, visited)
	return groups
}

func collectFieldsImpl(state *State, typeName string, selectionSet language.SelectionSet, groups *fieldGroupMap, visitedFragments map[string]bool) {
	for _, selection := range selectionSet {
		switch sel := selection.(type) {
		case *language.Field:
			if !shouldIncludeNode(state, sel.Directives) {
				continue
			}
			responseName := sel.Alias
			if responseName == "" {
				responseName = sel.Name
			}
			groups.add(responseName, sel)

		case *language.InlineFragment:
			if !shouldIncludeNode(state, sel.Directives) {
				continue
			}
			if sel.TypeCondition != "" && sel.TypeCondition != typeName {
				continue
			}
			collectFieldsImpl(state, typeName, sel.SelectionSet, groups, visitedFragments)

		case *language.FragmentSpread:
			if !shouldIncludeNode(state, sel.Directives) {
				continue
			}
			if visitedFragments[sel.Name] {
				continue
			}
			visitedFragments[sel.Name] = true

			def := state.fragment(sel.Name)
			if def == nil {
				continue
			}
			if def.TypeCondition != "" && def.TypeCondition != typeName {
				continue
			}
			if !shouldIncludeNode(state, def.Directives) {
				continue
			}
			collectFieldsImpl(state, typeName, def.SelectionSet, groups, visitedFragments)
		}
	}
}

// shouldIncludeNode evaluates @skip and @include with variable substitution.
func shouldIncludeNode(state *State, directives language.DirectiveList) bool {
	if skip := directives.ForName("skip"); skip != nil {
		if cond, ok := directiveIf(state, skip); ok && cond {
			return false
		}
	}
	if include := directives.ForName("include"); include != nil {
		if cond, ok := directiveIf(state, include); ok && !cond {
			return false
		}
	}
	return true
}

func directiveIf(state *State, directive *language.Directive) (bool, bool) {
	for _, arg := range directive.Arguments {
		if arg.Name != "if" || arg.Value == nil {
			continue
		}
		if arg.Value.Kind == language.Variable {
			if v, ok := state.Variables[arg.Value.Raw]; ok {
				b, isBool := v.(bool)
				return b, isBool
			}
			return false, false
		}
		if arg.Value.Kind == language.BooleanValue {
			return arg.Value.Raw == "true", true
		}
	}
	return false, false
}

// mergeSelectionSets concatenates the sub-selections of one field group.
func mergeSelectionSets(fields []*language.Field) language.SelectionSet {
	var merged language.SelectionSet
	for _, f := range fields {
		merged = append(merged, f.SelectionSet...)
	}
	return merged
}
