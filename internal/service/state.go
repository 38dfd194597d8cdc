package service

import (
	"sync"

	language "github.com/hanpama/graphdoc/internal/language"
)

// State carries the per-operation context shared by every resolver adapter:
// the coerced variable values, the document's fragment definitions, and the
// sink for located field errors. One State serves one operation; it is safe
// for use from concurrently resolving fields.
type State struct {
	Variables map[string]any
	Fragments language.FragmentDefinitionList

	mu   sync.Mutex
	errs []FieldError
}

// NewState creates a State for one operation.
func NewState(variables map[string]any, fragments language.FragmentDefinitionList) *State {
	if variables == nil {
		variables = map[string]any{}
	}
	return &State{Variables: variables, Fragments: fragments}
}

// AddError records a located field error.
func (s *State) AddError(message string, path Path) {
	s.mu.Lock()
	s.errs = append(s.errs, FieldError{Message: message, Path: path})
	s.mu.Unlock()
}

// Errors returns the field errors recorded so far, in recording order.
func (s *State) Errors() []FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FieldError, len(s.errs))
	copy(out, s.errs)
	return out
}

func (s *State) fragment(name string) *language.FragmentDefinition {
	for _, f := range s.Fragments {
		if f != nil && f.Name == name {
			return f
		}
	}
	return nil
}
