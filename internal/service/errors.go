package service

import "fmt"

// PathElement is a response-path segment: a string member name or an int
// list index.
type PathElement any

// Path locates a field in the response document.
type Path []PathElement

func (p Path) String() string {
	out := ""
	for i, elem := range p {
		switch v := elem.(type) {
		case string:
			if i > 0 {
				out += "."
			}
			out += v
		case int:
			out += fmt.Sprintf("[%d]", v)
		}
	}
	return out
}

func appendPath(p Path, elem PathElement) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = elem
	return out
}

// FieldError is a data-level failure located at a response path. Sibling
// members of the same parent Object remain valid and are still emitted.
type FieldError struct {
	Message    string         `json:"message"`
	Path       Path           `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e FieldError) Error() string { return e.Message }
