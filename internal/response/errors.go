package response

import (
	"errors"
	"fmt"
)

// The error taxonomy separates programming defects from data-level failures.
//
// ErrContract and ErrDuplicateMember are defects in resolver or adapter
// construction: they must abort the current build step and surface loudly,
// never be recovered into a field error. ErrMissingMember and
// ErrIndexOutOfRange are data-level failures tied to a specific response
// path; the resolving adapter catches them and attaches them to that path
// while sibling members remain valid.
var (
	ErrContract        = errors.New("operation invalid for value kind")
	ErrDuplicateMember = errors.New("duplicate object member")
	ErrMissingMember   = errors.New("missing object member")
	ErrIndexOutOfRange = errors.New("list index out of range")
)

func contractErr(op string, k Kind) error {
	return fmt.Errorf("%w: Value.%s on %s", ErrContract, op, k)
}

func duplicateMemberErr(name string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateMember, name)
}

func missingMemberErr(name string) error {
	return fmt.Errorf("%w: %q", ErrMissingMember, name)
}

func indexErr(i, n int) error {
	return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, n)
}

// IsDataError reports whether err is attributable to a single response path
// rather than a defect. Data errors become located field errors; everything
// else aborts the operation.
func IsDataError(err error) bool {
	return errors.Is(err, ErrMissingMember) || errors.Is(err, ErrIndexOutOfRange)
}
