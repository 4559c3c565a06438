// Package owlerr defines the closed taxonomy of error kinds the reasoner
// core can raise, shared by the ontology data model and every reasoner
// subpackage.
package owlerr

import "fmt"

// Kind is a conceptual error category, not a concrete type. Every Error
// carries exactly one Kind so callers can branch on errors.Is against the
// package-level sentinels below instead of string-matching messages.
type Kind int

const (
	// KindData covers malformed IRIs, duplicate axioms under strict mode,
	// undeclared entities under strict mode, and non-equivalence cycles in
	// the subclass hierarchy. Raised at load time, never cached.
	KindData Kind = iota
	// KindResourceExceeded covers step-budget or wall-clock exhaustion in
	// the tableau. Never coerced to true/false by a caller.
	KindResourceExceeded
	// KindUnknown covers construct combinations the engine is documented as
	// incomplete for.
	KindUnknown
	// KindInternalInvariant covers a detected inconsistency in the
	// reasoner's own state — a bug, not a data issue.
	KindInternalInvariant
	// KindCancelled covers cooperative cancellation acknowledged mid-query.
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindData:
		return "DataError"
	case KindResourceExceeded:
		return "ReasoningResourceExceeded"
	case KindUnknown:
		return "ReasoningUnknown"
	case KindInternalInvariant:
		return "InternalInvariantViolation"
	case KindCancelled:
		return "CancelledByCaller"
	default:
		return "UnknownErrorKind"
	}
}

// Error is the concrete error type raised across the reasoner core.
type Error struct {
	kind    Kind
	Op      string // the operation that failed, e.g. "tableaux.IsSatisfiable"
	Message string
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.kind, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.kind, e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Kind reports the conceptual category of the error.
func (e *Error) Kind() Kind { return e.kind }

// Is supports errors.Is against the package-level sentinel values below:
// errors.Is(err, owlerr.ResourceExceeded) is true for any *Error whose kind
// is KindResourceExceeded, regardless of Op/Message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op != "" || t.Message != "" {
		return false
	}
	return e.kind == t.kind
}

// Sentinel values for errors.Is comparisons; they carry no Op/Message.
var (
	DataErr              = &Error{kind: KindData}
	ResourceExceeded      = &Error{kind: KindResourceExceeded}
	Unknown              = &Error{kind: KindUnknown}
	InternalInvariant    = &Error{kind: KindInternalInvariant}
	Cancelled            = &Error{kind: KindCancelled}
)

// New constructs an Error of the given kind.
func New(kind Kind, op, message string) *Error {
	return &Error{kind: kind, Op: op, Message: message}
}

// Wrap constructs an Error of the given kind wrapping a lower-level cause.
func Wrap(kind Kind, op, message string, cause error) *Error {
	return &Error{kind: kind, Op: op, Message: message, Err: cause}
}
