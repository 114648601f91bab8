package enum

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Use errors.Is to check them.
var (
	// ErrInvalidInputKind indicates the input is not a name-to-value mapping.
	ErrInvalidInputKind = errors.New("input is not a mapping")

	// ErrEmptyDefinition indicates the input mapping has no entries.
	ErrEmptyDefinition = errors.New("definition is empty")

	// ErrInvalidValueType indicates a value is neither text nor a number.
	ErrInvalidValueType = errors.New("value is not text or number")

	// ErrUnknownKey indicates a read of a key the enumeration does not define.
	ErrUnknownKey = errors.New("unknown key")

	// ErrReadOnly indicates an attempt to modify an enumeration.
	ErrReadOnly = errors.New("enumeration is read-only")
)

// ErrorKind categorizes enumeration errors.
type ErrorKind string

const (
	// KindInvalidInputKind represents input that is not a name-to-value mapping.
	KindInvalidInputKind ErrorKind = "invalid_input_kind"

	// KindEmptyDefinition represents a mapping with no entries.
	KindEmptyDefinition ErrorKind = "empty_definition"

	// KindInvalidValueType represents a value that is neither text nor a number.
	KindInvalidValueType ErrorKind = "invalid_value_type"

	// KindUnknownKey represents a read of an undefined key.
	KindUnknownKey ErrorKind = "unknown_key"

	// KindReadOnly represents any attempt to modify an enumeration.
	KindReadOnly ErrorKind = "read_only"
)

// Operation names recorded in Error.Op.
const (
	opNew    = "enum.New"
	opFrom   = "enum.From"
	opGet    = "Enumeration.Get"
	opSet    = "Enumeration.Set"
	opDelete = "Enumeration.Delete"
)

// Error is returned for every construction and access failure.
//
// Error() yields a fixed, human-readable message that names the offending key
// where there is one, so it can be shown to users or logged directly. Kind and
// the wrapped sentinel are meant for programmatic checks:
//
//	if errors.Is(err, enum.ErrUnknownKey) { ... }
//
//	var enumErr *enum.Error
//	if errors.As(err, &enumErr) {
//	    log.Printf("%s failed on %q", enumErr.Op, enumErr.Key)
//	}
type Error struct {
	// Op is the operation that failed (e.g. "enum.New", "Enumeration.Get").
	Op string

	// Kind categorizes the error.
	Kind ErrorKind

	// Key is the key involved, if any. For ErrInvalidValueType it is the
	// first offending key in sorted order.
	Key string

	// Message is the human-readable message returned by Error.
	Message string

	// Err is the sentinel for Kind.
	Err error
}

// Error returns the human-readable message.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches an *Error with the same Kind (and the same Op, when the target
// sets one), or delegates to the wrapped sentinel.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

func newInvalidInputKindError(op string) *Error {
	return &Error{
		Op:      op,
		Kind:    KindInvalidInputKind,
		Message: "Invalid input: An object is required",
		Err:     ErrInvalidInputKind,
	}
}

func newEmptyDefinitionError(op string) *Error {
	return &Error{
		Op:      op,
		Kind:    KindEmptyDefinition,
		Message: "Invalid object, Input must not be empty",
		Err:     ErrEmptyDefinition,
	}
}

func newInvalidValueTypeError(op, key string) *Error {
	return &Error{
		Op:      op,
		Kind:    KindInvalidValueType,
		Key:     key,
		Message: "Invalid object, Values must be strings or numbers",
		Err:     ErrInvalidValueType,
	}
}

func newUnknownKeyError(key string) *Error {
	return &Error{
		Op:      opGet,
		Kind:    KindUnknownKey,
		Key:     key,
		Message: fmt.Sprintf("Invalid key, %s does not exist", key),
		Err:     ErrUnknownKey,
	}
}

func newReadOnlyError(op, key string) *Error {
	msg := fmt.Sprintf("Cannot set value for %s, Enum is read-only", key)
	if op == opDelete {
		msg = fmt.Sprintf("Cannot delete %s, Enum is read-only", key)
	}
	return &Error{
		Op:      op,
		Kind:    KindReadOnly,
		Key:     key,
		Message: msg,
		Err:     ErrReadOnly,
	}
}

// IsUnknownKey reports whether err is an unknown key error.
func IsUnknownKey(err error) bool {
	return errors.Is(err, ErrUnknownKey)
}

// IsReadOnly reports whether err is a rejected modification.
func IsReadOnly(err error) bool {
	return errors.Is(err, ErrReadOnly)
}
