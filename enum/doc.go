// Package enum builds immutable, validated enumerations from plain
// name-to-value definitions.
//
// An enumeration maps text identifiers to text or numeric values. It is
// validated once at construction and can never change afterwards: reading an
// unknown key is an error, and every write is rejected.
//
// # Usage
//
// Build an enumeration from a typed definition:
//
//	colors, err := enum.New(enum.Definition{
//	    "RED":   enum.Text("red"),
//	    "BLUE":  enum.Text("blue"),
//	    "GREEN": enum.Text("green"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	red, err := colors.Get("RED")       // Text("red"), nil
//	_, err = colors.Get("PURPLE")       // Invalid key, PURPLE does not exist
//	err = colors.Set("RED", enum.Text("crimson")) // Cannot set value for RED, Enum is read-only
//
// Or from untyped input such as a decoded document:
//
//	levels, err := enum.From(map[string]any{"LOW": 1, "HIGH": 3})
//
// Definitions can also be loaded from JSON or YAML files with LoadFile, and
// collected under names in a Registry.
//
// # Validation
//
// Input is checked in a fixed order. A non-mapping input fails with
// ErrInvalidInputKind, an empty mapping with ErrEmptyDefinition, and a mapping
// holding anything other than text or numbers with ErrInvalidValueType. No
// partial enumeration is ever returned.
//
// # Thread Safety
//
// Enumerations are immutable and may be shared between goroutines without
// synchronization. Each call to New or From is independent. Registry uses a
// sync.RWMutex for its own bookkeeping.
package enum
