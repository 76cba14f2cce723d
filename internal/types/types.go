// Package types defines MiniLang's closed primitive type enumeration.
// The language has exactly two value types and no user-defined ones, so no
// interner or descriptor table is needed: a Kind is the whole type.
// Conditions are a use-context of comparisons, not a type, and deliberately
// do not appear here.
package types

// Kind enumerates all MiniLang value types.
type Kind uint8

const (
	// Invalid marks an expression whose type could not be determined.
	// It suppresses cascade diagnostics: checks involving Invalid stay silent.
	Invalid Kind = iota
	// Int32 is the 'int' keyword type.
	Int32
	// Float64 is the 'float' keyword type.
	Float64
)

func (k Kind) String() string {
	switch k {
	case Int32:
		return "int"
	case Float64:
		return "float"
	default:
		return "invalid"
	}
}

// IsValid reports whether k names a real value type.
func (k Kind) IsValid() bool {
	return k == Int32 || k == Float64
}
