package prefkit

// Kind identifies the value domain of a preference.
type Kind uint8

const (
	// KindInvalid is the zero Kind and identifies no domain.
	KindInvalid Kind = iota
	// KindBool is a true/false preference.
	KindBool
	// KindInt is a 64-bit signed integer preference.
	KindInt
	// KindFloat is a 64-bit floating-point preference.
	KindFloat
	// KindString is a text preference.
	KindString
	// KindDuration is a time.Duration preference, rendered in the document as
	// a duration string such as "30s".
	KindDuration
	// KindEnum is an integer enumeration preference, rendered in the document
	// by member name.
	KindEnum
)

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindDuration:
		return "duration"
	case KindEnum:
		return "enum"
	default:
		return "invalid"
	}
}
