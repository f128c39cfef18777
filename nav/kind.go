package nav

//go:generate go tool stringer -type=ArgType,Kind -linecomment -output=kind_string.go

// ArgType is the declared type of a navigation argument.
type ArgType int

const (
	TypeUnknown ArgType = iota // unknown
	TypeString                 // string
	TypeInt                    // int
	TypeBool                   // bool
	TypeFloat                  // float
)

// ParseArgType maps a declaration type name to an ArgType.
// Go spellings of the same types are accepted.
func ParseArgType(s string) (ArgType, bool) {
	switch s {
	case "string":
		return TypeString, true
	case "int", "integer":
		return TypeInt, true
	case "bool", "boolean":
		return TypeBool, true
	case "float", "float64":
		return TypeFloat, true
	default:
		return TypeUnknown, false
	}
}

// ArgTypeNames lists the names ParseArgType accepts as canonical spellings.
func ArgTypeNames() []string {
	return []string{TypeString.String(), TypeInt.String(), TypeBool.String(), TypeFloat.String()}
}

// Kind is the variant held by a Value.
type Kind int

const (
	KindNull   Kind = iota // null
	KindString             // string
	KindInt                // int
	KindBool               // bool
	KindFloat              // float
)

// kindOf returns the value kind an argument of type t carries.
func kindOf(t ArgType) Kind {
	switch t {
	case TypeString:
		return KindString
	case TypeInt:
		return KindInt
	case TypeBool:
		return KindBool
	case TypeFloat:
		return KindFloat
	default:
		return KindNull
	}
}
