package invalid

// Broken mixes supported and unsupported fields.
//
//navgen:destination id=broken colour=red
type Broken struct {
	Name string
	Tags []string
}

// NotAStruct cannot carry arguments.
//
//navgen:destination
type NotAStruct int

// Ignored has no directive.
type Ignored struct {
	Name string
}
