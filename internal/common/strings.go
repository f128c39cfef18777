package common

// UnknownStr is the String() result for enum values without a name.
const UnknownStr = "unknown"
