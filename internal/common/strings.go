package common

// UnknownStr is rendered for enum values that have no name.
const UnknownStr = "unknown"
