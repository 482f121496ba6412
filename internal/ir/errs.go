package ir

import "errors"

var (
	// ErrParse reports XML input that is not well formed.
	ErrParse = errors.New("malformed XML")

	// ErrDecode reports interchange input that is not syntactically
	// valid JSON or YAML.
	ErrDecode = errors.New("malformed interchange document")

	// ErrStructure reports a syntactically valid interchange value
	// that does not describe a single-tag element mapping.
	ErrStructure = errors.New("invalid document structure")
)
