package countrydb

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("country not found")
	ErrInvalidKey      = errors.New("invalid key")
)

// ArgumentError reports a lookup value that fails the shape check for its key.
// The check applies to the query value only; stored records are never shape
// checked.
type ArgumentError struct {
	Key    Key
	Value  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s value %q: %s", e.Key, e.Value, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotFoundError reports a well-formed value that matched no record.
type NotFoundError struct {
	Key   Key
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no country with %s %q", e.Key, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// KeyError reports an unknown lookup key name.
type KeyError struct {
	Name string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid key %q (use %s)", e.Name, strings.Join(keyNames(), ", "))
}

func (e *KeyError) Is(target error) bool {
	return target == ErrInvalidKey
}
