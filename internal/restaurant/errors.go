package restaurant

import (
	"errors"
	"fmt"
)

// ErrItemNotFound matches any *ItemNotFoundError under errors.Is.
var ErrItemNotFound = errors.New("item not found")

// ItemNotFoundError reports a menu lookup for a name the menu does not have.
type ItemNotFoundError struct {
	Name string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrItemNotFound, e.Name)
}

func (e *ItemNotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}
