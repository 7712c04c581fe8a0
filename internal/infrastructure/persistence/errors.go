package persistence

import "fmt"

// StoreError describes a failed key-value backend operation.
type StoreError struct {
	Op      string
	Backend string
	Key     string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s store: %s: %v", e.Backend, e.Op, e.Err)
	}
	return fmt.Sprintf("%s store: %s %q: %v", e.Backend, e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
