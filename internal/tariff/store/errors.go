package store

import "fmt"

// NotFoundError is returned when a requested entity does not exist in the
// tariff hierarchy itself. An empty rate-table result is not a NotFoundError;
// it is a valid "zero rates" answer.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// DataAccessError wraps database failures (connection, timeout, bad SQL) so
// the HTTP layer can map them to a 5xx without leaking driver detail.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
