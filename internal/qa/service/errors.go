package service

import "fmt"

// OperationError is returned by every Service operation whose store call
// failed. It keeps the failing operation name and the store's message.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// Extensions is picked up by graph-gophers/graphql-go and copied into the
// "extensions" member of the GraphQL error.
func (e *OperationError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":      "STORE_ERROR",
		"operation": e.Op,
	}
}
