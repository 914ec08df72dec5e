package domain

import "fmt"

// ValidationError reports malformed caller input. It is the only error kind
// a request handler maps to a 4xx response; provider failures never surface
// here (they degrade to estimates inside the routing services).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
