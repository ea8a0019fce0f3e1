package services

import "fmt"

// ValidationError reports user input that was rejected before reaching storage.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// EmptyTitleMessage is the message used when a title is blank after trimming.
const EmptyTitleMessage = "book title cannot be empty"
