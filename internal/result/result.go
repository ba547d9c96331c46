// Package result carries the outcome of every mutating service operation.
// Business failures travel as values, never as Go errors across the service
// boundary.
package result

type Type int

const (
	Success Type = iota
	Invalid
	NotFound
)

type Result[T any] struct {
	kind     Type
	messages []string
	payload  T
}

func New[T any]() *Result[T] {
	return &Result[T]{kind: Success}
}

// AddMessage records a failure. NotFound takes precedence over Invalid when
// both accumulate, matching the HTTP mapping (404 wins over 400).
func (r *Result[T]) AddMessage(kind Type, message string) {
	if kind == Success {
		return
	}
	if r.kind == Success || kind == NotFound {
		r.kind = kind
	}
	r.messages = append(r.messages, message)
}

func (r *Result[T]) IsSuccess() bool {
	return r.kind == Success
}

func (r *Result[T]) Kind() Type {
	return r.kind
}

// Messages returns the accumulated failure messages in the order they were
// added. Validation does not short-circuit, so there may be several.
func (r *Result[T]) Messages() []string {
	return r.messages
}

func (r *Result[T]) SetPayload(payload T) {
	r.payload = payload
}

func (r *Result[T]) Payload() T {
	return r.payload
}
