package domain

import "sync"

// Result is the final state of an Outcome. OK distinguishes the success
// branch; Code and Detail carry the failure classification.
type Result[T any] struct {
	OK     bool
	Value  T
	Code   int
	Detail string
}

// Outcome is the eventual result of a call to an external service. It
// resolves at most once; resolutions after the first are ignored, and the
// buffered channel delivers the result to exactly one consumer.
type Outcome[T any] struct {
	once sync.Once
	ch   chan Result[T]
}

func NewOutcome[T any]() *Outcome[T] {
	return &Outcome[T]{ch: make(chan Result[T], 1)}
}

// Succeeded returns an outcome already resolved with value.
func Succeeded[T any](value T) *Outcome[T] {
	o := NewOutcome[T]()
	o.Succeed(value)
	return o
}

// Failed returns an outcome already resolved with a failure.
func Failed[T any](code int, detail string) *Outcome[T] {
	o := NewOutcome[T]()
	o.Fail(code, detail)
	return o
}

func (o *Outcome[T]) Succeed(value T) {
	o.once.Do(func() {
		o.ch <- Result[T]{OK: true, Value: value}
	})
}

func (o *Outcome[T]) Fail(code int, detail string) {
	o.once.Do(func() {
		o.ch <- Result[T]{Code: code, Detail: detail}
	})
}

// Done returns the channel the result arrives on.
func (o *Outcome[T]) Done() <-chan Result[T] {
	return o.ch
}
