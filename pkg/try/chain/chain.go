package chain

import (
	"github.com/ib-77/try/pkg/try"
)

type Chain[T any, E try.Error] struct {
	res try.Result[T, E]
}

func Start[T any, E try.Error](r try.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T any, E try.Error](v T) Chain[T, E] {
	return Start(try.Success[T, E](v))
}

func (c Chain[T, E]) Result() try.Result[T, E] {
	return c.res
}

// Then composes functions that already return try.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(t T) try.Result[T, E]) Chain[T, E] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{res: onSuccess(c.res.Value())}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{res: try.Success[T, E](onSuccess(c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}
	if c.res.IsSuccess() && onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Or keeps the receiver when it succeeded, otherwise falls back to the
// alternative; with no success the first failure wins.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	if c.res.IsFailure() {
		return c
	}
	return alternative
}

// Finally collapses the chain to a final value, delegating to try.Finally
func Finally[T, Out any, E try.Error](c Chain[T, E],
	onSuccess func(T) Out,
	onFailure func(E) Out) Out {
	return try.Finally(c.res, onSuccess, onFailure)
}
