package try

// Map transforms the successful value and leaves failures untouched. An
// empty Result stays empty.
func Map[In, Out any, E Error](input Result[In, E], onSuccess func(r In) Out) Result[Out, E] {
	if input.IsSuccess() {
		return Success[Out, E](onSuccess(input.Value()))
	}
	if input.IsFailure() {
		return Fail[Out, E](input.Err())
	}
	return Result[Out, E]{}
}

// Switch moves from Result[In] to Result[Out] through a function that can
// itself fail. Failures pass through without invoking onSuccess.
func Switch[In, Out any, E Error](input Result[In, E], onSuccess func(r In) Result[Out, E]) Result[Out, E] {
	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	if input.IsFailure() {
		return Fail[Out, E](input.Err())
	}
	return Result[Out, E]{}
}

// Finally collapses a Result to a plain value via the matching handler.
func Finally[In, Out any, E Error](input Result[In, E],
	onSuccess func(r In) Out,
	onFailure func(err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Err())
}
