package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T any](input T) outcome.Result[T] {
	return outcome.Success(input)
}

func Fail[T any](fault outcome.Fault) outcome.Result[T] {
	return outcome.Fail[T](fault)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input outcome.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Result[T] {

	if input.IsSuccess() {

		if valid, errMsg := validate(ctx, input.Value()); valid {
			return input
		} else {
			return outcome.Failf[T](outcome.CodeInvalid, "%s", errMsg)
		}
	}
	return input
}

// Switch sequences a fallible step: on success the step decides the new
// Result, on failure the step is skipped and the fault travels on untouched.
func Switch[In any, Out any](ctx context.Context,
	input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) outcome.Result[Out]) outcome.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return outcome.FailFrom[In, Out](input)
}

// Map transforms the successful value with a function that cannot fail.
// A failing transformation belongs in Switch or Try.
func Map[In any, Out any](ctx context.Context,
	input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out) outcome.Result[Out] {

	if input.IsSuccess() {
		return outcome.Success(onSuccess(ctx, input.Value()))
	}
	return outcome.FailFrom[In, Out](input)
}

// Tee runs a side effect on success and returns the input unchanged.
func Tee[T any](ctx context.Context,
	input outcome.Result[T],
	onSuccess func(ctx context.Context, r T)) outcome.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}

	return input
}

// TeeFault runs a side effect on failure and returns the input unchanged.
func TeeFault[T any](ctx context.Context,
	input outcome.Result[T],
	onFault func(ctx context.Context, f outcome.Fault)) outcome.Result[T] {

	if input.IsFailure() {
		onFault(ctx, input.Fault())
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input outcome.Result[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) outcome.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input.Value()) {
			onSuccessAndCondition(ctx, input.Value())
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input outcome.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFault func(ctx context.Context, f outcome.Fault)) outcome.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFault(ctx, input.Fault())
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFault func(ctx context.Context, f outcome.Fault) Out) outcome.Result[Out] {

	if input.IsSuccess() {
		return outcome.Success(onSuccess(ctx, input.Value()))
	}

	onFault(ctx, input.Fault())
	return outcome.FailFrom[In, Out](input)
}

// Try adapts a classic (Out, error) function, converting a returned error
// into a failure.
func Try[In any, Out any](ctx context.Context, input outcome.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return outcome.Fail[Out](outcome.AsFault(err))
		}

		return outcome.Success(out)
	}

	return outcome.FailFrom[In, Out](input)
}

func FailOnFault[T any](ctx context.Context, input outcome.Result[T],
	maybeFault func(ctx context.Context, in T) outcome.Fault) outcome.Result[T] {
	if input.IsSuccess() {
		if f := maybeFault(ctx, input.Value()); outcome.HasFault(f) {
			return outcome.Fail[T](f)
		}
		return input
	}
	return input
}

// Finally collapses a Result into a plain value via per-state handlers.
func Finally[In, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFault func(ctx context.Context, f outcome.Fault) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFault(ctx, input.Fault())
}
