package future

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Future is an asynchronously produced Result: a channel that delivers
// exactly one value and is then closed.
type Future[T any] <-chan outcome.Result[T]

// Resolve lifts an already known Result into a settled Future.
func Resolve[T any](r outcome.Result[T]) Future[T] {
	out := make(chan outcome.Result[T], 1)
	out <- r
	close(out)
	return out
}

// Go runs compute in its own goroutine and returns the Future that will
// carry its Result.
func Go[T any](ctx context.Context, compute func(ctx context.Context) outcome.Result[T]) Future[T] {
	out := make(chan outcome.Result[T], 1)

	go func() {
		defer close(out)
		out <- compute(ctx)
	}()

	return out
}

// Await blocks until the future settles or ctx is done, whichever comes
// first. A future abandoned by its producer (closed empty) and a done
// context both surface as a CodeCanceled failure.
func Await[T any](ctx context.Context, f Future[T]) outcome.Result[T] {
	select {
	case r, ok := <-f:
		if !ok {
			return outcome.Failf[T](outcome.CodeCanceled, "future settled without a result")
		}
		return r
	case <-ctx.Done():
		return outcome.Failf[T](outcome.CodeCanceled, "await canceled: %v", ctx.Err())
	}
}

// Unwrap blocks like Await, then delegates to the synchronous Unwrap.
func Unwrap[T any](ctx context.Context, f Future[T]) (T, outcome.Fault) {
	return Await(ctx, f).Unwrap()
}

// lift awaits the input and applies one synchronous step to the settled
// Result, yielding the next link of the chain.
func lift[In, Out any](ctx context.Context, in Future[In],
	apply func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out]) Future[Out] {

	out := make(chan outcome.Result[Out], 1)

	go func() {
		defer close(out)
		out <- apply(ctx, Await(ctx, in))
	}()

	return out
}

func Mapping[In, Out any](ctx context.Context, in Future[In],
	onSuccess func(ctx context.Context, r In) Out) Future[Out] {

	return lift(ctx, in, func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {
		return solo.Map(ctx, r, onSuccess)
	})
}

// MappingAsync is Mapping with a transform that is itself asynchronous,
// delivering its value on a channel.
func MappingAsync[In, Out any](ctx context.Context, in Future[In],
	onSuccess func(ctx context.Context, r In) <-chan Out) Future[Out] {

	return lift(ctx, in, func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {
		if r.IsFailure() {
			return outcome.FailFrom[In, Out](r)
		}

		select {
		case v, ok := <-onSuccess(ctx, r.Value()):
			if !ok {
				return outcome.Failf[Out](outcome.CodeCanceled, "async transform settled without a value")
			}
			return outcome.Success(v)
		case <-ctx.Done():
			return outcome.Failf[Out](outcome.CodeCanceled, "async transform canceled: %v", ctx.Err())
		}
	})
}

func Switching[In, Out any](ctx context.Context, in Future[In],
	onSuccess func(ctx context.Context, r In) outcome.Result[Out]) Future[Out] {

	return lift(ctx, in, func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {
		return solo.Switch(ctx, r, onSuccess)
	})
}

// SwitchingAsync sequences a fallible asynchronous step. The step is not
// started when the input failed.
func SwitchingAsync[In, Out any](ctx context.Context, in Future[In],
	onSuccess func(ctx context.Context, r In) Future[Out]) Future[Out] {

	return lift(ctx, in, func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {
		if r.IsFailure() {
			return outcome.FailFrom[In, Out](r)
		}
		return Await(ctx, onSuccess(ctx, r.Value()))
	})
}

func Teeing[T any](ctx context.Context, in Future[T],
	onSuccess func(ctx context.Context, r T)) Future[T] {

	return lift(ctx, in, func(ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
		return solo.Tee(ctx, r, onSuccess)
	})
}

// TeeingAsync runs an asynchronous side effect on success, waiting for its
// completion signal before the chain continues. The input passes through
// unchanged either way.
func TeeingAsync[T any](ctx context.Context, in Future[T],
	onSuccess func(ctx context.Context, r T) <-chan outcome.Unit) Future[T] {

	return lift(ctx, in, func(ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
		if r.IsSuccess() {
			select {
			case <-onSuccess(ctx, r.Value()):
			case <-ctx.Done():
			}
		}
		return r
	})
}

func FaultTeeing[T any](ctx context.Context, in Future[T],
	onFault func(ctx context.Context, f outcome.Fault)) Future[T] {

	return lift(ctx, in, func(ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
		return solo.TeeFault(ctx, r, onFault)
	})
}

func FaultTeeingAsync[T any](ctx context.Context, in Future[T],
	onFault func(ctx context.Context, f outcome.Fault) <-chan outcome.Unit) Future[T] {

	return lift(ctx, in, func(ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
		if r.IsFailure() {
			select {
			case <-onFault(ctx, r.Fault()):
			case <-ctx.Done():
			}
		}
		return r
	})
}

func Trying[In, Out any](ctx context.Context, in Future[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Future[Out] {

	return lift(ctx, in, func(ctx context.Context, r outcome.Result[In]) outcome.Result[Out] {
		return solo.Try(ctx, r, onTryExecute)
	})
}

func Validating[T any](ctx context.Context, in Future[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) Future[T] {

	return lift(ctx, in, func(ctx context.Context, r outcome.Result[T]) outcome.Result[T] {
		return solo.AndValidate(ctx, r, validate)
	})
}

// Finalizing collapses an entire chain into a plain value channel.
func Finalizing[In, Out any](ctx context.Context, in Future[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFault func(ctx context.Context, f outcome.Fault) Out) <-chan Out {

	out := make(chan Out, 1)

	go func() {
		defer close(out)
		out <- solo.Finally(ctx, Await(ctx, in), onSuccess, onFault)
	}()

	return out
}
