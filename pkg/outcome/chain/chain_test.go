package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, outcome.Success(5)).Result()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: %v", out)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Result()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: %v", out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, outcome.Fail[int](outcome.NewFault("boom", "no")))

	called := false
	out := Then(c, func(ctx context.Context, v int) outcome.Result[string] {
		called = true
		return outcome.Success("never")
	}).Result()

	if out.IsSuccess() || out.Fault().Code() != "boom" {
		t.Fatalf("expected failure 'boom', got: %v", out)
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Then(FromValue(ctx, 3), func(ctx context.Context, v int) outcome.Result[int] {
		return outcome.Success(v * 2)
	}).Result()

	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: %v", out)
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ThenTry(FromValue(ctx, "21"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}).Result()
	if !out.IsSuccess() || out.Value() != 21 {
		t.Fatalf("expected success with 21, got: %v", out)
	}

	bad := ThenTry(FromValue(ctx, "x"), func(ctx context.Context, s string) (int, error) {
		return 0, errors.New("not a number")
	}).Result()
	if bad.IsSuccess() || bad.Fault().Message() != "not a number" {
		t.Fatalf("expected failure 'not a number', got: %v", bad)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(FromValue(ctx, 4), func(ctx context.Context, v int) string {
		return strconv.Itoa(v * 10)
	}).Result()

	if !out.IsSuccess() || out.Value() != "40" {
		t.Fatalf("expected success with \"40\", got: %v", out)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	out := FromValue(ctx, 9).
		Ensure(func(ctx context.Context, v int) { seen = v }).
		Result()

	if seen != 9 {
		t.Fatalf("side effect not observed, seen=%d", seen)
	}
	if !out.IsSuccess() || out.Value() != 9 {
		t.Fatalf("Ensure must not change the result, got: %v", out)
	}
}

func TestEnsureFault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var observed outcome.Fault
	out := Start(ctx, outcome.Fail[int](outcome.NewFault("boom", "no"))).
		EnsureFault(func(ctx context.Context, f outcome.Fault) { observed = f }).
		Result()

	if observed == nil || observed.Code() != "boom" {
		t.Fatalf("fault side effect not observed: %v", observed)
	}
	if out.IsSuccess() {
		t.Fatalf("EnsureFault must not change the result, got: %v", out)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(FromValue(ctx, 5),
		func(ctx context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
		func(ctx context.Context, f outcome.Fault) string { return "fault" })

	if got != "ok:5" {
		t.Fatalf("expected 'ok:5', got: %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	v, f := FromValue(ctx, "ok").Unwrap()
	if v != "ok" || f != nil {
		t.Fatalf("expected (ok, nil), got: (%v, %v)", v, f)
	}
}
