// Package future lifts the solo primitives onto asynchronously produced
// results. A Future[T] is a receive-only channel delivering exactly one
// Result[T]; the externally supplied context is the only cancellation
// token the package knows about.
//
// Every operation awaits its input, skips the callback entirely when the
// input failed, and otherwise behaves exactly like its solo counterpart.
// Steps of one chain resolve strictly in sequence; nothing runs in
// parallel.
//
// Key operations:
// - Resolve/Go: lift a Result or a computation into a Future
// - Await/Unwrap: block until the future settles
// - Mapping/Switching/Teeing/FaultTeeing: operations with plain callbacks
// - MappingAsync/SwitchingAsync/TeeingAsync/FaultTeeingAsync: operations
//   whose callback is itself an asynchronous computation
// - Trying/Validating/Finalizing: async forms of Try, AndValidate, Finally
package future
