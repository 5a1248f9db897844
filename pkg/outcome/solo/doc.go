// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. These functions form the core building blocks for
// fault-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out], short-circuiting on failure
// - Map/DoubleMap: transform successful values (with optional fault map)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeFault/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/fault handlers
package solo
