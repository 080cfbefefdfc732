// Package try contains the Result container and the closed error taxonomy
// shared by every toolkit in this module. A Result[T, E] carries either a
// success value or one concrete error kind; toolkit packages (coll, file,
// jsonx, parse, rest) catch every collaborator failure and classify it into
// that taxonomy, so nothing they wrap can fail past their boundary.
//
// Highlights:
// - Success/Fail: construct Result[T, E]
// - IsSuccess/IsFailure/Value/Err: branch on the outcome without panics
// - MustValue/MustErr: assert a variant; misuse is a panic, not a failure
// - Map/Switch/Finally: optional composition over an existing Result
// - Error: the contract (Code, Message, Unwrap) of the six error kinds
// - CompositeError: HTTP+JSON union for two-phase operations
//
// The only panics this package produces are contract violations: reading
// the wrong variant or constructing a failure from a nil error.
package try
