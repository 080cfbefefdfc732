// Package rest provides safe HTTP calls over a caller-supplied
// *http.Client. Plain verbs return a Result holding the raw *http.Response
// or an HTTPError; the JSON verbs add encode/decode phases and report
// failures as a CompositeError that records which phase broke.
//
// Highlights:
// - Get/Post/Put/Patch/Delete (+URL variants): raw round trips
// - GetString/GetBytes: body convenience reads
// - GetJSON/PostJSON/PutJSON/PatchJSON: typed request/response payloads
// - ErrNilClient/ErrNoTarget: precondition causes, detectable via errors.Is
//
// Every operation takes a context.Context first; cancellation surfaces as
// a "request canceled" HTTPError. For the plain verbs a completed round
// trip is a success whatever the status code. The JSON verbs treat non-2xx
// as failure, since the body cannot be the expected payload.
package rest
