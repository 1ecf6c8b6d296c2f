// Package bench runs both instrumented sorts over a sweep of input sizes
// and collects per-size timings and counters.
//
// For every requested size s, the harness takes the stable prefix
// all[:min(s, len(all))], hands an independent copy to merge sort and
// another to bubble sort, and times each call with the monotonic clock.
// The timed region includes the instrumentation itself.
//
// Sizes run strictly in caller order, one after the other; OnResult fires
// after each size so reports can be streamed while the sweep continues.
// The harness keeps no state between calls to Run.
//
// Errors:
//   - ErrOptionViolation — an invalid Option was supplied.
//   - ErrNegativeSize    — a requested size is < 0.
//   - ErrDisagreement    — verification found the two sorts disagree.
//   - any error returned by the OnResult hook.
//
// Any error aborts the whole sweep; there are no retries.
package bench
