// Package fn provides small generic combinators for UI code.
//
//   - Identity and Const are the trivial function builders.
//   - Catching and Defaulting turn selected failures, whether returned errors
//     or panics, into values. A Matcher chooses which failures are recovered.
//   - These normalizes "a list, or a record holding a list under some field"
//     into one call. TheseJSON does the same over raw JSON.
//   - Attrs is a read-only bag of named values whose lookups never fail.
//
// Nothing in this package keeps state between calls; every function is safe
// for concurrent use as long as the caller-supplied functions are.
package fn
