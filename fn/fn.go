package fn

// Identity returns v unchanged. Extra arguments are accepted and ignored so it
// can stand in for any one-argument transform.
func Identity[T any](v T, _ ...any) T {
	return v
}

// Const returns a function that ignores its arguments and always returns v.
func Const[T any](v T, _ ...any) func(...any) T {
	return func(...any) T { return v }
}
