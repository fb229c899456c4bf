package simplevec

// CastInvokeResult wraps f so that its result is converted to TO.
func CastInvokeResult[TO, S, U Number](f func(S) U) func(S) TO {
	return func(x S) TO {
		return TO(f(x))
	}
}

// CastInvokeResult2 is like CastInvokeResult for binary functions.
func CastInvokeResult2[TO, S1, S2, U Number](f func(S1, S2) U) func(S1, S2) TO {
	return func(x S1, y S2) TO {
		return TO(f(x, y))
	}
}

func identity[T any](x T) T {
	return x
}

func add[T Number](x, y T) T {
	return x + y
}

func sub[T Number](x, y T) T {
	return x - y
}

func mul[T Number](x, y T) T {
	return x * y
}
