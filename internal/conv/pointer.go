package conv

// Pointer returns the address of a copy of v, handy for optional schema and
// config fields.
func Pointer[T any](v T) *T {
	return &v
}

// Dereference returns *ptr, or the zero value when ptr is nil.
func Dereference[T any](ptr *T) T {
	return ValueOr(ptr, *new(T))
}

// ValueOr returns *ptr, or fallback when ptr is nil.
func ValueOr[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
