// Package patch helps apply partial updates, where a nil pointer means "leave unchanged".
package patch

// Coalesce returns *ptr, or fallback when the field was omitted.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Parse converts an optional raw field. An omitted field stays nil and parse is not called.
func Parse[T, U any](ptr *T, parse func(T) (U, error)) (*U, error) {
	if ptr == nil {
		return nil, nil
	}
	v, err := parse(*ptr)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
