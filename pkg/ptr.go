package pkg

// Ptr returns a pointer to v. Handy for optional config fields in tests.
func Ptr[T any](v T) *T {
	return &v
}
