package kernel

// Error describes a kernel error. During early boot there is no working Go
// allocator, so errors.New and fmt.Errorf are off limits; every error the
// kernel can report is instead a package-level *Error value constructed at
// compile time. Driver init and similar fallible paths return these
// pointers directly.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message. Fixed for compile-time errors; the runtime panic
	// path rewrites it in place on its singleton value.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
