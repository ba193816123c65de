package finder

// EmptyInputError is returned when a search is started with a zero-length
// sequence. There is no range to enumerate over, so this is reported to the
// caller rather than treated as an empty success.
type EmptyInputError struct{}

// NewEmptyInputError creates a new EmptyInputError.
func NewEmptyInputError() error {
	return &EmptyInputError{}
}

func (e EmptyInputError) Error() string {
	return "cannot search an empty sequence"
}
