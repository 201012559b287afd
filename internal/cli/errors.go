package cli

import "errors"

var (
	errNotInteractive = errors.New("this command needs an interactive terminal")
	errEmptyValue     = errors.New("value cannot be empty")
)

// reportedError marks an error the command already showed the user. The
// process still exits non-zero, but the caller should not print it again.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already written to the terminal.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
