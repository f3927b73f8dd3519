package exit

import (
	"fmt"
	"io"
)

const (
	CodeSuccess = 0
	CodeFailure = 1
)

// Result is how the command line ends: a message for the user and the
// process exit code.
type Result struct {
	ExitCode int
	Message  string
}

// Print writes the message to stdout on success and to stderr otherwise.
func (r *Result) Print(stdout, stderr io.Writer) int {
	out := stdout
	if r.ExitCode != CodeSuccess {
		out = stderr
	}
	fmt.Fprint(out, r.Message)
	return r.ExitCode
}

func Success(message string) *Result {
	return &Result{
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

func Error(message string) *Result {
	return &Result{
		ExitCode: CodeFailure,
		Message:  message,
	}
}

func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}
