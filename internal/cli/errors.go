package cli

import "errors"

// ErrUsage marks operator mistakes (bad flags, missing input, unknown
// format) so main can distinguish them from runtime failures.
var ErrUsage = errors.New("cli usage error")

type usageError struct {
	msg string
}

func newUsageError(msg string) error {
	return usageError{msg: msg}
}

func (e usageError) Error() string {
	return e.msg
}

func (e usageError) Is(target error) bool {
	return target == ErrUsage
}
