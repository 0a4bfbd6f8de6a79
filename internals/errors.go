package internals

import (
	"errors"
	"fmt"
)

// Process-wide exit codes. Mismatches and qualifying missing files map to
// ExitFailure, flag and usage problems to ExitUsage.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Error classes of the resolver and the codec. Callers match them with
// errors.Is; the concrete message carries the offending value.
var (
	ErrConfiguration       = errors.New(`configuration error`)
	ErrAlgorithmUnknown    = errors.New(`unknown hash algorithm`)
	ErrParameterOutOfRange = errors.New(`parameter out of range`)
	ErrMalformedRecord     = errors.New(`malformed checksum record`)
)

func configurationError(format string, args ...interface{}) error {
	return fmt.Errorf(`%w: %s`, ErrConfiguration, fmt.Sprintf(format, args...))
}

func algorithmUnknownError(name string) error {
	return fmt.Errorf(`%w '%s'`, ErrAlgorithmUnknown, name)
}

func parameterOutOfRangeError(format string, args ...interface{}) error {
	return fmt.Errorf(`%w: %s`, ErrParameterOutOfRange, fmt.Sprintf(format, args...))
}

func malformedRecordError(lineno int, line string) error {
	return fmt.Errorf(`%w in line %d: '%s'`, ErrMalformedRecord, lineno, line)
}
