package hostsfile

import (
	"errors"
	"fmt"
)

var (
	// ErrHostsFile is matched by every file-level failure.
	ErrHostsFile = errors.New("hosts file error")

	// ErrEmpty is returned when the backing store holds no data.
	ErrEmpty = errors.New("hosts file is empty")

	// ErrLocked is returned when an exclusive lock could not be acquired in time.
	ErrLocked = errors.New("hosts file is locked by another holder")

	// ErrClosed is returned when reading from a closed source.
	ErrClosed = errors.New("hosts file is closed")
)

// Error describes a file-level failure on a hosts file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("hosts file: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("hosts file %s: %s: %v", e.Path, e.Op, e.Err)
}

// Unwrap exposes both ErrHostsFile and the underlying cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	return []error{ErrHostsFile, e.Err}
}
