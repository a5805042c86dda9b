//go:build !unix

package hostsfile

import (
	"os"
	"time"
)

// Advisory locking is only implemented on unix; elsewhere the file is opened unlocked.
func lockFile(_ *os.File, _ time.Duration) error {
	return nil
}

func unlockFile(_ *os.File) error {
	return nil
}
