package helpers

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"jsonstore/src/settings"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filename string, logger *zap.SugaredLogger) bool {
	args := settings.GetSettings()

	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			if logger != nil && args.Debug && args.Verbose {
				logger.Infof("File does not exist: %s", filename)
			}
			return false
		}

		if logger != nil {
			logger.Infof("Error checking file %s for existence: %s", filename, err)
		}
		return false
	}

	return !info.IsDir()
}

// LockFile takes an exclusive flock on lockPath, creating the file if
// needed, and blocks until the lock is held. The returned function
// releases the lock and closes the file.
func LockFile(lockPath string) (func(), error) {
	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening lock file %s: %w", lockPath, err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX); err != nil {
		file.Close()
		return nil, fmt.Errorf("error locking %s: %w", lockPath, err)
	}

	release := func() {
		unix.Flock(int(file.Fd()), unix.LOCK_UN)
		file.Close()
	}
	return release, nil
}
