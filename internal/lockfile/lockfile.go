package lockfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/logger"
)

// Lock is a held single-instance pid lock
type Lock struct {
	path string
}

// Acquire takes the pid lock at path. If another live process holds it,
// domain.ErrAlreadyRunning is returned. A lock left behind by a dead
// process is reclaimed.
func Acquire(path string) (*Lock, error) {
	if _, statErr := os.Stat(path); statErr == nil {
		pid, ok := readPID(path)
		if ok && processAlive(pid) {
			return nil, fmt.Errorf("%w: pid %d", domain.ErrAlreadyRunning, pid)
		}
		// Dead holder or unparsable content, either way the lock is stale
		logger.Warn("Reclaiming stale lock file",
			zap.String("path", path),
			zap.Int("pid", pid),
		)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lock file: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: lock file reappeared", domain.ErrAlreadyRunning)
		}
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}

	_, writeErr := fmt.Fprintf(f, "%d\n", os.Getpid())
	closeErr := f.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write lock file: %w", errors.Join(writeErr, closeErr))
	}

	return &Lock{path: path}, nil
}

// Release removes the lock file
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// readPID reads the pid recorded in an existing lock file. A missing or
// unparsable file reads as no holder.
func readPID(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// processAlive reports whether a process with the given pid exists
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = process.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}
