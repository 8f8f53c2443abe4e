package lock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/bashhack/gitpix/internal/errors"
)

// Locker serializes commit runs against one repository. The lock is an
// exclusive flock on a per-repository file holding the owner's PID.
type Locker struct {
	lockFile string
	fd       *os.File
	pid      int

	// previousPID is the PID left behind by an owner that exited without
	// releasing, or 0.
	previousPID int
}

// New creates a Locker for repoPath with its lock file in the system temp dir.
func New(repoPath string) (*Locker, error) {
	return NewInDir(os.TempDir(), repoPath)
}

// NewInDir creates a Locker whose lock file lives in dir.
func NewInDir(dir, repoPath string) (*Locker, error) {
	if runtime.GOOS == "windows" {
		return nil, errors.NewLockError("", 0,
			errors.Wrap(errors.ErrLockAcquisitionFailure,
				"gitpix only supports Unix-like operating systems (Linux, macOS, BSD)"))
	}

	return &Locker{
		lockFile: filepath.Join(dir, FileName(repoPath)),
		pid:      os.Getpid(),
	}, nil
}

// FileName is the lock file name for repoPath: gitpix-<first 16 hex of sha256>.lock
func FileName(repoPath string) string {
	sum := sha256.Sum256([]byte(repoPath))
	return fmt.Sprintf("gitpix-%x.lock", sum[:8])
}

// Path returns the lock file path.
func (l *Locker) Path() string {
	return l.lockFile
}

// PreviousPID reports the PID found in a stale lock file reclaimed by Acquire.
func (l *Locker) PreviousPID() int {
	return l.previousPID
}

// Acquire takes the lock without blocking. If another live process holds it
// the returned LockError wraps ErrAlreadyRunning.
func (l *Locker) Acquire() error {
	if l.fd != nil {
		return nil
	}

	fd, err := os.OpenFile(l.lockFile, os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(err, "failed to open lock file"))
	}

	if err := syscall.Flock(int(fd.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = fd.Close()

		// EWOULDBLOCK and EAGAIN are distinct on some older systems.
		if errors.Is(err, syscall.EWOULDBLOCK) || errors.Is(err, syscall.EAGAIN) {
			owner, _ := readPID(l.lockFile)
			return errors.NewLockError(l.lockFile, owner, errors.ErrAlreadyRunning)
		}
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(err, "failed to acquire lock"))
	}

	// Nobody holds the flock, so any PID still in the file is stale.
	if owner, err := readPID(l.lockFile); err == nil && owner != l.pid && !isProcessRunning(owner) {
		l.previousPID = owner
	}

	if err := writePID(fd, l.pid); err != nil {
		_ = syscall.Flock(int(fd.Fd()), syscall.LOCK_UN)
		_ = fd.Close()
		return errors.NewLockError(l.lockFile, l.pid, err)
	}

	l.fd = fd
	return nil
}

// Release unlocks and removes the lock file. Calling it without holding the
// lock is a no-op.
func (l *Locker) Release() error {
	if l.fd == nil {
		return nil
	}

	var err error
	if flockErr := syscall.Flock(int(l.fd.Fd()), syscall.LOCK_UN); flockErr != nil {
		err = errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(flockErr, "failed to release lock"))
	}

	// Remove before closing so a waiting process never flocks an unlinked file.
	if removeErr := os.Remove(l.lockFile); removeErr != nil && !os.IsNotExist(removeErr) && err == nil {
		err = errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(removeErr, "failed to remove lock file"))
	}

	if closeErr := l.fd.Close(); closeErr != nil && err == nil {
		err = errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(closeErr, "failed to close lock file"))
	}

	l.fd = nil
	return err
}

func writePID(fd *os.File, pid int) error {
	if err := fd.Truncate(0); err != nil {
		return errors.Wrap(err, "failed to truncate lock file")
	}
	if _, err := fd.WriteAt([]byte(strconv.Itoa(pid)), 0); err != nil {
		return errors.Wrap(err, "failed to write PID to lock file")
	}
	return nil
}

func readPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read lock file")
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, errors.Wrap(err, "invalid PID in lock file")
	}
	return pid, nil
}

// isProcessRunning checks if a process exists using signal 0
func isProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
