package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/footprint-tools/argp/internal/paths"
)

// ErrLockTimeout is returned when another argp process keeps the config
// locked for too long.
var ErrLockTimeout = errors.New("config: lock timeout")

// fileLock is an exclusive lock held by creating a file with O_EXCL. The
// file holds the owner's PID. A lock file older than stale is assumed to be
// left behind by a crashed process and is taken over.
type fileLock struct {
	path    string
	timeout time.Duration
	stale   time.Duration
	poll    time.Duration

	f *os.File
}

func newFileLock(path string) *fileLock {
	return &fileLock{
		path:    path,
		timeout: 5 * time.Second,
		stale:   30 * time.Second,
		poll:    50 * time.Millisecond,
	}
}

// WithLock runs fn while holding the config lock.
func WithLock(fn func() error) error {
	lockPath, err := paths.LockFilePath()
	if err != nil {
		return err
	}

	l := newFileLock(lockPath)
	if err := l.acquire(); err != nil {
		return err
	}
	defer l.release()

	return fn()
}

func (l *fileLock) acquire() error {
	deadline := time.Now().Add(l.timeout)

	for {
		if l.tryCreate() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s", ErrLockTimeout, l.path)
		}
		time.Sleep(l.poll)
	}
}

func (l *fileLock) tryCreate() bool {
	if info, err := os.Stat(l.path); err == nil && time.Since(info.ModTime()) > l.stale {
		_ = os.Remove(l.path)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return false
	}
	_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
	l.f = f
	return true
}

func (l *fileLock) release() {
	if l.f != nil {
		_ = l.f.Close()
		l.f = nil
	}
	_ = os.Remove(l.path)
}
