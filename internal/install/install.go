package install

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// DefaultBinaryName is the command name users type to start the app.
const DefaultBinaryName = "cesd"

var (
	ErrChecksum   = errors.New("checksum verification failed")
	ErrSameTarget = errors.New("already running from the install location")
)

// Installer copies the running executable onto the user's PATH.
type Installer struct {
	Dir        string
	BinaryName string

	execPath func() (string, error)
	lookPath func(string) (string, error)
}

// Option configures an Installer.
type Option func(*Installer)

// WithExecPath overrides how the running executable is located.
func WithExecPath(fn func() (string, error)) Option {
	return func(i *Installer) { i.execPath = fn }
}

// WithLookPath overrides PATH resolution.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(i *Installer) { i.lookPath = fn }
}

// New creates an Installer targeting dir.
func New(dir string, opts ...Option) *Installer {
	name := DefaultBinaryName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	i := &Installer{
		Dir:        dir,
		BinaryName: name,
		execPath:   os.Executable,
		lookPath:   exec.LookPath,
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

// Status is the result of Check.
type Status struct {
	Installed bool
	Path      string // resolved PATH entry when Installed
}

// Check reports whether the binary name already resolves on PATH.
func (i *Installer) Check() Status {
	p, err := i.lookPath(i.BinaryName)
	if err != nil {
		return Status{}
	}
	return Status{Installed: true, Path: p}
}

// Target returns the path Install writes to.
func (i *Installer) Target() string {
	return filepath.Join(i.Dir, i.BinaryName)
}

// Install copies the running executable into Dir and returns the new path.
func (i *Installer) Install() (string, error) {
	src, err := i.execPath()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(src); err == nil {
		src = resolved
	}

	target := i.Target()
	if abs, err := filepath.Abs(target); err == nil && abs == src {
		return "", ErrSameTarget
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read executable: %w", err)
	}

	if err := os.MkdirAll(i.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create install dir: %w", err)
	}

	sum := sha256.Sum256(data)
	if err := writeBinary(data, target, sum[:]); err != nil {
		return "", err
	}
	return target, nil
}

// writeBinary writes data next to target, verifies it, then renames it into
// place so a partially written binary is never visible under target.
func writeBinary(data []byte, target string, expectedHash []byte) error {
	tmpDir, err := os.MkdirTemp(filepath.Dir(target), ".cesd-install-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	tmpFile := filepath.Join(tmpDir, filepath.Base(target))
	f, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	written, err := os.ReadFile(tmpFile)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	writtenHash := sha256.Sum256(written)
	if !bytes.Equal(writtenHash[:], expectedHash) {
		return ErrChecksum
	}

	if err := os.Chmod(tmpFile, 0o755); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpFile, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
