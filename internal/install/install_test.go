package install

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeExecutable(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "cesd-build")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o755))
	return p
}

func TestCheck_Installed(t *testing.T) {
	i := New(t.TempDir(), WithLookPath(func(name string) (string, error) {
		return "/usr/local/bin/" + name, nil
	}))

	st := i.Check()
	assert.True(t, st.Installed)
	assert.Equal(t, "/usr/local/bin/"+i.BinaryName, st.Path)
}

func TestCheck_NotInstalled(t *testing.T) {
	i := New(t.TempDir(), WithLookPath(func(string) (string, error) {
		return "", errors.New("not found")
	}))

	st := i.Check()
	assert.False(t, st.Installed)
	assert.Empty(t, st.Path)
}

func TestInstall_CopiesBinary(t *testing.T) {
	src := fakeExecutable(t, "#!/bin/sh\necho cesd\n")
	dir := filepath.Join(t.TempDir(), "bin")
	i := New(dir, WithExecPath(func() (string, error) { return src, nil }))

	got, err := i.Install()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, i.BinaryName), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho cesd\n", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(got)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp dir should be cleaned up")
}

func TestInstall_OverwritesExisting(t *testing.T) {
	src := fakeExecutable(t, "new")
	dir := t.TempDir()
	i := New(dir, WithExecPath(func() (string, error) { return src, nil }))
	require.NoError(t, os.WriteFile(i.Target(), []byte("old"), 0o755))

	_, err := i.Install()
	require.NoError(t, err)

	data, err := os.ReadFile(i.Target())
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestInstall_SameTarget(t *testing.T) {
	dir := t.TempDir()
	i := New(dir)
	require.NoError(t, os.WriteFile(i.Target(), []byte("bin"), 0o755))
	target, err := filepath.EvalSymlinks(i.Target())
	require.NoError(t, err)
	i.Dir = filepath.Dir(target)
	i.execPath = func() (string, error) { return target, nil }

	_, err = i.Install()
	assert.ErrorIs(t, err, ErrSameTarget)
}

func TestInstall_ExecPathError(t *testing.T) {
	i := New(t.TempDir(), WithExecPath(func() (string, error) {
		return "", errors.New("boom")
	}))

	_, err := i.Install()
	assert.Error(t, err)
}

func TestWriteBinary_ChecksumMismatch(t *testing.T) {
	target := filepath.Join(t.TempDir(), "cesd")

	err := writeBinary([]byte("data"), target, []byte("wrong"))
	assert.ErrorIs(t, err, ErrChecksum)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "target must not exist after failed verify")
}
