package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotman/pkg/errors"
)

// canonicalTempDir returns a t.TempDir() with symlinks resolved, so
// containment checks behave the same on platforms where the temp root
// is itself a symlink.
func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestResolveLexical(t *testing.T) {
	home := "/home/user"

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr errors.ErrorCode
	}{
		{name: "absolute passes through", path: "/home/user/.bashrc", want: "/home/user/.bashrc"},
		{name: "relative joins home", path: ".bashrc", want: "/home/user/.bashrc"},
		{name: "dot segments collapse", path: "/home/user/a/../.vimrc", want: "/home/user/.vimrc"},
		{name: "relative with subdir", path: ".config/nvim/init.lua", want: "/home/user/.config/nvim/init.lua"},
		{name: "empty path", path: "", wantErr: errors.ErrInvalidInput},
		{name: "null byte", path: "/home/user/\x00x", wantErr: errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLexical(tt.path, home)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveInHome(t *testing.T) {
	home := canonicalTempDir(t)
	outside := canonicalTempDir(t)

	inHome := filepath.Join(home, ".bashrc")
	require.NoError(t, os.WriteFile(inHome, []byte("export PATH\n"), 0644))

	escapeTarget := filepath.Join(outside, "secret.conf")
	require.NoError(t, os.WriteFile(escapeTarget, []byte("secret\n"), 0644))
	escapeLink := filepath.Join(home, ".escape")
	require.NoError(t, os.Symlink(escapeTarget, escapeLink))

	t.Run("file in home resolves", func(t *testing.T) {
		got, err := ResolveInHome(inHome, home)
		require.NoError(t, err)
		assert.Equal(t, inHome, got)
	})

	t.Run("home itself is rejected", func(t *testing.T) {
		_, err := ResolveInHome(home, home)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotInHome))
	})

	t.Run("file outside home is rejected", func(t *testing.T) {
		_, err := ResolveInHome(escapeTarget, home)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotInHome))
	})

	t.Run("symlink escape is rejected", func(t *testing.T) {
		_, err := ResolveInHome(escapeLink, home)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotInHome))
	})

	t.Run("missing target fails", func(t *testing.T) {
		_, err := ResolveInHome(filepath.Join(home, ".does-not-exist"), home)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})
}

func TestResolveInHomeNoFollow(t *testing.T) {
	home := canonicalTempDir(t)
	outside := canonicalTempDir(t)

	escapeTarget := filepath.Join(outside, "escape.conf")
	require.NoError(t, os.WriteFile(escapeTarget, []byte("x\n"), 0644))
	escapeLink := filepath.Join(home, ".escape")
	require.NoError(t, os.Symlink(escapeTarget, escapeLink))

	t.Run("final component link is kept literal", func(t *testing.T) {
		got, err := ResolveInHomeNoFollow(escapeLink, home)
		require.NoError(t, err)
		assert.Equal(t, escapeLink, got)
	})

	t.Run("deleted file still resolves", func(t *testing.T) {
		got, err := ResolveInHomeNoFollow(filepath.Join(home, ".gone"), home)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".gone"), got)
	})

	t.Run("parent symlink is still resolved", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(home, "real"), 0755))
		linkedDir := filepath.Join(home, "linked")
		require.NoError(t, os.Symlink(filepath.Join(home, "real"), linkedDir))

		got, err := ResolveInHomeNoFollow(filepath.Join(linkedDir, "app.conf"), home)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "real", "app.conf"), got)
	})

	t.Run("path outside home is rejected", func(t *testing.T) {
		_, err := ResolveInHomeNoFollow(escapeTarget, home)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotInHome))
	})

	t.Run("home itself is rejected", func(t *testing.T) {
		_, err := ResolveInHomeNoFollow(home, home)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotInHome))
	})

	t.Run("missing parent fails", func(t *testing.T) {
		_, err := ResolveInHomeNoFollow(filepath.Join(home, "no-such-dir", "f"), home)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})
}

func TestIsWithin(t *testing.T) {
	assert.True(t, IsWithin("/home/user", "/home/user/.bashrc"))
	assert.False(t, IsWithin("/home/user", "/home/user"))
	assert.False(t, IsWithin("/home/user", "/home/username/.bashrc"))
	assert.False(t, IsWithin("/home/user", "/etc/hosts"))
}

func TestRepoPath(t *testing.T) {
	tests := []struct {
		name     string
		original string
		want     string
		wantErr  bool
	}{
		{
			name:     "top level dotfile",
			original: "/home/user/.bashrc",
			want:     "/repo/files/.bashrc",
		},
		{
			name:     "nested config mirrors structure",
			original: "/home/user/a/b.conf",
			want:     "/repo/files/a/b.conf",
		},
		{
			name:     "home itself is degenerate",
			original: "/home/user",
			wantErr:  true,
		},
		{
			name:     "outside home is degenerate",
			original: "/etc/hosts",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RepoPath("/repo/files", "/home/user", tt.original)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidRel))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
