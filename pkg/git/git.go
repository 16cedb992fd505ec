// Package git is the narrow gateway to the external version-control
// binary. dotman never parses git's output; a non-zero exit is
// surfaced as a single opaque sync failure.
package git

import (
	"os/exec"
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
)

// Client is the contract the tracking engine depends on. One method
// per delegated command; implementations run against a fixed
// repository working directory.
type Client interface {
	// Init initializes a repository in the working directory
	Init() error

	// SetDefaultBranch renames the current branch
	SetDefaultBranch(name string) error

	// AddRemote registers a remote under the given name
	AddRemote(name, url string) error

	// StageAll stages every change in the working directory
	StageAll() error

	// Commit records staged changes with the given message
	Commit(message string) error

	// Push publishes the branch, first trying to set the upstream and
	// falling back to a plain push
	Push(remote, branch string) error

	// Pull fetches and integrates from the configured upstream
	Pull() error
}

// ShellClient implements Client by shelling out to the git command
type ShellClient struct {
	dir string
	bin string
}

// NewShellClient creates a git client that runs bin with dir as its
// working directory. An empty bin defaults to "git".
func NewShellClient(dir, bin string) *ShellClient {
	if bin == "" {
		bin = "git"
	}
	return &ShellClient{dir: dir, bin: bin}
}

func (c *ShellClient) run(args ...string) error {
	logger := logging.GetLogger("git")
	logger.Debug().Str("bin", c.bin).Strs("args", args).Str("dir", c.dir).Msg("Running VCS command")

	cmd := exec.Command(c.bin, args...)
	cmd.Dir = c.dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, errors.ErrSyncFailed, "%s %s failed", c.bin, strings.Join(args, " ")).
			WithDetail("output", strings.TrimSpace(string(output)))
	}
	return nil
}

func (c *ShellClient) Init() error {
	return c.run("init")
}

func (c *ShellClient) SetDefaultBranch(name string) error {
	return c.run("branch", "-M", name)
}

func (c *ShellClient) AddRemote(name, url string) error {
	return c.run("remote", "add", name, url)
}

func (c *ShellClient) StageAll() error {
	return c.run("add", "-A")
}

func (c *ShellClient) Commit(message string) error {
	return c.run("commit", "-m", message)
}

// Push tries an upstream-setting push first so a fresh repository
// works on its first push, then falls back to a plain push.
func (c *ShellClient) Push(remote, branch string) error {
	if err := c.run("push", "-u", remote, branch); err == nil {
		return nil
	}
	return c.run("push")
}

func (c *ShellClient) Pull() error {
	return c.run("pull")
}
