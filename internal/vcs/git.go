// Package vcs shells out to git to record note history. Every operation is a
// blocking subprocess run against the notes directory; a non-zero exit is a
// fatal failure for the current invocation.
package vcs

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// ExitError reports a git subcommand that exited non-zero, carrying its
// combined output for diagnosis.
type ExitError struct {
	Args   []string
	Output string
	Err    error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("git %s failed: %v", strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *ExitError) Unwrap() error { return e.Err }

// Git runs git commands in a fixed working directory.
type Git struct {
	Dir    string
	Logger *slog.Logger

	// bin overrides the git executable, for tests.
	bin string
}

// New creates a git adapter for the notes directory.
func New(dir string, logger *slog.Logger) *Git {
	if logger == nil {
		logger = slog.Default()
	}
	return &Git{Dir: dir, Logger: logger, bin: "git"}
}

func (g *Git) run(args ...string) (string, error) {
	g.Logger.Debug("executing git", "args", args, "dir", g.Dir)

	cmd := exec.Command(g.bin, args...)
	cmd.Dir = g.Dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", &ExitError{Args: args, Output: string(out), Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

// AddCommit stages rel and commits it with msg (two git calls, matching the
// add-then-commit flow for brand-new notes).
func (g *Git) AddCommit(rel, msg string) error {
	if _, err := g.run("add", rel); err != nil {
		return err
	}
	return g.Commit(rel, msg)
}

// Commit records changes to an already-tracked note.
func (g *Git) Commit(rel, msg string) error {
	_, err := g.run("commit", "-m", msg, "--", rel)
	return err
}

// RemoveCommit removes rel from the working tree and index, then commits.
func (g *Git) RemoveCommit(rel, msg string) error {
	if _, err := g.run("rm", "-f", rel); err != nil {
		return err
	}
	return g.Commit(rel, msg)
}

// Push publishes local history to the configured remote.
func (g *Git) Push() error {
	_, err := g.run("push")
	return err
}

// Pull fetches and integrates remote history.
func (g *Git) Pull() error {
	_, err := g.run("pull")
	return err
}

// Status returns the porcelain status of the notes directory.
func (g *Git) Status() (string, error) {
	return g.run("status", "--porcelain")
}

// Diff returns pending changes against HEAD.
func (g *Git) Diff() (string, error) {
	return g.run("diff")
}
