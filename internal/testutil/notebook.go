// Package testutil provides reusable helpers for jot tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNotebook is a temporary notes directory populated with fixture files.
type TestNotebook struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestNotebook creates a notes-directory builder. Call Build to create
// the actual directory.
func NewTestNotebook(t *testing.T) *TestNotebook {
	t.Helper()
	return &TestNotebook{t: t, files: make(map[string]string)}
}

// WithFile adds a file, relative to the notebook root.
func (n *TestNotebook) WithFile(path, content string) *TestNotebook {
	n.files[path] = content
	return n
}

// WithNote adds a markdown note with a minimal header.
func (n *TestNotebook) WithNote(name, title, body string) *TestNotebook {
	content := "---\n" +
		"created: 2024-01-01T00:00:00Z\n" +
		"modified: 2024-01-01T00:00:00Z\n" +
		"title: " + title + "\n" +
		"---\n\n" + body + "\n"
	return n.WithFile(name, content)
}

// Build creates the directory and all configured files.
func (n *TestNotebook) Build() *TestNotebook {
	n.t.Helper()
	n.Path = n.t.TempDir()
	for path, content := range n.files {
		n.writeFile(path, content)
	}
	return n
}

func (n *TestNotebook) writeFile(relPath, content string) {
	n.t.Helper()
	fullPath := filepath.Join(n.Path, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		n.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		n.t.Fatalf("failed to write file %s: %v", relPath, err)
	}
}

// ReadFile reads a file from the notebook.
func (n *TestNotebook) ReadFile(relPath string) string {
	n.t.Helper()
	content, err := os.ReadFile(filepath.Join(n.Path, relPath))
	if err != nil {
		n.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists reports whether a file exists in the notebook.
func (n *TestNotebook) FileExists(relPath string) bool {
	n.t.Helper()
	_, err := os.Stat(filepath.Join(n.Path, relPath))
	return err == nil
}

// AssertFileExists fails the test if the file does not exist.
func (n *TestNotebook) AssertFileExists(relPath string) {
	n.t.Helper()
	if !n.FileExists(relPath) {
		n.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (n *TestNotebook) AssertFileNotExists(relPath string) {
	n.t.Helper()
	if n.FileExists(relPath) {
		n.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (n *TestNotebook) AssertFileContains(relPath, substr string) {
	n.t.Helper()
	content := n.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		n.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileNotContains fails the test if the file contains the substring.
func (n *TestNotebook) AssertFileNotContains(relPath, substr string) {
	n.t.Helper()
	content := n.ReadFile(relPath)
	if strings.Contains(content, substr) {
		n.t.Errorf("expected file %s to not contain %q, got:\n%s", relPath, substr, content)
	}
}

// StubExecutable writes an executable shell script named name into its own
// temp directory and returns the script's path. Useful for standing in for
// the editor or git.
func StubExecutable(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("failed to write stub %s: %v", name, err)
	}
	return path
}
