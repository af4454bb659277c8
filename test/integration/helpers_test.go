//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, holds ~/.bmad-warp/config.yaml
	ProjectDir string // A mock BMAD project
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so no user settings leak into the run.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// setupProject writes a BMAD project with three agents and two workflows
// under agentsDir (relative to the project root).
func setupProject(t *testing.T, projectDir, agentsDir string) {
	t.Helper()

	agents := filepath.Join(projectDir, agentsDir)
	writeFile(t, filepath.Join(agents, "dev.md"), "# dev\n\n"+"```yaml\n"+`agentName: James
title: Full Stack Developer
icon: "💻"
whenToUse: Code implementation, debugging, refactoring, and development best practices
roleDefinition: Expert senior engineer focused on development and testing
keywords:
  - golang
`+"```\n")
	writeFile(t, filepath.Join(agents, "architect.md"), "# architect\n\n"+"```yml\n"+`agentName: Winston
whenToUse: System design and architecture documents
`+"```\n")
	// No metadata block at all.
	writeFile(t, filepath.Join(agents, "qa.md"), "# QA\n\nReviews stories.\n")

	workflows := filepath.Join(projectDir, ".bmad-core", "workflows")
	writeFile(t, filepath.Join(workflows, "greenfield-fullstack.yaml"), `id: greenfield-fullstack
name: Greenfield Full-Stack
type: greenfield
description: Build a full-stack application from concept to development
tags: [fullstack, greenfield]
stages:
  - analyst
  - pm
  - architect
primaryAgent: pm
`)
	writeFile(t, filepath.Join(workflows, "brownfield.yaml"), "name: Brownfield\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
