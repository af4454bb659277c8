package warp

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// agentDirs returns the candidate agent directories in search order.
func (in *Installer) agentDirs() []string {
	return []string{
		in.sourcePath("agents"),
		filepath.Join(in.root, "agents"),
	}
}

// FindAgentPath returns the first existing document for id, searching the
// BMAD core agents directory before the root agents directory.
func (in *Installer) FindAgentPath(id string) (string, bool) {
	for _, dir := range in.agentDirs() {
		path := filepath.Join(dir, id+".md")
		if ok, _ := afero.Exists(in.fs, path); ok {
			return path, true
		}
	}
	return "", false
}

// AgentIDs lists the agents of the first agent directory that exists.
// Ids are file names without the .md extension, sorted and unique.
func (in *Installer) AgentIDs() ([]string, error) {
	for _, dir := range in.agentDirs() {
		ok, err := afero.DirExists(in.fs, dir)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", dir, err)
		}
		if !ok {
			continue
		}
		files, err := in.glob(dir, "*.md")
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(files))
		for _, f := range files {
			ids = append(ids, strings.TrimSuffix(f, ".md"))
		}
		return slices.Compact(ids), nil
	}
	return nil, nil
}

// glob returns the sorted names of files in dir matching pattern.
func (in *Installer) glob(dir, pattern string) ([]string, error) {
	fsys := afero.NewIOFS(afero.NewBasePathFs(in.fs, dir))
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing %s in %s: %w", pattern, dir, err)
	}
	slices.Sort(matches)
	return matches, nil
}
