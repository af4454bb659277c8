package warp

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	"github.com/lucaschallamel/BMAD-METHOD/internal/branding"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Installer writes the WARP integration under Root on FS.
type Installer struct {
	fs      afero.Fs
	root    string
	version string
}

// New returns an Installer rooted at root. version is the package version
// substituted into generated files.
func New(fs afero.Fs, root, version string) *Installer {
	return &Installer{fs: fs, root: root, version: version}
}

// Root returns the install root.
func (in *Installer) Root() string { return in.root }

// sourcePath joins elem under the BMAD core directory.
func (in *Installer) sourcePath(elem ...string) string {
	return filepath.Join(append([]string{in.root, branding.SourceDir()}, elem...)...)
}

// targetPath joins elem under the WARP directory.
func (in *Installer) targetPath(elem ...string) string {
	return filepath.Join(append([]string{in.root, branding.TargetDir()}, elem...)...)
}

// writeFile writes data to path, creating parent directories.
func (in *Installer) writeFile(path string, data []byte) error {
	if err := in.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(in.fs, path, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeYAML marshals v with two-space indentation and writes it to path.
func (in *Installer) writeYAML(path string, v any) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return in.writeFile(path, buf.Bytes())
}
