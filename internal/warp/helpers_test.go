package warp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/lucaschallamel/BMAD-METHOD/internal/logger"
	"github.com/lucaschallamel/BMAD-METHOD/internal/mapping"
)

const testRoot = "/project"

// recordingLogger keeps every message by level.
type recordingLogger struct {
	mu    sync.Mutex
	warns []string
	infos []string
}

func (r *recordingLogger) record(dst *[]string, msg string, keyvals []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*dst = append(*dst, strings.TrimSpace(msg+" "+fmt.Sprint(keyvals...)))
}

func (r *recordingLogger) Debug(string, ...any)             {}
func (r *recordingLogger) Info(msg string, keyvals ...any)  { r.record(&r.infos, msg, keyvals) }
func (r *recordingLogger) Warn(msg string, keyvals ...any)  { r.record(&r.warns, msg, keyvals) }
func (r *recordingLogger) Error(msg string, keyvals ...any) { r.record(&r.warns, msg, keyvals) }
func (r *recordingLogger) With(...any) logger.Logger        { return r }

func newTestContext() (context.Context, *recordingLogger) {
	rec := &recordingLogger{}
	return logger.ContextWithLogger(context.Background(), rec), rec
}

func writeTestFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func embeddedRegistry(t *testing.T) *mapping.Registry {
	t.Helper()
	reg, err := mapping.NewLoader(afero.NewMemMapFs(), "").Load()
	if err != nil {
		t.Fatalf("loading embedded registry: %v", err)
	}
	return reg
}

const devAgent = "# dev\n\n```yaml\nagentName: James\ntitle: Developer\nwhenToUse: Code implementation, debugging\nroleDefinition: development lead\n```\n"

// failingFs fails every write to paths ending in failSuffix.
type failingFs struct {
	afero.Fs
	failSuffix string
}

func (f *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 && strings.HasSuffix(name, f.failSuffix) {
		return nil, fmt.Errorf("simulated write failure for %s", name)
	}
	return f.Fs.OpenFile(name, flag, perm)
}
