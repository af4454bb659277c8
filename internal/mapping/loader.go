package mapping

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

//go:embed warp-integration.yaml
var defaultRegistry []byte

// EmbeddedSource names the built-in registry in errors and Source().
const EmbeddedSource = "<embedded>"

// LoadError reports a registry that could not be read, parsed, or validated.
// It is fatal for the run.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading registry %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader reads the registry once. The zero value is not usable; use NewLoader.
type Loader struct {
	fs   afero.Fs
	path string

	mu       sync.Mutex
	registry *Registry
}

// NewLoader returns a Loader for the registry at path on fs. An empty path
// selects the registry embedded in the binary.
func NewLoader(fs afero.Fs, path string) *Loader {
	return &Loader{fs: fs, path: path}
}

// Load reads and validates the registry on the first successful call and
// returns the same *Registry on every later call without reading again.
// Failed loads are not cached.
func (l *Loader) Load() (*Registry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.registry != nil {
		return l.registry, nil
	}

	source := l.path
	data := defaultRegistry
	if source == "" {
		source = EmbeddedSource
	} else {
		b, err := afero.ReadFile(l.fs, l.path)
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}
		data = b
	}

	reg, err := parse(data)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	reg.source = source
	l.registry = reg
	return reg, nil
}

// parse validates data against the registry schema and decodes it.
func parse(data []byte) (*Registry, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("invalid registry: %s", strings.Join(msgs, "; "))
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding registry: %w", err)
	}
	if doc.Integration.AgentMapping.Rules == nil {
		doc.Integration.AgentMapping.Rules = map[string]Rule{}
	}
	return &doc.Integration, nil
}
