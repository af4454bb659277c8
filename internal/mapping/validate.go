package mapping

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/registry.schema.json
var schemaBytes []byte

const schemaURL = "registry.schema.json"

var messages = message.NewPrinter(language.English)

// rulesPath is the key path of the per-agent mapping rules.
var rulesPath = []string{"warp-integration", "agent-mapping", "mapping-rules"}

// registrySchema compiles the embedded schema on first use.
var registrySchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("reading registry schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("registering registry schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling registry schema: %w", err)
	}
	return s, nil
})

// ValidationResult is the outcome of checking a registry document.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation in a registry document.
type ValidationIssue struct {
	// Location is the dotted key path of the offending value, e.g.
	// "warp-integration.installation.directories.0.path".
	Location string
	// Agent and Field are set when the value lives inside a mapping rule:
	// Agent is the rule id and Field the path within the rule.
	Agent   string
	Field   string
	Message string
}

func (i ValidationIssue) String() string {
	switch {
	case i.Agent != "" && i.Field != "":
		return fmt.Sprintf("mapping rule %q: %s: %s", i.Agent, i.Field, i.Message)
	case i.Agent != "":
		return fmt.Sprintf("mapping rule %q: %s", i.Agent, i.Message)
	case i.Location != "":
		return i.Location + ": " + i.Message
	default:
		return i.Message
	}
}

// Validate checks registry YAML against the registry schema. Violations are
// reported in the result; the error is for YAML that cannot be read at all.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := registrySchema()
	if err != nil {
		return nil, err
	}
	inst, err := toInstance(data)
	if err != nil {
		return nil, err
	}

	var ve *jsonschema.ValidationError
	switch err := schema.Validate(inst); {
	case err == nil:
		return &ValidationResult{Valid: true}, nil
	case errors.As(err, &ve):
		return &ValidationResult{Issues: issuesOf(ve)}, nil
	default:
		return nil, fmt.Errorf("validating registry: %w", err)
	}
}

// toInstance converts YAML into the JSON value model the validator walks.
func toInstance(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("registry is not representable as JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(js))
}

// issuesOf flattens the error tree to its leaves in document order. Only
// leaves name a concrete failing keyword; repeated leaves collapse.
func issuesOf(root *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	seen := map[ValidationIssue]bool{}

	stack := []*jsonschema.ValidationError{root}
	for len(stack) > 0 {
		ve := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(ve.Causes) > 0 {
			for i := len(ve.Causes) - 1; i >= 0; i-- {
				stack = append(stack, ve.Causes[i])
			}
			continue
		}
		issue := newIssue(ve)
		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}

	if len(issues) == 0 {
		return []ValidationIssue{{Message: root.Error()}}
	}
	return issues
}

func newIssue(ve *jsonschema.ValidationError) ValidationIssue {
	loc := ve.InstanceLocation
	issue := ValidationIssue{
		Location: strings.Join(loc, "."),
		Message:  ve.Error(),
	}
	if ve.ErrorKind != nil {
		issue.Message = ve.ErrorKind.LocalizedString(messages)
	}
	if len(loc) > len(rulesPath) && slices.Equal(loc[:len(rulesPath)], rulesPath) {
		issue.Agent = loc[len(rulesPath)]
		issue.Field = strings.Join(loc[len(rulesPath)+1:], ".")
	}
	return issue
}
