package descriptor

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"go.yaml.in/yaml/v3"
)

// yamlBlock matches the first fenced yaml/yml block. The closing fence must
// start a line, so backticks inside a value do not end the block. The body
// group is optional and lazy so an empty block closes on its own fence.
var yamlBlock = regexp.MustCompile("(?s)```ya?ml\\r?\\n(?:(.*?)\\r?\\n)??```")

// Result is the outcome of parsing one agent document.
type Result struct {
	Profile  Profile
	Found    bool    // a metadata block was present
	Warnings []error // non-fatal problems, at most one per document
}

// MalformedError reports a metadata block that could not be read.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed metadata block: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// ExtractBlock returns the trimmed body of the first ```yaml block in doc.
func ExtractBlock(doc []byte) (string, bool) {
	m := yamlBlock.FindSubmatch(doc)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(string(m[1])), true
}

// Parse extracts the agent profile from a markdown document. A missing block
// yields an empty profile with no warnings; a block that is not a valid YAML
// mapping yields an empty profile and exactly one *MalformedError warning.
// Fields whose values do not fit the schema keep their defaults and are
// reported together in a single *MalformedError; the rest are kept.
func Parse(doc []byte) Result {
	block, ok := ExtractBlock(doc)
	if !ok {
		return Result{}
	}
	res := Result{Found: true}
	if block == "" {
		return res
	}

	raw, err := decodeMapping([]byte(block))
	if err != nil {
		res.Warnings = append(res.Warnings, &MalformedError{Err: err})
		return res
	}

	var p Profile
	if err := decodeFields(raw, &p); err != nil {
		res.Warnings = append(res.Warnings, &MalformedError{Err: err})
	}
	res.Profile = p
	return res
}

// ParseWorkflow parses a workflow file. Unlike Parse, a workflow file is
// nothing but YAML, so any problem with it is returned as an error.
func ParseWorkflow(data []byte) (Workflow, error) {
	raw, err := decodeMapping(data)
	if err != nil {
		return Workflow{}, err
	}
	if raw == nil {
		return Workflow{}, errors.New("empty workflow document")
	}

	var w Workflow
	if err := decodeInto(raw, &w); err != nil {
		return Workflow{}, err
	}
	return w, nil
}

// decodeMapping unmarshals YAML that must be a mapping (or empty). Non-string
// keys at any depth are rendered as strings.
func decodeMapping(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	m, ok := stringifyKeys(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a mapping, got %T", raw)
	}
	return m, nil
}

func stringifyKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringifyKeys(val)
		}
		return out
	case map[string]any:
		for k, val := range t {
			t[k] = stringifyKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringifyKeys(val)
		}
		return t
	default:
		return v
	}
}

// decodeFields decodes raw into out one key at a time. A key whose value
// does not fit its field leaves that field untouched; every such failure is
// joined into the returned error.
func decodeFields[T any](raw map[string]any, out *T) error {
	var errs []error
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		field := map[string]any{key: raw[key]}
		var scratch T
		if err := decodeInto(field, &scratch); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := decodeInto(field, out); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// decodeInto maps loosely typed YAML values onto a schema struct.
func decodeInto(raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decoding fields: %w", err)
	}
	return nil
}
