package descriptor

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

const testdataDir = "testdata"

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(testdataDir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return data
}

func TestExtractBlock(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		want  string
		found bool
	}{
		{"yaml fence", "intro\n```yaml\na: 1\n```\n", "a: 1", true},
		{"yml fence", "```yml\nb: 2\n```", "b: 2", true},
		{"crlf", "```yaml\r\nc: 3\r\n```", "c: 3", true},
		{"first block wins", "```yaml\nfirst: 1\n```\n```yaml\nsecond: 2\n```", "first: 1", true},
		{"no block", "just text", "", false},
		{"other language", "```json\n{}\n```", "", false},
		{"backticks inside a value", "```yaml\ninstructions: \"use ```go blocks```\"\n```\n", "instructions: \"use ```go blocks```\"", true},
		{"empty block", "```yaml\n```\ntext\n```\n", "", true},
		{"fence closes at line start only", "```yaml\na: x```y\nb: 2\n```", "a: x```y\nb: 2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractBlock([]byte(tt.doc))
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("ExtractBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_FullProfile(t *testing.T) {
	res := Parse(readTestdata(t, "dev.md"))
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if !res.Found {
		t.Fatal("Found = false, want true")
	}

	p := res.Profile
	if p.Name != "James" {
		t.Errorf("Name = %q, want %q", p.Name, "James")
	}
	if p.Title != "Full Stack Developer" {
		t.Errorf("Title = %q, want %q", p.Title, "Full Stack Developer")
	}
	if p.Icon != "💻" {
		t.Errorf("Icon = %q, want %q", p.Icon, "💻")
	}
	if len(p.Keywords) != 2 || p.Keywords[0] != "implement" {
		t.Errorf("Keywords = %v, want [implement debug]", p.Keywords)
	}
	if len(p.Tools) != 2 {
		t.Errorf("Tools len = %d, want 2", len(p.Tools))
	}
	if greet, ok := p.Startup["greet"].(bool); !ok || !greet {
		t.Errorf("Startup[greet] = %v, want true", p.Startup["greet"])
	}
	if len(p.Constraints) != 1 {
		t.Errorf("Constraints len = %d, want 1", len(p.Constraints))
	}
}

func TestParse_NoBlockIsSilent(t *testing.T) {
	res := Parse(readTestdata(t, "plain.md"))
	if res.Found {
		t.Error("Found = true, want false")
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", res.Warnings)
	}
	if res.Profile.Name != "" {
		t.Errorf("Name = %q, want empty", res.Profile.Name)
	}
}

func TestParse_MalformedBlockWarnsOnce(t *testing.T) {
	res := Parse(readTestdata(t, "malformed.md"))
	if len(res.Warnings) != 1 {
		t.Fatalf("Warnings len = %d, want 1", len(res.Warnings))
	}
	var malformed *MalformedError
	if !errors.As(res.Warnings[0], &malformed) {
		t.Errorf("warning type = %T, want *MalformedError", res.Warnings[0])
	}
	if res.Profile.Name != "" || res.Profile.Title != "" {
		t.Errorf("Profile = %+v, want empty", res.Profile)
	}
}

func TestParse_NonMappingWarns(t *testing.T) {
	res := Parse([]byte("```yaml\n- a\n- b\n```"))
	if len(res.Warnings) != 1 {
		t.Fatalf("Warnings len = %d, want 1", len(res.Warnings))
	}
}

func TestParse_EmptyBlock(t *testing.T) {
	res := Parse([]byte("```yaml\n\n```"))
	if !res.Found {
		t.Error("Found = false, want true")
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", res.Warnings)
	}
}

func TestParse_SingleKeywordBecomesList(t *testing.T) {
	res := Parse([]byte("```yaml\nkeywords: deploy\n```"))
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if len(res.Profile.Keywords) != 1 || res.Profile.Keywords[0] != "deploy" {
		t.Errorf("Keywords = %v, want [deploy]", res.Profile.Keywords)
	}
}

func TestProfile_WithDefaults(t *testing.T) {
	p := Profile{}.WithDefaults("qa")
	if p.Name != "qa" || p.Title != "qa" {
		t.Errorf("Name/Title = %q/%q, want qa/qa", p.Name, p.Title)
	}
	if p.Icon != DefaultIcon {
		t.Errorf("Icon = %q, want %q", p.Icon, DefaultIcon)
	}
	if p.Keywords == nil || p.Tools == nil || p.Constraints == nil || p.Startup == nil {
		t.Error("collections should be non-nil after WithDefaults")
	}

	kept := Profile{Name: "Quinn", Icon: "🧪"}.WithDefaults("qa")
	if kept.Name != "Quinn" || kept.Icon != "🧪" {
		t.Errorf("WithDefaults overwrote set fields: %+v", kept)
	}
}

func TestParseWorkflow(t *testing.T) {
	w, err := ParseWorkflow(readTestdata(t, "greenfield.yaml"))
	if err != nil {
		t.Fatalf("ParseWorkflow error: %v", err)
	}
	if w.ID != "greenfield-fullstack" {
		t.Errorf("ID = %q, want %q", w.ID, "greenfield-fullstack")
	}
	if w.PrimaryAgent != "pm" {
		t.Errorf("PrimaryAgent = %q, want %q", w.PrimaryAgent, "pm")
	}
	if len(w.Stages) != 2 {
		t.Errorf("Stages len = %d, want 2", len(w.Stages))
	}
	if len(w.SupportingAgents) != 2 {
		t.Errorf("SupportingAgents len = %d, want 2", len(w.SupportingAgents))
	}
}

func TestParseWorkflow_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "id: [broken"},
		{"empty", ""},
		{"scalar", "just a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseWorkflow([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestWorkflow_WithDefaults(t *testing.T) {
	w := Workflow{}.WithDefaults()
	if w.ID != DefaultWorkflowID || w.Name != DefaultWorkflowName {
		t.Errorf("ID/Name = %q/%q, want defaults", w.ID, w.Name)
	}
	if w.Type != DefaultWorkflowType || w.Category != DefaultWorkflowCategory {
		t.Errorf("Type/Category = %q/%q, want defaults", w.Type, w.Category)
	}
	if w.PrimaryAgent != DefaultPrimaryAgent {
		t.Errorf("PrimaryAgent = %q, want %q", w.PrimaryAgent, DefaultPrimaryAgent)
	}
}

func TestParse_BackticksInValue(t *testing.T) {
	doc := "# dev\n```yaml\nagentName: James\ninstructions: \"use ```go blocks```\"\n```\n"
	res := Parse([]byte(doc))
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if res.Profile.Instructions != "use ```go blocks```" {
		t.Errorf("Instructions = %q, want %q", res.Profile.Instructions, "use ```go blocks```")
	}
}

func TestParse_FieldLevelDefaults(t *testing.T) {
	tests := []struct {
		name         string
		block        string
		wantName     string
		wantKeywords []string
		wantWhen     string
		wantWarning  bool
	}{
		{
			name:        "numeric key",
			block:       "agentName: James\n1: x\n",
			wantName:    "James",
			wantWarning: false,
		},
		{
			name:        "mapping inside keywords",
			block:       "agentName: James\nwhenToUse: Debugging\nkeywords: [a, {b: c}]\n",
			wantName:    "James",
			wantWhen:    "Debugging",
			wantWarning: true,
		},
		{
			name:         "list-valued whenToUse",
			block:        "agentName: James\nwhenToUse: [a, b]\nkeywords: [go]\n",
			wantName:     "James",
			wantKeywords: []string{"go"},
			wantWarning:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse([]byte("```yaml\n" + tt.block + "```\n"))
			if got := len(res.Warnings) == 1; got != tt.wantWarning {
				t.Fatalf("warnings = %v, want one: %v", res.Warnings, tt.wantWarning)
			}
			if len(res.Warnings) > 1 {
				t.Fatalf("got %d warnings, want at most 1", len(res.Warnings))
			}
			if tt.wantWarning {
				var malformed *MalformedError
				if !errors.As(res.Warnings[0], &malformed) {
					t.Errorf("warning type = %T, want *MalformedError", res.Warnings[0])
				}
			}
			p := res.Profile
			if p.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", p.Name, tt.wantName)
			}
			if p.WhenToUse != tt.wantWhen {
				t.Errorf("WhenToUse = %q, want %q", p.WhenToUse, tt.wantWhen)
			}
			if !slices.Equal(p.Keywords, tt.wantKeywords) {
				t.Errorf("Keywords = %v, want %v", p.Keywords, tt.wantKeywords)
			}
		})
	}
}

func TestParse_NestedNonStringKeys(t *testing.T) {
	res := Parse([]byte("```yaml\nagentName: James\nstartup:\n  2: second\n  steps: {1: load}\n```\n"))
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if res.Profile.Startup["2"] != "second" {
		t.Errorf("Startup[2] = %v, want second", res.Profile.Startup["2"])
	}
	steps, ok := res.Profile.Startup["steps"].(map[string]any)
	if !ok || steps["1"] != "load" {
		t.Errorf("Startup[steps] = %#v, want map with key 1", res.Profile.Startup["steps"])
	}
}
