package templates

import (
	"strings"
	"testing"
)

func TestTemplatesEmbedded(t *testing.T) {
	entries, err := embedTemplates.ReadDir(".")
	if err != nil {
		t.Fatalf("Failed to read embedded templates: %v", err)
	}

	found := map[string]bool{}
	for _, entry := range entries {
		found[entry.Name()] = true
	}
	for _, name := range []string{OrderList, Callback} {
		if !found[name] {
			t.Errorf("template %s is not embedded", name)
		}
	}
}

func TestParse(t *testing.T) {
	tmpl, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for _, name := range []string{OrderList, Callback, "head", "toasts", "selection"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %s is not defined", name)
		}
	}
}

func TestCallbackTemplateEscapes(t *testing.T) {
	tmpl, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	data := map[string]any{
		"Token": "tok",
		"Page": map[string]any{
			"Input":         "<script>",
			"ResultVisible": true,
			"ResultText":    "a\nb",
			"ResultStyle":   "result-error",
		},
	}

	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, Callback, data); err != nil {
		t.Fatalf("ExecuteTemplate() error = %v", err)
	}
	out := sb.String()
	if strings.Contains(out, "<script>") {
		t.Error("input must be escaped")
	}
	if !strings.Contains(out, "result result-error") {
		t.Error("result style class is missing")
	}
}
