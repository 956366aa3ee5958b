package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func ctxOf(pairs ...string) *Context {
	c := NewContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Set(pairs[i], pairs[i+1])
	}
	return c
}

func TestRenderSubstitutesValue(t *testing.T) {
	got := Render("Usage: {{ cpu }}%", ctxOf("cpu", "42.3"))
	if got != "Usage: 42.3%" {
		t.Errorf("Render = %q, want %q", got, "Usage: 42.3%")
	}
}

func TestRenderLeavesUnknownPlaceholder(t *testing.T) {
	got := Render("{{ missing }}", NewContext())
	if got != "{{ missing }}" {
		t.Errorf("Render = %q, want placeholder untouched", got)
	}
}

func TestRenderSpacingIsStrict(t *testing.T) {
	ctx := ctxOf("cpu", "42.3")
	tests := []string{
		"{{cpu}}",
		"{{  cpu  }}",
		"{{ cpu}}",
		"{{cpu }}",
	}
	for _, template := range tests {
		if got := Render(template, ctx); got != template {
			t.Errorf("Render(%q) = %q, want non-canonical spacing left untouched", template, got)
		}
	}
}

func TestRenderReplacesEveryOccurrence(t *testing.T) {
	got := Render("{{ host }} and {{ host }}", ctxOf("host", "alpha"))
	if got != "alpha and alpha" {
		t.Errorf("Render = %q, want both occurrences replaced", got)
	}
}

func TestRenderInsertsFragmentsVerbatim(t *testing.T) {
	row := "<tr><td class=\"status-green\">3.1%</td></tr>"
	got := Render("<table>{{ rows }}</table>", ctxOf("rows", row))
	if got != "<table>"+row+"</table>" {
		t.Errorf("Render = %q, markup must not be escaped", got)
	}
}

func TestRenderAppliesEntriesSequentially(t *testing.T) {
	// A value substituted early is rescanned by later entries; this
	// ordering is part of the substitution contract.
	ctx := ctxOf(
		"outer", "start {{ inner }} end",
		"inner", "value",
	)
	got := Render("{{ outer }}", ctx)
	if got != "start value end" {
		t.Errorf("Render = %q, want later entry applied to earlier value", got)
	}
}

func TestContextLaterWinsKeepsPosition(t *testing.T) {
	ctx := NewContext()
	ctx.Set("a", "1")
	ctx.Set("b", "2")
	ctx.Set("a", "override")

	entries := ctx.Entries()
	if len(entries) != 2 {
		t.Fatalf("Len = %d, want 2 distinct keys", len(entries))
	}
	if entries[0].Key != "a" || entries[0].Value != "override" {
		t.Errorf("entry 0 = %+v, want key a at original position with later value", entries[0])
	}
	if v, _ := ctx.Get("a"); v != "override" {
		t.Errorf("Get(a) = %q, want override", v)
	}
}

func TestContextRecordsCollisions(t *testing.T) {
	ctx := NewContext()
	ctx.Set("a", "1")
	ctx.Set("b", "2")
	if len(ctx.Collisions()) != 0 {
		t.Errorf("Collisions = %v, want none yet", ctx.Collisions())
	}

	ctx.Set("a", "3")
	ctx.Set("a", "4")
	got := ctx.Collisions()
	if len(got) != 2 || got[0] != "a" || got[1] != "a" {
		t.Errorf("Collisions = %v, want [a a]", got)
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.html")
	if err := os.WriteFile(path, []byte("<html>{{ body }}</html>"), 0644); err != nil {
		t.Fatal(err)
	}

	content, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	if !strings.Contains(content, "{{ body }}") {
		t.Errorf("template content %q lost its placeholder", content)
	}
}

func TestLoadTemplateMissingIsError(t *testing.T) {
	if _, err := LoadTemplate(filepath.Join(t.TempDir(), "absent.html")); err == nil {
		t.Fatal("expected error for missing template")
	}
}
