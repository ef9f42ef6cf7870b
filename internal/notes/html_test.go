package notes

import (
	"strings"
	"testing"
)

func TestNormalizeBoldLines(t *testing.T) {
	in := "**Introduction**\nThe topic is caches.\n"
	out := normalize(in)

	if !strings.Contains(out, "**Introduction**\n\n") {
		t.Errorf("blank line not inserted after bold line: %q", out)
	}
}

func TestNormalizeLeavesInlineBoldAlone(t *testing.T) {
	in := "the **key** idea\n"
	if out := normalize(in); out != in {
		t.Errorf("normalize changed %q to %q", in, out)
	}
}

func TestRenderHTML(t *testing.T) {
	md := "# Lecture 4\n\n**Summary**\nSome *important* content.\n\n- point one\n- point two\n"

	out, err := RenderHTML(md)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<html>",
		"</html>",
		"font-family: Arial",
		"<h1",
		"Lecture 4",
		"<strong>Summary</strong>",
		"<li>point one</li>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}

	// The bold pseudo-header must form its own block, not lead the
	// following paragraph.
	if strings.Contains(html, "<p><strong>Summary</strong>\nSome") {
		t.Error("bold header folded into the next paragraph")
	}
}

func TestRenderHTMLEmpty(t *testing.T) {
	if _, err := RenderHTML("   \n"); err == nil {
		t.Error("RenderHTML() should reject empty input")
	}
}
