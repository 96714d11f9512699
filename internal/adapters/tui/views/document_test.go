package views

import (
	"strings"
	"testing"

	"resumedit/internal/domain"
)

func TestRenderDocument_Sections(t *testing.T) {
	doc := domain.Default()
	out := RenderDocument(doc, 0)

	for _, want := range []string{
		doc.Name,
		doc.Contact.Email,
		doc.Contact.Social[0].URL,
		"Work Experience",
		doc.Work[0].Company,
		"Present",
		"Remote",
		"Education",
		doc.Education[0].School,
		"Projects",
		doc.Projects[0].Link.Label,
		"Skills",
		"Go, Java",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRenderDocument_SkipsEmptySections(t *testing.T) {
	doc := domain.Default()
	doc.Work = []domain.Work{}
	doc.Projects = []domain.Project{}
	doc.Summary = ""

	out := RenderDocument(doc, 0)

	for _, missing := range []string{"Work Experience", "Projects", "About"} {
		if strings.Contains(out, missing) {
			t.Errorf("expected output not to contain %q", missing)
		}
	}
}

func TestRenderDocument_ProjectLinkFallsBackToHref(t *testing.T) {
	doc := domain.Default()
	doc.Projects = []domain.Project{{
		Title: "Tool",
		Link:  domain.Link{Href: "https://tool.example.com"},
	}}

	if out := RenderDocument(doc, 0); !strings.Contains(out, "https://tool.example.com") {
		t.Error("expected href to be shown when the label is empty")
	}
}
