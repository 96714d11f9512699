package views

import (
	"strings"

	"resumedit/internal/adapters/tui/styles"
	"resumedit/internal/domain"
)

// RenderDocument renders the read-only presentation of the résumé. A
// positive width wraps free text to that many columns.
func RenderDocument(doc domain.Document, width int) string {
	var b strings.Builder

	writeHeader(&b, doc)

	if strings.TrimSpace(doc.Summary) != "" {
		writeSection(&b, "About")
		b.WriteString(RenderMarkdown(doc.Summary, width))
		b.WriteString("\n")
	}

	writeSection(&b, "Skills")
	writeSkillLine(&b, "Core", doc.Skills.Core)
	writeSkillLine(&b, "Familiar", doc.Skills.Familiar)
	writeSkillLine(&b, "Tools", doc.Skills.Tools)

	if len(doc.Work) > 0 {
		writeSection(&b, "Work Experience")
		for i, w := range doc.Work {
			if i > 0 {
				b.WriteString("\n")
			}
			writeWork(&b, w, width)
		}
	}

	if len(doc.Education) > 0 {
		writeSection(&b, "Education")
		for _, e := range doc.Education {
			b.WriteString(styles.EntryTitle.Render(e.School))
			b.WriteString("  ")
			b.WriteString(styles.EntryMeta.Render(e.Start + " – " + e.End))
			b.WriteString("\n")
			if e.Degree != "" {
				b.WriteString(e.Degree)
				b.WriteString("\n")
			}
		}
	}

	if len(doc.Projects) > 0 {
		writeSection(&b, "Projects")
		for i, p := range doc.Projects {
			if i > 0 {
				b.WriteString("\n")
			}
			writeProject(&b, p, width)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeHeader(b *strings.Builder, doc domain.Document) {
	b.WriteString(styles.Name.Render(doc.Name))
	if doc.Initials != "" {
		b.WriteString(" ")
		b.WriteString(styles.EntryMeta.Render("(" + doc.Initials + ")"))
	}
	b.WriteString("\n")

	if doc.About != "" {
		b.WriteString(styles.Subtitle.Render(doc.About))
		b.WriteString("\n")
	}
	if doc.Location != "" {
		b.WriteString(RenderMuted("⌂ "))
		b.WriteString(doc.Location)
		if doc.LocationLink != "" {
			b.WriteString(" ")
			b.WriteString(styles.Link.Render(doc.LocationLink))
		}
		b.WriteString("\n")
	}

	var contact []string
	if doc.Contact.Email != "" {
		contact = append(contact, "✉ "+doc.Contact.Email)
	}
	if doc.Contact.Tel != "" {
		contact = append(contact, "☎ "+doc.Contact.Tel)
	}
	if doc.PersonalWebsiteURL != "" {
		contact = append(contact, styles.Link.Render(doc.PersonalWebsiteURL))
	}
	if len(contact) > 0 {
		b.WriteString(strings.Join(contact, "  "))
		b.WriteString("\n")
	}

	for _, s := range doc.Contact.Social {
		b.WriteString(RenderLabelValue(s.Name, styles.Link.Render(s.URL)))
		b.WriteString("\n")
	}
}

func writeSection(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(styles.SectionTitle.Render(title))
	b.WriteString("\n")
}

func writeSkillLine(b *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}
	b.WriteString(RenderLabelValue(label, strings.Join(skills, ", ")))
	b.WriteString("\n")
}

func writeBadges(b *strings.Builder, badges []string) {
	for _, badge := range badges {
		b.WriteString(" ")
		b.WriteString(styles.Badge.Render(badge))
	}
}

func writeWork(b *strings.Builder, w domain.Work, width int) {
	b.WriteString(styles.EntryTitle.Render(w.Company))
	writeBadges(b, w.Badges)
	b.WriteString("  ")
	b.WriteString(styles.EntryMeta.Render(w.Period()))
	b.WriteString("\n")

	if w.Title != "" {
		b.WriteString(w.Title)
		b.WriteString("\n")
	}
	if w.Link != "" {
		b.WriteString(styles.Link.Render(w.Link))
		b.WriteString("\n")
	}
	if strings.TrimSpace(w.Description) != "" {
		b.WriteString(RenderMarkdown(w.Description, width))
		b.WriteString("\n")
	}
}

func writeProject(b *strings.Builder, p domain.Project, width int) {
	b.WriteString(styles.EntryTitle.Render(p.Title))
	if p.Link.Href != "" {
		label := p.Link.Label
		if label == "" {
			label = p.Link.Href
		}
		b.WriteString("  ")
		b.WriteString(styles.Link.Render(label))
	}
	b.WriteString("\n")

	if len(p.TechStack) > 0 {
		b.WriteString(RenderMuted(strings.Join(p.TechStack, " · ")))
		b.WriteString("\n")
	}
	if strings.TrimSpace(p.Description) != "" {
		b.WriteString(RenderMarkdown(p.Description, width))
		b.WriteString("\n")
	}
}
