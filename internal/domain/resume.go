package domain

// Document is the complete résumé record, the unit of persistence and mutation.
//
// Documents are values: every mutation produces a new Document. Slices inside a
// Document are never modified in place, so copies share untouched subtrees.
type Document struct {
	Name               string      `json:"name"`
	Initials           string      `json:"initials"`
	Location           string      `json:"location"`
	LocationLink       string      `json:"locationLink"`
	About              string      `json:"about"`
	Summary            string      `json:"summary"`
	PersonalWebsiteURL string      `json:"personalWebsiteUrl"`
	Contact            Contact     `json:"contact"`
	Education          []Education `json:"education"`
	Work               []Work      `json:"work"`
	Skills             Skills      `json:"skills"`
	Projects           []Project   `json:"projects"`
}

// Contact holds the ways to reach the résumé owner
type Contact struct {
	Email  string   `json:"email"`
	Tel    string   `json:"tel"`
	Social []Social `json:"social"`
}

// Social is a link to a social profile (e.g., GitHub)
type Social struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// Education is a single education entry
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// Work is a single work experience entry. An empty End means the position is current.
type Work struct {
	Company     string   `json:"company"`
	Link        string   `json:"link"`
	Title       string   `json:"title"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Description string   `json:"description"`
	Badges      []string `json:"badges"`
}

// Period returns the display form of the employment period
func (w Work) Period() string {
	end := w.End
	if end == "" {
		end = "Present"
	}
	return w.Start + " – " + end
}

// Skills groups skill tags by category
type Skills struct {
	Core     []string `json:"core"`
	Familiar []string `json:"familiar"`
	Tools    []string `json:"tools"`
}

// Project is a side project entry
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Link        Link     `json:"link"`
}

// Link is a labelled URL
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Normalize returns a copy of doc where every list is non-nil, so the JSON
// form never carries null in place of an empty list. Non-nil lists keep their
// identity.
func Normalize(doc Document) Document {
	doc.Contact.Social = nonNil(doc.Contact.Social)
	doc.Education = nonNil(doc.Education)
	doc.Skills.Core = nonNil(doc.Skills.Core)
	doc.Skills.Familiar = nonNil(doc.Skills.Familiar)
	doc.Skills.Tools = nonNil(doc.Skills.Tools)

	if doc.Work == nil {
		doc.Work = []Work{}
	} else if hasNilBadges(doc.Work) {
		work := make([]Work, len(doc.Work))
		for i, w := range doc.Work {
			w.Badges = nonNil(w.Badges)
			work[i] = w
		}
		doc.Work = work
	}

	if doc.Projects == nil {
		doc.Projects = []Project{}
	} else if hasNilTechStack(doc.Projects) {
		projects := make([]Project, len(doc.Projects))
		for i, p := range doc.Projects {
			p.TechStack = nonNil(p.TechStack)
			projects[i] = p
		}
		doc.Projects = projects
	}

	return doc
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func hasNilBadges(work []Work) bool {
	for _, w := range work {
		if w.Badges == nil {
			return true
		}
	}
	return false
}

func hasNilTechStack(projects []Project) bool {
	for _, p := range projects {
		if p.TechStack == nil {
			return true
		}
	}
	return false
}
