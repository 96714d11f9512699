package domain

// Lens focuses on one attribute of a Document. Set returns a new Document in
// which every record on the way to the attribute is a copy and everything else
// is shared with the input.
type Lens[T any] struct {
	path Path
	get  func(Document) T
	set  func(Document, T) Document
}

// Path returns the dotted path the lens focuses on
func (l Lens[T]) Path() Path {
	return l.path
}

// Get reads the focused attribute
func (l Lens[T]) Get(doc Document) T {
	return l.get(doc)
}

// Set replaces the focused attribute
func (l Lens[T]) Set(doc Document, value T) Document {
	return l.set(doc, value)
}

var root = Lens[Document]{
	get: func(d Document) Document { return d },
	set: func(_ Document, v Document) Document { return v },
}

// field narrows a parent lens to one of its attributes
func field[P, C any](parent Lens[P], path Path, get func(P) C, set func(P, C) P) Lens[C] {
	return Lens[C]{
		path: path,
		get: func(d Document) C {
			return get(parent.get(d))
		},
		set: func(d Document, v C) Document {
			return parent.set(d, set(parent.get(d), v))
		},
	}
}

// Typed lenses for every path of the schema
var (
	LensName = field(root, PathName,
		func(d Document) string { return d.Name },
		func(d Document, v string) Document { d.Name = v; return d })
	LensInitials = field(root, PathInitials,
		func(d Document) string { return d.Initials },
		func(d Document, v string) Document { d.Initials = v; return d })
	LensLocation = field(root, PathLocation,
		func(d Document) string { return d.Location },
		func(d Document, v string) Document { d.Location = v; return d })
	LensLocationLink = field(root, PathLocationLink,
		func(d Document) string { return d.LocationLink },
		func(d Document, v string) Document { d.LocationLink = v; return d })
	LensAbout = field(root, PathAbout,
		func(d Document) string { return d.About },
		func(d Document, v string) Document { d.About = v; return d })
	LensSummary = field(root, PathSummary,
		func(d Document) string { return d.Summary },
		func(d Document, v string) Document { d.Summary = v; return d })
	LensPersonalWebsiteURL = field(root, PathPersonalWebsiteURL,
		func(d Document) string { return d.PersonalWebsiteURL },
		func(d Document, v string) Document { d.PersonalWebsiteURL = v; return d })

	LensContact = field(root, PathContact,
		func(d Document) Contact { return d.Contact },
		func(d Document, v Contact) Document { d.Contact = v; return d })
	LensContactEmail = field(LensContact, PathContactEmail,
		func(c Contact) string { return c.Email },
		func(c Contact, v string) Contact { c.Email = v; return c })
	LensContactTel = field(LensContact, PathContactTel,
		func(c Contact) string { return c.Tel },
		func(c Contact, v string) Contact { c.Tel = v; return c })
	LensContactSocial = field(LensContact, PathContactSocial,
		func(c Contact) []Social { return c.Social },
		func(c Contact, v []Social) Contact { c.Social = v; return c })

	LensEducation = field(root, PathEducation,
		func(d Document) []Education { return d.Education },
		func(d Document, v []Education) Document { d.Education = v; return d })
	LensWork = field(root, PathWork,
		func(d Document) []Work { return d.Work },
		func(d Document, v []Work) Document { d.Work = v; return d })
	LensProjects = field(root, PathProjects,
		func(d Document) []Project { return d.Projects },
		func(d Document, v []Project) Document { d.Projects = v; return d })

	LensSkills = field(root, PathSkills,
		func(d Document) Skills { return d.Skills },
		func(d Document, v Skills) Document { d.Skills = v; return d })
	LensSkillsCore = field(LensSkills, PathSkillsCore,
		func(s Skills) []string { return s.Core },
		func(s Skills, v []string) Skills { s.Core = v; return s })
	LensSkillsFamiliar = field(LensSkills, PathSkillsFamiliar,
		func(s Skills) []string { return s.Familiar },
		func(s Skills, v []string) Skills { s.Familiar = v; return s })
	LensSkillsTools = field(LensSkills, PathSkillsTools,
		func(s Skills) []string { return s.Tools },
		func(s Skills, v []string) Skills { s.Tools = v; return s })
)
