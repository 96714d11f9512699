package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Path is a dotted locator of one attribute of a Document (e.g., "contact.email")
type Path string

// Every path the schema supports
const (
	PathName               Path = "name"
	PathInitials           Path = "initials"
	PathLocation           Path = "location"
	PathLocationLink       Path = "locationLink"
	PathAbout              Path = "about"
	PathSummary            Path = "summary"
	PathPersonalWebsiteURL Path = "personalWebsiteUrl"
	PathContact            Path = "contact"
	PathContactEmail       Path = "contact.email"
	PathContactTel         Path = "contact.tel"
	PathContactSocial      Path = "contact.social"
	PathEducation          Path = "education"
	PathWork               Path = "work"
	PathSkills             Path = "skills"
	PathSkillsCore         Path = "skills.core"
	PathSkillsFamiliar     Path = "skills.familiar"
	PathSkillsTools        Path = "skills.tools"
	PathProjects           Path = "projects"
)

func (p Path) String() string {
	return string(p)
}

// Kind tells how a value at a path is edited and decoded from text
type Kind int

const (
	KindText Kind = iota
	KindMultiline
	KindTags
	KindStructured
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMultiline:
		return "multiline"
	case KindTags:
		return "tags"
	case KindStructured:
		return "structured"
	default:
		return "unknown"
	}
}

// binding is the untyped view of a Lens used for paths only known at runtime
type binding struct {
	path   Path
	kind   Kind
	get    func(Document) any
	set    func(Document, any) (Document, error)
	decode func(string) (any, error)
}

func bind[T any](l Lens[T], kind Kind) binding {
	return binding{
		path: l.path,
		kind: kind,
		get: func(d Document) any {
			return l.get(d)
		},
		set: func(d Document, value any) (Document, error) {
			v, ok := value.(T)
			if !ok {
				var zero T
				return d, &ValueTypeError{
					Path: l.path,
					Want: fmt.Sprintf("%T", zero),
					Got:  fmt.Sprintf("%T", value),
				}
			}
			return l.set(d, v), nil
		},
		decode: func(raw string) (any, error) {
			switch kind {
			case KindText, KindMultiline:
				return raw, nil
			case KindTags:
				return ParseTags(raw)
			}
			var v T
			if err := json.Unmarshal([]byte(raw), &v); err != nil {
				return nil, fmt.Errorf("%w for %s: %v", ErrMalformedValue, l.path, err)
			}
			return v, nil
		},
	}
}

// bindings lists the schema in presentation order
var bindings = []binding{
	bind(LensName, KindText),
	bind(LensInitials, KindText),
	bind(LensAbout, KindText),
	bind(LensLocation, KindText),
	bind(LensLocationLink, KindText),
	bind(LensPersonalWebsiteURL, KindText),
	bind(LensSummary, KindMultiline),
	bind(LensContact, KindStructured),
	bind(LensContactEmail, KindText),
	bind(LensContactTel, KindText),
	bind(LensContactSocial, KindStructured),
	bind(LensSkills, KindStructured),
	bind(LensSkillsCore, KindTags),
	bind(LensSkillsFamiliar, KindTags),
	bind(LensSkillsTools, KindTags),
	bind(LensWork, KindStructured),
	bind(LensEducation, KindStructured),
	bind(LensProjects, KindStructured),
}

var registry = func() map[Path]binding {
	m := make(map[Path]binding, len(bindings))
	for _, b := range bindings {
		m[b.path] = b
	}
	return m
}()

// Paths returns every valid path in presentation order
func Paths() []Path {
	paths := make([]Path, len(bindings))
	for i, b := range bindings {
		paths[i] = b.path
	}
	return paths
}

// ParsePath validates a free-form dotted path against the schema
func ParsePath(s string) (Path, error) {
	if s == "" {
		return "", &PathError{Path: s, Err: ErrInvalidPath}
	}

	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if seg == "" {
			return "", &PathError{Path: s, Err: ErrInvalidPath}
		}
	}

	if _, ok := registry[Path(s)]; ok {
		return Path(s), nil
	}

	// Report the first segment that does not exist
	for i := range segments {
		prefix := strings.Join(segments[:i+1], ".")
		if _, ok := registry[Path(prefix)]; !ok {
			return "", &PathError{Path: s, Segment: segments[i], Err: ErrPathNotFound}
		}
	}
	return "", &PathError{Path: s, Err: ErrPathNotFound}
}

func lookup(p Path) (binding, error) {
	parsed, err := ParsePath(string(p))
	if err != nil {
		return binding{}, err
	}
	return registry[parsed], nil
}

// KindOf returns how the value at path is edited
func KindOf(p Path) (Kind, error) {
	b, err := lookup(p)
	if err != nil {
		return 0, err
	}
	return b.kind, nil
}

// Get returns the current value at path
func Get(doc Document, p Path) (any, error) {
	b, err := lookup(p)
	if err != nil {
		return nil, err
	}
	return b.get(doc), nil
}

// Update returns a copy of doc with the attribute at path replaced by value.
// Records on the path are copied; sibling subtrees keep their identity. On
// error doc is returned unchanged.
func Update(doc Document, p Path, value any) (Document, error) {
	b, err := lookup(p)
	if err != nil {
		return doc, err
	}
	updated, err := b.set(doc, value)
	if err != nil {
		return doc, err
	}
	return Normalize(updated), nil
}

// DecodeValue converts textual input into the value type held at path.
// Text is taken verbatim, tags accept a comma separated list or a JSON array,
// anything else must be JSON.
func DecodeValue(p Path, raw string) (any, error) {
	b, err := lookup(p)
	if err != nil {
		return nil, err
	}
	return b.decode(raw)
}

// ParseTags splits a comma separated list (or a JSON array) into trimmed,
// non-empty tags
func ParseTags(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var tags []string
		if err := json.Unmarshal([]byte(trimmed), &tags); err != nil {
			return nil, fmt.Errorf("%w: tags: %v", ErrMalformedValue, err)
		}
		return nonNil(tags), nil
	}

	tags := []string{}
	for _, part := range strings.Split(trimmed, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// FormatTags renders tags as an editable comma separated list. Tags the list
// form cannot carry (commas, surrounding blanks, a leading bracket, empty
// tags) switch the whole value to a JSON array, so ParseTags(FormatTags(t))
// always returns t.
func FormatTags(tags []string) string {
	for _, tag := range tags {
		if !plainTag(tag) {
			data, err := json.Marshal(tags)
			if err != nil {
				break
			}
			return string(data)
		}
	}
	return strings.Join(tags, ", ")
}

func plainTag(tag string) bool {
	return tag != "" &&
		tag == strings.TrimSpace(tag) &&
		!strings.Contains(tag, ",") &&
		!strings.HasPrefix(tag, "[")
}
