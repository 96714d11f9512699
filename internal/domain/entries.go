package domain

import (
	"fmt"
	"slices"
)

// Section names a list of records in the document whose elements are edited
// field by field
type Section string

const (
	SectionEducation Section = "education"
	SectionWork      Section = "work"
	SectionProjects  Section = "projects"
	SectionSocial    Section = "contact.social"
)

// FieldSpec describes one editable field of a list element
type FieldSpec struct {
	Name string
	Kind Kind
}

// fieldAccess reads and writes one field of a list element
type fieldAccess[T any] struct {
	spec FieldSpec
	get  func(T) any
	set  func(*T, any) error
}

func textField[T any](name string, kind Kind, ptr func(*T) *string) fieldAccess[T] {
	return fieldAccess[T]{
		spec: FieldSpec{Name: name, Kind: kind},
		get:  func(e T) any { return *ptr(&e) },
		set: func(e *T, value any) error {
			s, ok := value.(string)
			if !ok {
				return &ValueTypeError{Path: Path(name), Want: "string", Got: fmt.Sprintf("%T", value)}
			}
			*ptr(e) = s
			return nil
		},
	}
}

func tagsField[T any](name string, ptr func(*T) *[]string) fieldAccess[T] {
	return fieldAccess[T]{
		spec: FieldSpec{Name: name, Kind: KindTags},
		get:  func(e T) any { return *ptr(&e) },
		set: func(e *T, value any) error {
			tags, ok := value.([]string)
			if !ok {
				return &ValueTypeError{Path: Path(name), Want: "[]string", Got: fmt.Sprintf("%T", value)}
			}
			*ptr(e) = tags
			return nil
		},
	}
}

// section is the untyped view of a listSection
type section interface {
	fields() []FieldSpec
	length(doc Document) int
	value(doc Document, index int, field string) (any, error)
	setField(doc Document, index int, field string, value any) (Document, error)
	appendEntry(doc Document) (Document, error)
	removeEntry(doc Document, index int) (Document, error)
}

// listSection implements per-index editing for one list of the document. The
// edited list is always handed back to the path mutator as a whole.
type listSection[T any] struct {
	name   Section
	lens   Lens[[]T]
	access []fieldAccess[T]
}

func (s listSection[T]) fields() []FieldSpec {
	specs := make([]FieldSpec, len(s.access))
	for i, a := range s.access {
		specs[i] = a.spec
	}
	return specs
}

func (s listSection[T]) length(doc Document) int {
	return len(s.lens.Get(doc))
}

func (s listSection[T]) find(index int, field string) (fieldAccess[T], error) {
	for _, a := range s.access {
		if a.spec.Name == field {
			return a, nil
		}
	}
	return fieldAccess[T]{}, &PathError{
		Path:    fmt.Sprintf("%s[%d].%s", s.name, index, field),
		Segment: field,
		Err:     ErrPathNotFound,
	}
}

func (s listSection[T]) value(doc Document, index int, field string) (any, error) {
	list := s.lens.Get(doc)
	if err := checkIndex(s.name, index, len(list)); err != nil {
		return nil, err
	}
	a, err := s.find(index, field)
	if err != nil {
		return nil, err
	}
	return a.get(list[index]), nil
}

func (s listSection[T]) setField(doc Document, index int, field string, value any) (Document, error) {
	list := s.lens.Get(doc)
	if err := checkIndex(s.name, index, len(list)); err != nil {
		return doc, err
	}
	a, err := s.find(index, field)
	if err != nil {
		return doc, err
	}

	elem := list[index]
	if err := a.set(&elem, value); err != nil {
		return doc, err
	}

	updated := slices.Clone(list)
	updated[index] = elem
	return Update(doc, s.lens.Path(), updated)
}

func (s listSection[T]) appendEntry(doc Document) (Document, error) {
	list := s.lens.Get(doc)
	updated := make([]T, len(list), len(list)+1)
	copy(updated, list)
	var zero T
	updated = append(updated, zero)
	return Update(doc, s.lens.Path(), updated)
}

func (s listSection[T]) removeEntry(doc Document, index int) (Document, error) {
	list := s.lens.Get(doc)
	if err := checkIndex(s.name, index, len(list)); err != nil {
		return doc, err
	}
	updated := make([]T, 0, len(list)-1)
	updated = append(updated, list[:index]...)
	updated = append(updated, list[index+1:]...)
	return Update(doc, s.lens.Path(), updated)
}

func checkIndex(name Section, index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %s[%d] (len %d)", ErrIndexOutOfRange, name, index, length)
	}
	return nil
}

var sections = map[Section]section{
	SectionEducation: listSection[Education]{
		name: SectionEducation,
		lens: LensEducation,
		access: []fieldAccess[Education]{
			textField("school", KindText, func(e *Education) *string { return &e.School }),
			textField("degree", KindText, func(e *Education) *string { return &e.Degree }),
			textField("start", KindText, func(e *Education) *string { return &e.Start }),
			textField("end", KindText, func(e *Education) *string { return &e.End }),
		},
	},
	SectionWork: listSection[Work]{
		name: SectionWork,
		lens: LensWork,
		access: []fieldAccess[Work]{
			textField("company", KindText, func(w *Work) *string { return &w.Company }),
			textField("link", KindText, func(w *Work) *string { return &w.Link }),
			textField("title", KindText, func(w *Work) *string { return &w.Title }),
			textField("start", KindText, func(w *Work) *string { return &w.Start }),
			textField("end", KindText, func(w *Work) *string { return &w.End }),
			textField("description", KindMultiline, func(w *Work) *string { return &w.Description }),
			tagsField("badges", func(w *Work) *[]string { return &w.Badges }),
		},
	},
	SectionProjects: listSection[Project]{
		name: SectionProjects,
		lens: LensProjects,
		access: []fieldAccess[Project]{
			textField("title", KindText, func(p *Project) *string { return &p.Title }),
			textField("description", KindMultiline, func(p *Project) *string { return &p.Description }),
			tagsField("techStack", func(p *Project) *[]string { return &p.TechStack }),
			textField("link.label", KindText, func(p *Project) *string { return &p.Link.Label }),
			textField("link.href", KindText, func(p *Project) *string { return &p.Link.Href }),
		},
	},
	SectionSocial: listSection[Social]{
		name: SectionSocial,
		lens: LensContactSocial,
		access: []fieldAccess[Social]{
			textField("name", KindText, func(s *Social) *string { return &s.Name }),
			textField("url", KindText, func(s *Social) *string { return &s.URL }),
			textField("icon", KindText, func(s *Social) *string { return &s.Icon }),
		},
	},
}

// Sections returns the list sections in presentation order
func Sections() []Section {
	return []Section{SectionSocial, SectionWork, SectionEducation, SectionProjects}
}

// ParseSection validates a section name
func ParseSection(name string) (Section, error) {
	if _, ok := sections[Section(name)]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	return Section(name), nil
}

func lookupSection(name Section) (section, error) {
	s, ok := sections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	return s, nil
}

// EntryFields returns the editable fields of an element of section
func EntryFields(name Section) ([]FieldSpec, error) {
	s, err := lookupSection(name)
	if err != nil {
		return nil, err
	}
	return s.fields(), nil
}

// EntryCount returns the number of elements in section
func EntryCount(doc Document, name Section) int {
	s, err := lookupSection(name)
	if err != nil {
		return 0
	}
	return s.length(doc)
}

// EntryValue returns one field of the element at index
func EntryValue(doc Document, name Section, index int, field string) (any, error) {
	s, err := lookupSection(name)
	if err != nil {
		return nil, err
	}
	return s.value(doc, index, field)
}

// SetEntryField copies the list of section, replaces the element at index with
// a copy carrying the new field value and applies the whole list through Update.
// Other elements and every other section keep their identity.
func SetEntryField(doc Document, name Section, index int, field string, value any) (Document, error) {
	s, err := lookupSection(name)
	if err != nil {
		return doc, err
	}
	return s.setField(doc, index, field, value)
}

// AppendEntry adds an empty element at the end of section
func AppendEntry(doc Document, name Section) (Document, error) {
	s, err := lookupSection(name)
	if err != nil {
		return doc, err
	}
	return s.appendEntry(doc)
}

// RemoveEntry deletes the element at index from section
func RemoveEntry(doc Document, name Section, index int) (Document, error) {
	s, err := lookupSection(name)
	if err != nil {
		return doc, err
	}
	return s.removeEntry(doc, index)
}

// DecodeEntryValue converts textual input into the value type of an element field
func DecodeEntryValue(name Section, field, raw string) (any, error) {
	specs, err := EntryFields(name)
	if err != nil {
		return nil, err
	}
	for _, spec := range specs {
		if spec.Name != field {
			continue
		}
		if spec.Kind == KindTags {
			return ParseTags(raw)
		}
		return raw, nil
	}
	return nil, &PathError{Path: fmt.Sprintf("%s.%s", name, field), Segment: field, Err: ErrPathNotFound}
}
