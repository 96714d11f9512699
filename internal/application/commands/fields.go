package commands

import (
	"context"

	"resumedit/internal/domain"
)

// FieldRef locates one editable leaf of the document. Top-level leaves carry a
// Path; list element fields carry Section, Index and Field. An empty list
// section is listed as a single row with Section set and no Field, so it can
// still be targeted for adding an entry.
type FieldRef struct {
	Key     string
	Path    domain.Path
	Section domain.Section
	Index   int
	Field   string
	Kind    domain.Kind
	Text    string
}

// IsEntry reports whether the field belongs to a list section
func (f FieldRef) IsEntry() bool {
	return f.Section != ""
}

// IsEmptySection reports whether the row stands for a list section with no elements
func (f FieldRef) IsEmptySection() bool {
	return f.Section != "" && f.Field == ""
}

// EmptySectionKey returns the row key of an empty list section (e.g. "education[]")
func EmptySectionKey(section domain.Section) string {
	return string(section) + "[]"
}

// ListFields enumerates every editable leaf in presentation order. Keys only
// depend on the position of a leaf, so editing a value never changes any key.
func ListFields(doc domain.Document) []FieldRef {
	var refs []FieldRef
	for _, path := range domain.Paths() {
		kind, err := domain.KindOf(path)
		if err != nil {
			continue
		}
		if kind != domain.KindStructured {
			value, _ := domain.Get(doc, path)
			text, _ := FormatValue(kind, value)
			refs = append(refs, FieldRef{
				Key:  path.String(),
				Path: path,
				Kind: kind,
				Text: text,
			})
			continue
		}
		if section, err := domain.ParseSection(path.String()); err == nil {
			refs = append(refs, listEntryFields(doc, section)...)
		}
	}
	return refs
}

func listEntryFields(doc domain.Document, section domain.Section) []FieldRef {
	specs, err := domain.EntryFields(section)
	if err != nil {
		return nil
	}

	count := domain.EntryCount(doc, section)
	if count == 0 {
		return []FieldRef{{
			Key:     EmptySectionKey(section),
			Section: section,
			Index:   -1,
			Kind:    domain.KindStructured,
		}}
	}

	var refs []FieldRef
	for i := 0; i < count; i++ {
		for _, spec := range specs {
			value, _ := domain.EntryValue(doc, section, i, spec.Name)
			text, _ := FormatValue(spec.Kind, value)
			refs = append(refs, FieldRef{
				Key:     EntryKey(section, i, spec.Name),
				Section: section,
				Index:   i,
				Field:   spec.Name,
				Kind:    spec.Kind,
				Text:    text,
			})
		}
	}
	return refs
}

// ApplyField sets the field behind ref from text input through the matching command
func ApplyField(ctx context.Context, store DocumentStore, ref FieldRef, value string) (domain.Document, string, error) {
	if ref.IsEntry() {
		result, err := NewSetEntryFieldCommand(store, string(ref.Section), ref.Index, ref.Field, value).Execute(ctx)
		if err != nil {
			return store.Current(), "", err
		}
		return result.Document, result.Message, nil
	}

	result, err := NewSetFieldCommand(store, string(ref.Path), value).Execute(ctx)
	if err != nil {
		return store.Current(), "", err
	}
	return result.Document, result.Message, nil
}
