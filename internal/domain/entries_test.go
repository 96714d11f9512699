package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestSetEntryField_EducationSchool(t *testing.T) {
	doc := Default()
	if len(doc.Education) != 2 {
		t.Fatalf("expected 2 education entries in default, got %d", len(doc.Education))
	}
	before := doc.Education

	result, err := SetEntryField(doc, SectionEducation, 0, "school", "Porto Polytechnic")
	if err != nil {
		t.Fatalf("SetEntryField failed: %v", err)
	}

	if len(result.Education) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Education))
	}
	if result.Education[1] != before[1] {
		t.Errorf("index 1 changed: %+v", result.Education[1])
	}

	want := before[0]
	want.School = "Porto Polytechnic"
	if result.Education[0] != want {
		t.Errorf("index 0 = %+v, want %+v", result.Education[0], want)
	}
	if doc.Education[0].School == "Porto Polytechnic" {
		t.Error("input list was modified in place")
	}
}

func TestSetEntryField_WorkTitleIsolation(t *testing.T) {
	doc := Default()

	result, err := SetEntryField(doc, SectionWork, 0, "title", "Staff Engineer")
	if err != nil {
		t.Fatalf("SetEntryField failed: %v", err)
	}

	if result.Work[0].Title != "Staff Engineer" {
		t.Errorf("expected new title, got %s", result.Work[0].Title)
	}
	if !reflect.DeepEqual(result.Work[1], doc.Work[1]) {
		t.Error("work[1] changed")
	}
	if !sameBacking(result.Work[1].Badges, doc.Work[1].Badges) {
		t.Error("work[1].badges lost its identity")
	}
	if sameBacking(result.Work, doc.Work) {
		t.Error("work list should be a new copy")
	}
	if !sameBacking(result.Education, doc.Education) {
		t.Error("education lost its identity")
	}
	if !sameBacking(result.Skills.Core, doc.Skills.Core) ||
		!sameBacking(result.Skills.Familiar, doc.Skills.Familiar) ||
		!sameBacking(result.Skills.Tools, doc.Skills.Tools) {
		t.Error("skills lost their identity")
	}
	if !sameBacking(result.Projects, doc.Projects) {
		t.Error("projects lost their identity")
	}
}

func TestSetEntryField_Tags(t *testing.T) {
	doc := Default()

	result, err := SetEntryField(doc, SectionProjects, 0, "techStack", []string{"Go"})
	if err != nil {
		t.Fatalf("SetEntryField failed: %v", err)
	}
	if !reflect.DeepEqual(result.Projects[0].TechStack, []string{"Go"}) {
		t.Errorf("unexpected tech stack %v", result.Projects[0].TechStack)
	}
	if result.Projects[0].Title != doc.Projects[0].Title {
		t.Error("title changed")
	}
}

func TestSetEntryField_ProjectLinkIsARecord(t *testing.T) {
	doc := Default()

	result, err := SetEntryField(doc, SectionProjects, 0, "link.href", "https://example.org")
	if err != nil {
		t.Fatalf("SetEntryField failed: %v", err)
	}
	if result.Projects[0].Link.Href != "https://example.org" {
		t.Errorf("unexpected href %s", result.Projects[0].Link.Href)
	}
	if result.Projects[0].Link.Label != doc.Projects[0].Link.Label {
		t.Error("label changed")
	}
}

func TestSetEntryField_Errors(t *testing.T) {
	doc := Default()

	tests := []struct {
		name    string
		section Section
		index   int
		field   string
		value   any
		wantErr error
	}{
		{name: "unknown section", section: "hobbies", index: 0, field: "name", value: "x", wantErr: ErrUnknownSection},
		{name: "negative index", section: SectionWork, index: -1, field: "title", value: "x", wantErr: ErrIndexOutOfRange},
		{name: "index past end", section: SectionEducation, index: 2, field: "school", value: "x", wantErr: ErrIndexOutOfRange},
		{name: "unknown field", section: SectionWork, index: 0, field: "salary", value: "x", wantErr: ErrPathNotFound},
		{name: "string for tags", section: SectionWork, index: 0, field: "badges", value: "x", wantErr: ErrValueType},
		{name: "tags for string", section: SectionSocial, index: 0, field: "url", value: []string{"x"}, wantErr: ErrValueType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SetEntryField(doc, tt.section, tt.index, tt.field, tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !reflect.DeepEqual(result, doc) {
				t.Error("failed edit changed the document")
			}
		})
	}
}

func TestAppendAndRemoveEntry(t *testing.T) {
	doc := Default()

	added, err := AppendEntry(doc, SectionWork)
	if err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}
	if len(added.Work) != len(doc.Work)+1 {
		t.Fatalf("expected %d entries, got %d", len(doc.Work)+1, len(added.Work))
	}
	last := added.Work[len(added.Work)-1]
	if last.Company != "" || last.Badges == nil {
		t.Errorf("expected empty normalized entry, got %+v", last)
	}
	if len(doc.Work) != 2 {
		t.Error("input list was modified")
	}

	removed, err := RemoveEntry(added, SectionWork, 0)
	if err != nil {
		t.Fatalf("RemoveEntry failed: %v", err)
	}
	if len(removed.Work) != len(doc.Work) {
		t.Fatalf("expected %d entries, got %d", len(doc.Work), len(removed.Work))
	}
	if !reflect.DeepEqual(removed.Work[0], doc.Work[1]) {
		t.Errorf("expected former work[1] first, got %+v", removed.Work[0])
	}

	if _, err := RemoveEntry(doc, SectionProjects, 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestEntryValueAndCount(t *testing.T) {
	doc := Default()

	if got := EntryCount(doc, SectionSocial); got != len(doc.Contact.Social) {
		t.Errorf("EntryCount = %d, want %d", got, len(doc.Contact.Social))
	}
	if got := EntryCount(doc, "nope"); got != 0 {
		t.Errorf("EntryCount of unknown section = %d", got)
	}

	v, err := EntryValue(doc, SectionSocial, 1, "name")
	if err != nil {
		t.Fatalf("EntryValue failed: %v", err)
	}
	if v != doc.Contact.Social[1].Name {
		t.Errorf("EntryValue = %v, want %s", v, doc.Contact.Social[1].Name)
	}
}

func TestDecodeEntryValue(t *testing.T) {
	v, err := DecodeEntryValue(SectionWork, "badges", "Remote, Contract")
	if err != nil {
		t.Fatalf("DecodeEntryValue failed: %v", err)
	}
	if !reflect.DeepEqual(v, []string{"Remote", "Contract"}) {
		t.Errorf("unexpected badges %#v", v)
	}

	v, err = DecodeEntryValue(SectionWork, "description", "line one\nline two")
	if err != nil {
		t.Fatalf("DecodeEntryValue failed: %v", err)
	}
	if v != "line one\nline two" {
		t.Errorf("unexpected description %#v", v)
	}

	if _, err := DecodeEntryValue(SectionWork, "salary", "1"); !errors.Is(err, ErrPathNotFound) {
		t.Errorf("expected ErrPathNotFound, got %v", err)
	}
}

func TestNormalize_KeepsIdentityOfNonNilLists(t *testing.T) {
	doc := Default()
	doc.Skills.Tools = nil

	result := Normalize(doc)

	if result.Skills.Tools == nil {
		t.Error("expected tools to be an empty list")
	}
	if !sameBacking(result.Work, doc.Work) || !sameBacking(result.Skills.Core, doc.Skills.Core) {
		t.Error("non-nil lists were reallocated")
	}
}

func TestWorkPeriod(t *testing.T) {
	tests := []struct {
		work Work
		want string
	}{
		{Work{Start: "2020", End: "2022"}, "2020 – 2022"},
		{Work{Start: "2022"}, "2022 – Present"},
	}
	for _, tt := range tests {
		if got := tt.work.Period(); got != tt.want {
			t.Errorf("Period() = %q, want %q", got, tt.want)
		}
	}
}
