package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"resumedit/internal/application/commands"
	"resumedit/internal/domain"
)

func refFor(t *testing.T, doc domain.Document, rowKey string) commands.FieldRef {
	t.Helper()
	for _, r := range commands.ListFields(doc) {
		if r.Key == rowKey {
			return r
		}
	}
	t.Fatalf("no field %s", rowKey)
	return commands.FieldRef{}
}

func TestFieldEditModel_SingleLine(t *testing.T) {
	store := newTestStore(t)
	m := NewFieldEditModel(store, false)
	m.SetField(refFor(t, store.Current(), "name"))

	if m.Value() != store.Current().Name {
		t.Errorf("expected editor prefilled with %q, got %q", store.Current().Name, m.Value())
	}

	m.SetValue("Jordan Lee")
	_, cmd := m.Update(press(tea.KeyEnter))

	msg, ok := run(cmd).(FieldSavedMsg)
	if !ok {
		t.Fatalf("expected FieldSavedMsg, got %T", run(cmd))
	}
	if msg.Key != "name" {
		t.Errorf("unexpected key %s", msg.Key)
	}
	if store.Current().Name != "Jordan Lee" {
		t.Errorf("expected name to be saved, got %q", store.Current().Name)
	}
}

func TestFieldEditModel_TagsSavedUnchanged(t *testing.T) {
	store := newTestStore(t)
	want := []string{"Go", "REST, gRPC"}
	if _, err := store.ApplyEdit(t.Context(), domain.PathSkillsCore, want); err != nil {
		t.Fatalf("failed to seed tags: %v", err)
	}

	m := NewFieldEditModel(store, false)
	m.SetField(refFor(t, store.Current(), "skills.core"))
	_, cmd := m.Update(press(tea.KeyEnter))
	run(cmd)

	got := store.Current().Skills.Core
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("saving the unchanged field rewrote tags: %q", got)
	}
}

func TestFieldEditModel_Tags(t *testing.T) {
	store := newTestStore(t)
	m := NewFieldEditModel(store, false)
	m.SetField(refFor(t, store.Current(), "work[0].badges"))

	m.SetValue("Remote, Contract")
	_, cmd := m.Update(press(tea.KeyEnter))
	run(cmd)

	got := store.Current().Work[0].Badges
	if len(got) != 2 || got[1] != "Contract" {
		t.Errorf("unexpected badges %v", got)
	}
}

func TestFieldEditModel_Multiline(t *testing.T) {
	store := newTestStore(t)
	m := NewFieldEditModel(store, false)
	m.SetField(refFor(t, store.Current(), "summary"))

	original := m.Value()
	m.Update(press(tea.KeyEnter))
	if m.Value() == original {
		t.Fatal("enter should insert a line break in a multi-line field")
	}
	if store.Current().Summary != original {
		t.Fatal("enter should not save a multi-line field")
	}

	m.SetValue("First\n\nSecond")
	_, cmd := m.Update(press(tea.KeyCtrlS))
	if _, ok := run(cmd).(FieldSavedMsg); !ok {
		t.Fatal("ctrl+s should save")
	}
	if store.Current().Summary != "First\n\nSecond" {
		t.Errorf("unexpected summary %q", store.Current().Summary)
	}
}

func TestFieldEditModel_Cancel(t *testing.T) {
	store := newTestStore(t)
	m := NewFieldEditModel(store, false)
	m.SetField(refFor(t, store.Current(), "about"))
	m.SetValue("Changed")

	_, cmd := m.Update(press(tea.KeyEsc))
	if _, ok := run(cmd).(SwitchToResumeMsg); !ok {
		t.Error("esc should return to the résumé")
	}
	if store.Current().About == "Changed" {
		t.Error("cancel should not save")
	}
}

func TestFieldEditModel_ExternalEditor(t *testing.T) {
	store := newTestStore(t)

	m := NewFieldEditModel(store, false)
	m.SetField(refFor(t, store.Current(), "summary"))
	_, cmd := m.Update(press(tea.KeyCtrlE))
	if cmd != nil {
		t.Error("ctrl+e without an editor should not run a command")
	}
	if !m.MessageErr {
		t.Error("expected an error message")
	}

	m = NewFieldEditModel(store, true)
	m.SetField(refFor(t, store.Current(), "summary"))
	_, cmd = m.Update(press(tea.KeyCtrlE))
	msg, ok := run(cmd).(OpenEditorMsg)
	if !ok {
		t.Fatalf("expected OpenEditorMsg, got %T", run(cmd))
	}
	if msg.Text != store.Current().Summary {
		t.Error("editor should receive the current text")
	}
}

func TestFieldEditModel_SaveErrorStays(t *testing.T) {
	store := newTestStore(t)
	m := NewFieldEditModel(store, false)
	m.SetField(commands.FieldRef{Key: "work[9].title", Section: domain.SectionWork, Index: 9, Field: "title"})

	_, cmd := m.Update(press(tea.KeyEnter))
	m.Update(run(cmd))

	if !m.MessageErr {
		t.Error("expected error message for out of range entry")
	}
}
