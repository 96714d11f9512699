package views

import (
	"testing"

	"resumedit/internal/application"
	"resumedit/internal/domain"
)

func TestResetModel_Confirm(t *testing.T) {
	store := newTestStore(t, application.WithInitialMode(application.ModeEditing))
	if _, err := store.ApplyEdit(t.Context(), domain.PathName, "Changed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := NewResetModel(store)
	_, cmd := m.Update(runes("y"))

	if _, ok := run(cmd).(ResetDoneMsg); !ok {
		t.Fatalf("expected ResetDoneMsg, got %T", run(cmd))
	}
	if store.Current().Name != domain.Default().Name {
		t.Errorf("expected default name, got %q", store.Current().Name)
	}
}

func TestResetModel_Cancel(t *testing.T) {
	store := newTestStore(t, application.WithInitialMode(application.ModeEditing))
	m := NewResetModel(store)

	_, cmd := m.Update(runes("n"))
	if _, ok := run(cmd).(SwitchToResumeMsg); !ok {
		t.Error("n should cancel")
	}
}

func TestResetModel_NotEditing(t *testing.T) {
	store := newTestStore(t)
	m := NewResetModel(store)

	_, cmd := m.Update(runes("y"))
	m.Update(run(cmd))

	if !m.MessageErr {
		t.Error("expected error outside editing mode")
	}
}
