package commands

import (
	"testing"

	"resumedit/internal/adapters/filesystem"
	"resumedit/internal/application"
	"resumedit/internal/logging"
)

func newTestStore(t *testing.T, opts ...application.StoreOption) *application.Store {
	t.Helper()
	kv, err := filesystem.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	p := application.NewPersistence(kv, "", logging.Discard())
	return application.NewStore(p, logging.Discard(), opts...)
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}
