package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumedit/internal/domain"
	"resumedit/internal/logging"
	"resumedit/internal/ports"
)

func TestPersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemStore()
	p := NewPersistence(kv, "", logging.Discard())

	doc, err := domain.Update(domain.Default(), domain.PathSummary, "Line one\n\nLine two")
	require.NoError(t, err)
	doc, err = domain.SetEntryField(doc, domain.SectionWork, 1, "badges", []string{"Hybrid", "Go"})
	require.NoError(t, err)

	require.NoError(t, p.Save(ctx, doc))
	assert.Equal(t, doc, p.Load(ctx))
	assert.Equal(t, DefaultStorageKey, p.Key())
}

func TestPersistence_LoadFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name   string
		stored []byte
	}{
		{"nothing stored", nil},
		{"not json", []byte("{not json")},
		{"wrong shape", []byte(`{"name":1}`)},
		{"missing sections", []byte(`{"name":"A","initials":"A"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemStore()
			if tt.stored != nil {
				kv.data[DefaultStorageKey] = tt.stored
			}
			p := NewPersistence(kv, "", logging.Discard())

			assert.Equal(t, domain.Default(), p.Load(context.Background()))
		})
	}
}

func TestPersistence_ReadReportsParseError(t *testing.T) {
	kv := newMemStore()
	kv.data[DefaultStorageKey] = []byte("{not json")
	p := NewPersistence(kv, "", logging.Discard())

	_, err := p.read(context.Background())

	var parseErr *PersistenceParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, DefaultStorageKey, parseErr.Key)
	assert.True(t, errors.Is(err, ErrPersistence))
}

func TestPersistence_LoadKeepsUnknownKeys(t *testing.T) {
	data, err := json.Marshal(domain.Default())
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["avatarUrl"] = "https://example.com/a.png"
	raw["name"] = "Sam Rivera"
	data, err = json.Marshal(raw)
	require.NoError(t, err)

	kv := newMemStore()
	kv.data[DefaultStorageKey] = data
	p := NewPersistence(kv, "", logging.Discard())

	assert.Equal(t, "Sam Rivera", p.Load(context.Background()).Name)
}

func TestPersistence_Reset(t *testing.T) {
	ctx := context.Background()
	kv := newMemStore()
	p := NewPersistence(kv, "cv", logging.Discard())

	doc, err := domain.Update(domain.Default(), domain.PathName, "Changed")
	require.NoError(t, err)
	require.NoError(t, p.Save(ctx, doc))

	got, err := p.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Default(), got)

	_, err = kv.Get(ctx, "cv")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)
	assert.Equal(t, domain.Default(), p.Load(ctx))
}

func TestPersistence_ResetDeleteFailure(t *testing.T) {
	kv := newMemStore()
	kv.failDel = errDiskFull
	p := NewPersistence(kv, "", logging.Discard())

	got, err := p.Reset(context.Background())
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, domain.Default(), got)
}

func TestExportSnapshot_Format(t *testing.T) {
	doc := domain.Default()

	data, err := ExportSnapshot(doc)
	require.NoError(t, err)

	want, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(data))
	assert.Contains(t, string(data), "\n  \"name\": \"Alex Morgan\",\n")

	var parsed domain.Document
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, doc, parsed)
}
