package ingest

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfa-labs/finance-tracker/internal/extract"
)

// fakeExtractor records the artifact path it was handed and returns canned
// results, optionally asserting the artifact exists at extraction time.
type fakeExtractor struct {
	t      *testing.T
	text   string
	err    error
	path   string
	called bool
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	f.called = true
	f.path = path
	if _, err := os.Stat(path); err != nil {
		f.t.Errorf("artifact missing during extraction: %v", err)
	}
	if f.err != nil {
		return extract.TextExtractionResult{}, f.err
	}
	return extract.TextExtractionResult{Text: f.text, Pages: 1, Method: "pdf-text"}, nil
}

func TestIngest_Success(t *testing.T) {
	dir := t.TempDir()
	fx := &fakeExtractor{t: t, text: "Date: 03/14/2024\nTotal: 45.00"}
	svc := NewService(fx, dir, nil)

	sg, err := svc.Ingest(context.Background(), &Upload{
		Filename: "receipt.pdf",
		Content:  strings.NewReader("%PDF-1.4 fake"),
	})
	require.NoError(t, err)

	require.NotNil(t, sg.Amount)
	assert.Equal(t, 45.00, *sg.Amount)
	require.NotNil(t, sg.Date)
	assert.Equal(t, "03/14/2024", *sg.Date)
	assert.Equal(t, "expense", sg.Type)
	assert.Equal(t, fx.text, sg.RawText)
}

func TestIngest_ArtifactKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	fx := &fakeExtractor{t: t, text: "Total 5.00"}
	svc := NewService(fx, dir, nil)

	_, err := svc.Ingest(context.Background(), &Upload{Filename: "scan.JPG", Content: strings.NewReader("bytes")})
	require.NoError(t, err)

	require.True(t, fx.called)
	assert.Equal(t, ".JPG", filepath.Ext(fx.path))
	assert.Equal(t, dir, filepath.Dir(fx.path))
	assert.NotEqual(t, "scan.JPG", filepath.Base(fx.path))
}

func TestIngest_ArtifactRemovedOnSuccess(t *testing.T) {
	dir := t.TempDir()
	fx := &fakeExtractor{t: t, text: "Total 5.00"}
	svc := NewService(fx, dir, nil)

	_, err := svc.Ingest(context.Background(), &Upload{Filename: "r.pdf", Content: strings.NewReader("bytes")})
	require.NoError(t, err)

	_, statErr := os.Stat(fx.path)
	assert.True(t, os.IsNotExist(statErr), "artifact should be removed after ingestion")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestIngest_ArtifactRemovedOnExtractionFailure(t *testing.T) {
	dir := t.TempDir()
	fx := &fakeExtractor{t: t, err: errors.New("tool rejected input")}
	svc := NewService(fx, dir, nil)

	_, err := svc.Ingest(context.Background(), &Upload{Filename: "bad.png", Content: strings.NewReader("not an image")})
	require.Error(t, err)

	entries, rdErr := os.ReadDir(dir)
	require.NoError(t, rdErr)
	assert.Empty(t, entries, "artifact should be removed after a failed ingestion")
}

func TestIngest_NoFile(t *testing.T) {
	svc := NewService(&fakeExtractor{t: t}, t.TempDir(), nil)

	_, err := svc.Ingest(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = svc.Ingest(context.Background(), &Upload{Filename: "r.pdf"})
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestIngest_ErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		extErr  error
		wantErr error
	}{
		{"corrupt file", errors.New("exit status 1: not a PDF"), ErrUnsupportedFile},
		{"missing binary", exec.ErrNotFound, ErrExtractionFailed},
		{"wrapped missing binary", errors.Join(errors.New("run pdftotext"), exec.ErrNotFound), ErrExtractionFailed},
		{"deadline exceeded", context.DeadlineExceeded, ErrExtractionFailed},
		{"cancelled", context.Canceled, ErrExtractionFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(&fakeExtractor{t: t, err: tc.extErr}, t.TempDir(), nil)
			_, err := svc.Ingest(context.Background(), &Upload{Filename: "r.pdf", Content: strings.NewReader("x")})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestIngest_NoInferableFieldsStillSucceeds(t *testing.T) {
	svc := NewService(&fakeExtractor{t: t, text: "Thank you for shopping"}, t.TempDir(), nil)

	sg, err := svc.Ingest(context.Background(), &Upload{Filename: "r.png", Content: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Nil(t, sg.Amount)
	assert.Nil(t, sg.Date)
	assert.Equal(t, "Uncategorized", sg.Category)
}
