// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConverter returns canned text or an error.
type fakeConverter struct {
	output string
	err    error
}

func (f *fakeConverter) Convert(string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

// selectiveConverter returns different results per file path.
type selectiveConverter struct {
	outputs map[string]string
	errors  map[string]error
}

func (s *selectiveConverter) Convert(pdfPath string) (string, error) {
	if err, ok := s.errors[pdfPath]; ok {
		return "", err
	}
	if out, ok := s.outputs[pdfPath]; ok {
		return out, nil
	}
	return "", errors.New("unexpected path: " + pdfPath)
}

// fakeRuntime implements container.Runtime.
type fakeRuntime struct {
	imageErr error
	runErr   error
	output   string
	hostDir  string
	args     []string
}

func (f *fakeRuntime) Name() string                 { return "docker" }
func (f *fakeRuntime) Available() bool              { return true }
func (f *fakeRuntime) ImageExists(string) error     { return f.imageErr }
func (f *fakeRuntime) Run(image, hostDir string, args []string, stdout io.Writer) error {
	f.hostDir = hostDir
	f.args = args
	if f.runErr != nil {
		return f.runErr
	}
	_, err := stdout.Write([]byte(f.output))
	return err
}

// setupPDF creates pdf/<name> under a temp dir and returns its path and the
// temp dir.
func setupPDF(t *testing.T, name string) (pdfPath, tmpDir string) {
	t.Helper()
	tmpDir = t.TempDir()
	pdfDir := filepath.Join(tmpDir, "pdf")
	require.NoError(t, os.MkdirAll(pdfDir, 0o755))
	pdfPath = filepath.Join(pdfDir, name)
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.7"), 0o644))
	return pdfPath, tmpDir
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name       string
		converter  *fakeConverter
		preCreate  bool
		wantStatus Status
		wantLog    string
	}{
		{
			name:       "successful conversion",
			converter:  &fakeConverter{output: "令和5年4月1日\n問1 質問\n"},
			wantStatus: StatusConverted,
			wantLog:    "converted:",
		},
		{
			name:       "skip existing text",
			converter:  &fakeConverter{output: "should not be used"},
			preCreate:  true,
			wantStatus: StatusSkipped,
			wantLog:    "skipped:",
		},
		{
			name:       "conversion failure",
			converter:  &fakeConverter{err: errors.New("bad xref table")},
			wantStatus: StatusFailed,
			wantLog:    "failed:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath, tmpDir := setupPDF(t, "r5_0401.pdf")
			inputDir := filepath.Join(tmpDir, "input")

			if tt.preCreate {
				require.NoError(t, os.MkdirAll(inputDir, 0o755))
				require.NoError(t, os.WriteFile(filepath.Join(inputDir, "r5_0401.txt"), []byte("existing"), 0o644))
			}

			var log bytes.Buffer
			status := ConvertFile(tt.converter, pdfPath, inputDir, &log)

			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, log.String(), tt.wantLog)
		})
	}
}

func TestConvertFile_WritesRawText(t *testing.T) {
	pdfPath, tmpDir := setupPDF(t, "doc.PDF")
	inputDir := filepath.Join(tmpDir, "input")
	text := "令和5年4月1日\n問1 質問\n（答）回答\n"

	status := ConvertFile(&fakeConverter{output: text}, pdfPath, inputDir, io.Discard)
	require.Equal(t, StatusConverted, status)

	data, err := os.ReadFile(filepath.Join(inputDir, "doc.txt"))
	require.NoError(t, err)
	assert.Equal(t, text, string(data))
}

func TestConvertPaths(t *testing.T) {
	tmpDir := t.TempDir()
	pdfDir := filepath.Join(tmpDir, "pdf")
	inputDir := filepath.Join(tmpDir, "input")
	require.NoError(t, os.MkdirAll(pdfDir, 0o755))
	require.NoError(t, os.MkdirAll(inputDir, 0o755))

	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(pdfDir, name), []byte("pdf"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "b.txt"), []byte("existing"), 0o644))

	conv := &selectiveConverter{
		outputs: map[string]string{
			filepath.Join(pdfDir, "a.pdf"): "問1 a",
			filepath.Join(pdfDir, "b.pdf"): "問1 b",
		},
		errors: map[string]error{
			filepath.Join(pdfDir, "c.pdf"): errors.New("encrypted"),
		},
	}

	paths, err := FindPDFs(pdfDir)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	var log bytes.Buffer
	result := ConvertPaths(conv, paths, inputDir, &log)

	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total())
	assert.True(t, result.HasFailures())
	assert.Contains(t, log.String(), "Batch summary:")
}

func TestFindPDFs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "A.PDF", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755))

	paths, err := FindPDFs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "A.PDF"), filepath.Join(dir, "b.pdf")}, paths)

	_, err = FindPDFs(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestPdftotextConverter(t *testing.T) {
	pdfPath, _ := setupPDF(t, "a.pdf")

	orig := runCommand
	t.Cleanup(func() { runCommand = orig })

	var gotName string
	var gotArgs []string
	runCommand = func(name string, args []string, stdout io.Writer) error {
		gotName, gotArgs = name, args
		_, err := stdout.Write([]byte("問1 本文\n"))
		return err
	}

	p := &PdftotextConverter{bin: "/usr/bin/pdftotext"}
	text, err := p.Convert(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, "問1 本文\n", text)
	assert.Equal(t, "/usr/bin/pdftotext", gotName)
	assert.Equal(t, []string{"-layout", "-enc", "UTF-8", pdfPath, "-"}, gotArgs)
}

func TestPdftotextConverter_Errors(t *testing.T) {
	pdfPath, _ := setupPDF(t, "a.pdf")

	orig := runCommand
	t.Cleanup(func() { runCommand = orig })

	p := &PdftotextConverter{bin: "pdftotext"}

	_, err := p.Convert(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)

	runCommand = func(string, []string, io.Writer) error { return errors.New("exit status 1") }
	_, err = p.Convert(pdfPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "converting")

	runCommand = func(_ string, _ []string, stdout io.Writer) error {
		_, err := stdout.Write([]byte("  \n\f"))
		return err
	}
	_, err = p.Convert(pdfPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty output")
}

func TestContainerConverter(t *testing.T) {
	pdfPath, _ := setupPDF(t, "r5.pdf")

	rt := &fakeRuntime{output: "令和5年4月1日\n"}
	c, err := NewContainerConverter(rt, "poppler")
	require.NoError(t, err)

	text, err := c.Convert(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, "令和5年4月1日\n", text)

	abs, err := filepath.Abs(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(abs), rt.hostDir)
	assert.Equal(t, []string{"pdftotext", "-layout", "-enc", "UTF-8", "/data/r5.pdf", "-"}, rt.args)
}

func TestContainerConverter_Errors(t *testing.T) {
	_, err := NewContainerConverter(&fakeRuntime{imageErr: errors.New("no such image")}, "poppler")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not available in docker"))

	pdfPath, _ := setupPDF(t, "r5.pdf")
	c, err := NewContainerConverter(&fakeRuntime{runErr: errors.New("exit 1")}, "poppler")
	require.NoError(t, err)
	_, err = c.Convert(pdfPath)
	assert.Error(t, err)
}
