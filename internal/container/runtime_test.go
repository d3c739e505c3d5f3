// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package container

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runnableCmds  map[string]bool // "bin arg1 arg2" -> whether RunSilent succeeds
	outputFunc    func(name string, args []string, stdout io.Writer) error
	lastArgs      []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunSilent(name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if m.runnableCmds[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (m *mockExecutor) RunOutput(name string, args []string, stdout io.Writer) error {
	m.lastArgs = append([]string{name}, args...)
	if m.outputFunc != nil {
		return m.outputFunc(name, args, stdout)
	}
	return nil
}

func TestDetectRuntime(t *testing.T) {
	tests := []struct {
		name     string
		exec     *mockExecutor
		wantName string
		wantErr  bool
	}{
		{
			name: "docker available",
			exec: &mockExecutor{
				availableBins: map[string]bool{"docker": true},
				runnableCmds:  map[string]bool{"docker info": true},
			},
			wantName: "docker",
		},
		{
			name: "podman fallback when docker missing",
			exec: &mockExecutor{
				availableBins: map[string]bool{"podman": true},
				runnableCmds:  map[string]bool{"podman info": true},
			},
			wantName: "podman",
		},
		{
			name: "docker on PATH but info fails, podman works",
			exec: &mockExecutor{
				availableBins: map[string]bool{"docker": true, "podman": true},
				runnableCmds:  map[string]bool{"podman info": true},
			},
			wantName: "podman",
		},
		{
			name: "both available, docker preferred",
			exec: &mockExecutor{
				availableBins: map[string]bool{"docker": true, "podman": true},
				runnableCmds:  map[string]bool{"docker info": true, "podman info": true},
			},
			wantName: "docker",
		},
		{
			name:    "neither available",
			exec:    &mockExecutor{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := detectRuntime(tt.exec)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "no container runtime available")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, rt.Name())
		})
	}
}

func TestImageExists(t *testing.T) {
	const image = "minidocks/poppler:latest"
	tests := []struct {
		name    string
		bin     string
		cmds    map[string]bool
		wantErr bool
	}{
		{"docker image exists", "docker", map[string]bool{"docker image inspect " + image: true}, false},
		{"docker image missing", "docker", nil, true},
		{"podman image exists", "podman", map[string]bool{"podman image exists " + image: true}, false},
		{"podman image missing", "podman", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newRuntime(tt.bin, &mockExecutor{runnableCmds: tt.cmds})
			err := rt.ImageExists(image)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), image)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRun(t *testing.T) {
	exec := &mockExecutor{
		outputFunc: func(name string, args []string, stdout io.Writer) error {
			_, err := stdout.Write([]byte("問1 本文"))
			return err
		},
	}
	rt := newRuntime("podman", exec)

	var out bytes.Buffer
	err := rt.Run("poppler", "/srv/pdf", []string{"pdftotext", "/data/a.pdf", "-"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "問1 本文", out.String())
	assert.Equal(t, []string{
		"podman", "run", "--rm", "-v", "/srv/pdf:/data:ro", "poppler",
		"pdftotext", "/data/a.pdf", "-",
	}, exec.lastArgs)
}

func TestRun_Failure(t *testing.T) {
	exec := &mockExecutor{
		outputFunc: func(string, []string, io.Writer) error {
			return errors.New("container exited with code 1")
		},
	}
	rt := newRuntime("docker", exec)

	err := rt.Run("poppler", "/srv", nil, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running docker container poppler")
}
