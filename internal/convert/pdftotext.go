// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/tensu-corpus/internal/container"
)

const binPdftotext = "pdftotext"

// pdftotextArgs keeps the page layout so question markers stay at line
// starts, and forces UTF-8 output.
var pdftotextArgs = []string{"-layout", "-enc", "UTF-8"}

// runCommand executes a local binary. Tests replace it.
var runCommand = func(name string, args []string, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	return cmd.Run()
}

// PdftotextConverter runs the pdftotext binary found on PATH.
type PdftotextConverter struct {
	bin string
}

// NewPdftotextConverter locates pdftotext on PATH.
func NewPdftotextConverter() (*PdftotextConverter, error) {
	bin, err := exec.LookPath(binPdftotext)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", binPdftotext, err)
	}
	return &PdftotextConverter{bin: bin}, nil
}

// Convert runs pdftotext on pdfPath and returns its standard output.
func (p *PdftotextConverter) Convert(pdfPath string) (string, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}

	args := append(append([]string{}, pdftotextArgs...), pdfPath, "-")
	var out bytes.Buffer
	if err := runCommand(p.bin, args, &out); err != nil {
		return "", fmt.Errorf("converting %s with pdftotext: %w", pdfPath, err)
	}
	return checkOutput(out.String(), pdfPath)
}

// ContainerConverter runs pdftotext inside a container image through a
// container.Runtime injected at construction time.
type ContainerConverter struct {
	runtime container.Runtime
	image   string
}

// NewContainerConverter verifies that image exists in rt before returning.
func NewContainerConverter(rt container.Runtime, image string) (*ContainerConverter, error) {
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("pdftotext image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerConverter{runtime: rt, image: image}, nil
}

// Convert mounts the PDF's directory into the container and returns the
// text pdftotext writes to stdout.
func (c *ContainerConverter) Convert(pdfPath string) (string, error) {
	abs, err := filepath.Abs(pdfPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", pdfPath, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}

	args := []string{binPdftotext}
	args = append(args, pdftotextArgs...)
	args = append(args, container.MountPoint+"/"+filepath.Base(abs), "-")

	var out bytes.Buffer
	if err := c.runtime.Run(c.image, filepath.Dir(abs), args, &out); err != nil {
		return "", fmt.Errorf("converting %s in container: %w", pdfPath, err)
	}
	return checkOutput(out.String(), pdfPath)
}

func checkOutput(text, pdfPath string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("pdftotext produced empty output for %s", pdfPath)
	}
	return text, nil
}
