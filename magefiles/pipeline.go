package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert builds the CLI and converts every PDF in pdf/ into input/.
func Convert() error {
	mg.Deps(Build, Init)
	return sh.RunV(binPath, "convert", "--batch")
}

// Extract builds the CLI and splits every document in input/ into output/.
func Extract() error {
	mg.Deps(Build, Init)
	return sh.RunV(binPath, "extract")
}

// All runs conversion then extraction.
func All() {
	mg.SerialDeps(Convert, Extract)
}
