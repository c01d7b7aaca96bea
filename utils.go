package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/atotto/clipboard"

	"flowpaint/diagrams"
)

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func (m *model) selected() (diagrams.Definition, bool) {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.diagrams) {
		return diagrams.Definition{}, false
	}
	return m.diagrams[m.selectedIndex], true
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}
