package main

import (
	"time"

	"flowpaint/diagrams"
)

type model struct {
	width          int
	height         int
	mode           Mode
	help           bool
	diagrams       []diagrams.Definition
	selectedIndex  int
	confirmAction  ConfirmAction
	pending        []diagrams.Definition // waiting for confirmation
	rendering      int                   // renders in flight
	outputs        map[string]string     // diagram name -> absolute output path
	lastPath       string
	errorMessage   string
	successMessage string
	config         *Config

	renderFn func(diagrams.Definition) (string, error)
	copyFn   func(string) error
	existsFn func(string) bool
}

// renderDoneMsg reports one finished render back to the picker.
type renderDoneMsg struct {
	name string
	path string
	took time.Duration
	err  error
}
