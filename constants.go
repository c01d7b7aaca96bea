package main

type Mode int

const (
	ModeBrowse Mode = iota
	ModeRendering
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmOverwriteFile ConfirmAction = iota
	ConfirmRenderAll
	ConfirmQuit
)

const (
	defaultConfigName = ".flowpaintrc.yaml"
	envPrefix         = "FLOWPAINT_"
	defaultDPI        = 300
	defaultPadding    = 0.2
)
