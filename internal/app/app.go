package app

import (
	"nvramgen/internal/domain"
)

// App holds the wired pipeline services.
type App struct {
	Dumps    domain.DumpParser
	Diffs    domain.Differ
	Sections domain.Classifier
	Script   domain.Renderer
	Files    domain.Workspace
}

func New(
	dumps domain.DumpParser,
	diffs domain.Differ,
	sections domain.Classifier,
	script domain.Renderer,
	files domain.Workspace,
) *App {
	return &App{
		Dumps:    dumps,
		Diffs:    diffs,
		Sections: sections,
		Script:   script,
		Files:    files,
	}
}
