package app

import (
	"nvramgen/internal/domain"
)

// Result summarizes one generate run.
type Result struct {
	// Count is the number of settings written as nvram set lines.
	Count int
	// Path is the output file the script was written to.
	Path string
}

// Generate runs the full pipeline: read and parse both dumps, diff them,
// classify the changes, render the script and write it to cfg.Output.
func (a *App) Generate(cfg Config) (Result, error) {
	changes, err := a.Changes(cfg)
	if err != nil {
		return Result{}, err
	}
	text, count := a.Script.Render(changes)
	if err := a.Files.WriteScript(cfg.Output, text); err != nil {
		return Result{}, err
	}
	return Result{Count: count, Path: cfg.Output}, nil
}

// RawDiff parses both dumps and returns the unfiltered diff in the current
// dump's insertion order.
func (a *App) RawDiff(cfg Config) ([]domain.Setting, error) {
	current, err := a.parseFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	defaults, err := a.parseFile(cfg.Base)
	if err != nil {
		return nil, err
	}
	return a.Diffs.Diff(current, defaults), nil
}

// Changes computes the classified change set for cfg without rendering,
// dropping names the classifier ignores.
func (a *App) Changes(cfg Config) ([]domain.Change, error) {
	settings, err := a.RawDiff(cfg)
	if err != nil {
		return nil, err
	}

	var changes []domain.Change
	for _, setting := range settings {
		if a.Sections.Ignored(setting.Name) {
			continue
		}
		changes = append(changes, domain.Change{
			Setting: setting,
			Section: a.Sections.Classify(setting.Name),
		})
	}
	return changes, nil
}

func (a *App) parseFile(path string) (*domain.Dump, error) {
	text, err := a.Files.ReadDump(path)
	if err != nil {
		return nil, err
	}
	return a.Dumps.Parse(text)
}
