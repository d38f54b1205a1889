package script

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"nvramgen/internal/domain"
)

// Options controls optional parts of the rendered script.
type Options struct {
	// Commit appends the "# Save / nvram commit" trailer.
	Commit bool
}

// Service renders change sets as shell scripts.
type Service struct {
	log  *logrus.Logger
	opts Options
}

func New(log *logrus.Logger, opts Options) *Service {
	return &Service{log: log, opts: opts}
}

// Render produces the full script text for changes and the number of
// nvram set lines emitted under section headers.
//
// Sections appear in rank order and only when they have at least one item.
// Within a section, single-line commands come before multiline ones, each
// ordered by lowercased name. The https_crt_file setting renders as a
// certificate stanza after the sections instead of a plain nvram set line.
func (s *Service) Render(changes []domain.Change) (string, int) {
	var crtPayload string
	groups := make(map[int]*domain.Group)
	for _, c := range changes {
		if c.Name == crtFileName {
			crtPayload = c.Value
			continue
		}
		g, ok := groups[c.Section.Rank]
		if !ok {
			g = &domain.Group{Section: c.Section}
			groups[c.Section.Rank] = g
		}
		g.Items = append(g.Items, c.Setting)
	}

	ranks := make([]int, 0, len(groups))
	for rank := range groups {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	count := 0
	for _, rank := range ranks {
		writeGroup(&b, groups[rank])
		count += len(groups[rank].Items)
	}

	if crtPayload != "" {
		block, err := certificateBlock(crtPayload)
		if err != nil {
			s.log.WithError(err).Warn("skipping web GUI certificate block")
		} else {
			b.WriteString(block)
		}
	}

	if s.opts.Commit {
		b.WriteString("\n# Save\nnvram commit\n")
	}
	return b.String(), count
}

func writeGroup(b *strings.Builder, g *domain.Group) {
	items := append([]domain.Setting(nil), g.Items...)
	sort.SliceStable(items, func(i, j int) bool {
		mi, mj := items[i].Multiline(), items[j].Multiline()
		if mi != mj {
			return !mi
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	b.WriteString("\n# ")
	b.WriteString(g.Section.Title)
	b.WriteByte('\n')
	for _, item := range items {
		b.WriteString("nvram set ")
		b.WriteString(item.Name)
		b.WriteByte('=')
		b.WriteString(quote(item.Value))
		b.WriteByte('\n')
	}
}
