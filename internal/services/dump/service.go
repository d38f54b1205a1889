package dump

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"nvramgen/internal/domain"
)

// stanzaPattern matches a line that starts a new name=value pair. The name
// charset matches what the export feature itself emits: word characters
// plus '.', ':', '/' and '-'.
var stanzaPattern = regexp.MustCompile(`^([A-Za-z0-9_.:/-]+)=(.*)$`)

// epiloguePattern matches the free-text trailer some builds append after
// the last value, e.g. "---\n63851 bytes, 16533 left".
var epiloguePattern = regexp.MustCompile(`\n---\n[\w\s,.]*$`)

// Service parses dump text. The zero value is not usable; call New.
type Service struct {
	log *logrus.Logger
}

// New returns a parser logging skipped input to log.
func New(log *logrus.Logger) *Service { return &Service{log: log} }

// Parse builds an ordered Dump from text.
//
// Lines that start a name=value stanza open a new pair; any other line
// continues the previous pair's value with a literal newline. Lines before
// the first stanza are malformed and skipped. Duplicate names keep the last
// value at the first occurrence's position.
func (s *Service) Parse(text string) (*domain.Dump, error) {
	text = epiloguePattern.ReplaceAllString(text, "")
	text = strings.TrimSuffix(text, "\n")

	d := domain.NewDump()
	var name string
	var value []string
	open := false

	flush := func() {
		if open {
			d.Set(name, strings.Join(value, "\n"))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := stanzaPattern.FindStringSubmatch(line); m != nil {
			flush()
			name = m[1]
			value = append(value[:0], m[2])
			open = true
			continue
		}
		if open {
			value = append(value, line)
			continue
		}
		if strings.TrimSpace(line) != "" {
			s.log.WithField("line", line).Debug("skipping malformed dump line")
		}
	}
	flush()

	s.log.WithField("settings", d.Len()).Debug("parsed dump")
	return d, nil
}
