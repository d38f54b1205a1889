package diffing

import (
	"github.com/sirupsen/logrus"

	"nvramgen/internal/domain"
)

// Service computes one-directional dump diffs.
type Service struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) *Service { return &Service{log: log} }

// Diff returns the settings of current that are absent from defaults or
// carry a different value, in current's insertion order. Values are
// compared as exact strings. Names present only in defaults are not
// reported; the result describes what changed in current.
func (s *Service) Diff(current, defaults *domain.Dump) []domain.Setting {
	var changed []domain.Setting
	for _, name := range current.Names() {
		value, _ := current.Get(name)
		if base, ok := defaults.Get(name); ok && base == value {
			continue
		}
		changed = append(changed, domain.Setting{Name: name, Value: value})
	}
	s.log.WithFields(logrus.Fields{
		"current":  current.Len(),
		"defaults": defaults.Len(),
		"changed":  len(changed),
	}).Debug("diffed dumps")
	return changed
}
