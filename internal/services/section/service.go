package section

import (
	"github.com/sirupsen/logrus"

	"nvramgen/internal/domain"
)

// Service classifies setting names against the rule table.
type Service struct {
	log   *logrus.Logger
	rules []domain.ClassificationRule
	ranks map[string]int
	other domain.Section
}

// New returns a classifier over the built-in table followed by any custom
// rules from the user's config file. Custom rules are consulted after the
// built-ins, so they can add sections but not shadow them; their sections
// rank after the built-in sections and before Other.
func New(log *logrus.Logger, custom ...domain.ClassificationRule) *Service {
	rules := make([]domain.ClassificationRule, 0, len(builtinRules)+len(custom))
	rules = append(rules, builtinRules...)
	rules = append(rules, custom...)

	ranks := make(map[string]int, len(rules))
	for _, r := range rules {
		if _, ok := ranks[r.Title]; !ok {
			ranks[r.Title] = len(ranks)
		}
	}

	return &Service{
		log:   log,
		rules: rules,
		ranks: ranks,
		other: domain.Section{Title: OtherTitle, Rank: len(ranks)},
	}
}

// Classify resolves name to a section. Every name resolves; names matched
// by no rule land in Other.
func (s *Service) Classify(name string) domain.Section {
	for _, r := range s.rules {
		if r.Matches(name) {
			return domain.Section{Title: r.Title, Rank: s.ranks[r.Title]}
		}
	}
	return s.other
}

// Ignored reports whether name is excluded from script output entirely.
func (s *Service) Ignored(name string) bool {
	if ignored.matches(name) {
		s.log.WithField("name", name).Debug("ignoring device-local setting")
		return true
	}
	return false
}

// Sections lists every known section in rank order, Other last.
func (s *Service) Sections() []domain.Section {
	out := make([]domain.Section, len(s.ranks)+1)
	for title, rank := range s.ranks {
		out[rank] = domain.Section{Title: title, Rank: rank}
	}
	out[len(s.ranks)] = s.other
	return out
}
