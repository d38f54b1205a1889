package app

import (
	"fmt"

	"github.com/spf13/viper"

	"nvramgen/internal/domain"
)

// Default file names of the zero-argument invocation.
const (
	DefaultInput  = "nvram.txt"
	DefaultBase   = "defaults.txt"
	DefaultOutput = "set-nvram.sh"
)

// Config holds one run's file paths and options.
type Config struct {
	Input  string // current dump
	Base   string // defaults dump
	Output string // generated script
	Commit bool   // append the nvram commit trailer
}

// ruleConfig is the config-file shape of a custom classification rule.
type ruleConfig struct {
	Title    string   `mapstructure:"title"`
	Match    string   `mapstructure:"match"`
	Patterns []string `mapstructure:"patterns"`
}

// SetDefaults registers every config key with its default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", DefaultInput)
	v.SetDefault("base", DefaultBase)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("commit", true)
	v.SetDefault("sections", []ruleConfig{})
}

// ConfigFromViper builds a Config from v's current settings.
func ConfigFromViper(v *viper.Viper) Config {
	return Config{
		Input:  v.GetString("input"),
		Base:   v.GetString("base"),
		Output: v.GetString("output"),
		Commit: v.GetBool("commit"),
	}
}

// CustomRules decodes user-supplied classification rules from v. Rules with
// an unknown match kind are rejected so misspellings do not silently route
// keys to Other.
func CustomRules(v *viper.Viper) ([]domain.ClassificationRule, error) {
	var raw []ruleConfig
	if err := v.UnmarshalKey("sections", &raw); err != nil {
		return nil, fmt.Errorf("parse sections config: %w", err)
	}
	rules := make([]domain.ClassificationRule, 0, len(raw))
	for _, r := range raw {
		var kind domain.MatchKind
		switch r.Match {
		case "exact":
			kind = domain.MatchExact
		case "prefix", "":
			kind = domain.MatchPrefix
		case "names":
			kind = domain.MatchNames
		default:
			return nil, fmt.Errorf("sections config: unknown match kind %q", r.Match)
		}
		rules = append(rules, domain.ClassificationRule{
			Kind:     kind,
			Patterns: r.Patterns,
			Title:    r.Title,
		})
	}
	return rules, nil
}
