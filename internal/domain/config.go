package domain

import (
	"fmt"
	"runtime"
)

// Config is the one-time, immutable configuration handed into the
// pipeline. It is assembled from defaults, an optional .kotolint.yaml,
// and CLI flag overrides, in that order, before any scanning starts.
type Config struct {
	MinSeverity string `yaml:"min_severity"`
	Jobs        int    `yaml:"jobs"`

	// Comments and Cache default to true; pointers distinguish
	// "unset" from an explicit false in the YAML file.
	Comments *bool `yaml:"comments"`
	Cache    *bool `yaml:"cache"`

	// Morph is tri-state: nil means auto-enable when the dictionary
	// loads, an explicit true forces it (unavailability becomes an
	// ERROR config issue), false disables it.
	Morph *bool `yaml:"morph"`

	Advanced bool `yaml:"advanced"`
	Strict   bool `yaml:"strict"`
	Spell    bool `yaml:"spell"`
	Grammar  bool `yaml:"grammar"`

	GrammarURL     string   `yaml:"grammar_url"`
	SpellThreshold int      `yaml:"spell_threshold"`
	Dict           []string `yaml:"dict"`
	Rules          []string `yaml:"rules"`
	ExcludePaths   []string `yaml:"exclude_paths"`

	// Advanced-rule thresholds.
	EmphThreshold     int `yaml:"emph_threshold"`
	LongSentenceLimit int `yaml:"long_sentence_limit"`
	StyleMixThreshold int `yaml:"style_mix_threshold"`

	KatakanaAllow []string `yaml:"katakana_allow"`
	KatakanaDeny  []string `yaml:"katakana_deny"`

	// EndParticlePolicy: "none", "warn" or "error".
	EndParticlePolicy string `yaml:"end_particle_policy"`
	// SentenceFinalPunctSeverity: severity name for the
	// sentence-final punctuation rule.
	SentenceFinalPunctSeverity string `yaml:"sentence_final_punct_severity"`

	FailOnIssue bool `yaml:"fail_on_issue"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		MinSeverity:                "INFO",
		Jobs:                       runtime.GOMAXPROCS(0),
		GrammarURL:                 "http://localhost:8010/v2/check",
		SpellThreshold:             90,
		EmphThreshold:              2,
		LongSentenceLimit:          100,
		StyleMixThreshold:          2,
		EndParticlePolicy:          "none",
		SentenceFinalPunctSeverity: "INFO",
	}
}

// Validate catches typos in user-supplied raw input before merging.
func (c Config) Validate() error {
	if _, err := ParseSeverity(c.MinSeverity); c.MinSeverity != "" && err != nil {
		return fmt.Errorf("min_severity: %w", err)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}
	if c.SpellThreshold < 0 || c.SpellThreshold > 100 {
		return fmt.Errorf("spell_threshold must be within 0..100, got %d", c.SpellThreshold)
	}
	switch c.EndParticlePolicy {
	case "", "none", "warn", "error":
	default:
		return fmt.Errorf("end_particle_policy must be none/warn/error, got %q", c.EndParticlePolicy)
	}
	if c.SentenceFinalPunctSeverity != "" {
		if _, err := ParseSeverity(c.SentenceFinalPunctSeverity); err != nil {
			return fmt.Errorf("sentence_final_punct_severity: %w", err)
		}
	}
	return nil
}

// ApplyStrict tightens thresholds and switches advanced rules on, the
// way --strict does.
func (c *Config) ApplyStrict() {
	c.Advanced = true
	if c.EmphThreshold > 1 {
		c.EmphThreshold = 1
	}
	if c.LongSentenceLimit > 80 {
		c.LongSentenceLimit = 80
	}
	if c.StyleMixThreshold > 1 {
		c.StyleMixThreshold = 1
	}
}

// CommentsEnabled resolves the tri-state Comments flag (default true).
func (c Config) CommentsEnabled() bool { return c.Comments == nil || *c.Comments }

// CacheEnabled resolves the tri-state Cache flag (default true).
func (c Config) CacheEnabled() bool { return c.Cache == nil || *c.Cache }

// MinSev resolves the parsed minimum severity, defaulting to INFO.
func (c Config) MinSev() Severity {
	sev, err := ParseSeverity(c.MinSeverity)
	if err != nil {
		return SeverityInfo
	}
	return sev
}
