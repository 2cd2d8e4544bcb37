package application

import (
	"context"
	"fmt"

	"github.com/kotolint/kotolint/internal/adapters/outbound/ahodict"
	"github.com/kotolint/kotolint/internal/adapters/outbound/grammartool"
	"github.com/kotolint/kotolint/internal/adapters/outbound/rulefile"
	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/morph"
	"github.com/kotolint/kotolint/internal/domain/rules"
	"github.com/kotolint/kotolint/internal/domain/spell"
)

// BuildEngine assembles the detector chain for a config. Detector
// order is fixed so two runs over the same input produce identical
// output. Problems with optional layers (an unparseable rule file, an
// unloadable dictionary, an unreachable grammar service that was
// explicitly requested) come back as config issues rather than
// aborting the scan.
func BuildEngine(ctx context.Context, cfg domain.Config) (*rules.Engine, []domain.Issue, error) {
	var configIssues []domain.Issue
	configIssue := func(msg string) {
		configIssues = append(configIssues, domain.Issue{
			Message:  msg,
			Severity: domain.SeverityError,
			RuleID:   "CONFIG",
		})
	}

	patterns := rules.Builtin()
	if len(cfg.Rules) > 0 {
		extra, loadErrs := rulefile.LoadAll(cfg.Rules)
		for _, e := range loadErrs {
			configIssue(fmt.Sprintf("rule file skipped: %v", e))
		}
		patterns = rules.Merge(patterns, extra)
	}

	detectors := []domain.Detector{rules.NewRegexDetector(patterns)}

	variants, err := ahodict.NewDetector(ahodict.DefaultVariants())
	if err != nil {
		return nil, nil, fmt.Errorf("building variant detector: %w", err)
	}
	detectors = append(detectors, variants)

	if cfg.Advanced || cfg.Strict {
		detectors = append(detectors, rules.NewAdvancedDetector(advancedOptions(cfg)))
	}

	if analyzer := buildAnalyzer(cfg, configIssue); analyzer != nil {
		detectors = append(detectors,
			morph.NewDetector(analyzer, patterns),
			morph.NewSyntaxDetector(analyzer),
		)
	}

	if cfg.Spell {
		if len(cfg.Dict) == 0 {
			configIssue("spell check enabled but no dictionary given (--dict)")
		} else {
			words, err := spell.LoadDicts(cfg.Dict)
			if err != nil {
				configIssue(fmt.Sprintf("spell check disabled: %v", err))
			} else {
				detectors = append(detectors, spell.NewDetector(words, cfg.SpellThreshold))
			}
		}
	}

	if cfg.Grammar {
		client := grammartool.NewClient(cfg.GrammarURL)
		if client.Available(ctx) {
			detectors = append(detectors, grammartool.NewDetector(client))
		} else {
			configIssue(fmt.Sprintf("grammar service unreachable at %s", cfg.GrammarURL))
		}
	}

	return rules.NewEngine(detectors...), configIssues, nil
}

// buildAnalyzer resolves the tri-state morph setting. An init failure
// is only an error when morphology was explicitly requested.
func buildAnalyzer(cfg domain.Config, configIssue func(string)) *morph.Analyzer {
	if cfg.Morph != nil && !*cfg.Morph {
		return nil
	}
	analyzer, err := morph.NewAnalyzer()
	if err != nil {
		if cfg.Morph != nil && *cfg.Morph {
			configIssue(fmt.Sprintf("morphological analysis unavailable: %v", err))
		}
		return nil
	}
	return analyzer
}

func advancedOptions(cfg domain.Config) rules.AdvancedOptions {
	opts := rules.DefaultAdvancedOptions()
	if cfg.EmphThreshold > 0 {
		opts.EmphThreshold = cfg.EmphThreshold
	}
	if cfg.LongSentenceLimit > 0 {
		opts.LongSentenceLimit = cfg.LongSentenceLimit
	}
	if cfg.StyleMixThreshold > 0 {
		opts.StyleMixThreshold = cfg.StyleMixThreshold
	}
	if len(cfg.KatakanaAllow) > 0 {
		opts.KatakanaAllow = toSet(cfg.KatakanaAllow)
	}
	if len(cfg.KatakanaDeny) > 0 {
		opts.KatakanaDeny = toSet(cfg.KatakanaDeny)
	}
	switch cfg.EndParticlePolicy {
	case "warn":
		opts.EndParticlePolicy = 1
	case "error":
		opts.EndParticlePolicy = 2
	}
	if cfg.SentenceFinalPunctSeverity != "" {
		if sev, err := domain.ParseSeverity(cfg.SentenceFinalPunctSeverity); err == nil {
			opts.SentenceFinalPunctSeverity = sev
		}
	}
	return opts
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
