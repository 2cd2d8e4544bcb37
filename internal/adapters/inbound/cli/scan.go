package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kotolint/kotolint/internal/adapters/outbound/cache"
	"github.com/kotolint/kotolint/internal/adapters/outbound/config"
	"github.com/kotolint/kotolint/internal/adapters/outbound/gitinfo"
	"github.com/kotolint/kotolint/internal/adapters/outbound/tui"
	"github.com/kotolint/kotolint/internal/application"
	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/fix"
)

const cacheFileName = ".kotolint.cache"

func newScanCmd() *cobra.Command {
	var (
		applyFix     bool
		fixContext   bool
		jsonOutput   bool
		minSeverity  string
		jobs         int
		noCache      bool
		ruleFiles    []string
		noComments   bool
		advanced     bool
		strict       bool
		morphOn      bool
		morphOff     bool
		spellCheck   bool
		dictFiles    []string
		spellCutoff  int
		grammar      bool
		grammarURL   string
		changedOnly  bool
		failOnIssue  bool
		excludePaths []string
	)

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan files for Japanese orthography issues",
		Long:  "Scan files or directories, extract Japanese text from code literals and comments, and report typos, variant spellings and style problems.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}
			root, err := filepath.Abs(paths[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			// Config, cache and git all anchor on a directory even when
			// a single file is scanned.
			if info, statErr := os.Stat(root); statErr == nil && !info.IsDir() {
				root = filepath.Dir(root)
			}

			cfg, err := config.New().Load(root)
			if err != nil {
				return err
			}

			// Flags override the config file only when set.
			flags := cmd.Flags()
			if flags.Changed("min-severity") {
				cfg.MinSeverity = minSeverity
			}
			if flags.Changed("jobs") {
				cfg.Jobs = jobs
			}
			if noCache || applyFix {
				f := false
				cfg.Cache = &f
			}
			if len(ruleFiles) > 0 {
				cfg.Rules = append(cfg.Rules, ruleFiles...)
			}
			if noComments {
				f := false
				cfg.Comments = &f
			}
			if advanced {
				cfg.Advanced = true
			}
			if strict {
				cfg.Strict = true
			}
			if morphOn {
				t := true
				cfg.Morph = &t
			}
			if morphOff {
				f := false
				cfg.Morph = &f
			}
			if spellCheck {
				cfg.Spell = true
			}
			if len(dictFiles) > 0 {
				cfg.Dict = append(cfg.Dict, dictFiles...)
			}
			if flags.Changed("spell-threshold") {
				cfg.SpellThreshold = spellCutoff
			}
			if grammar {
				cfg.Grammar = true
			}
			if flags.Changed("grammar-url") {
				cfg.GrammarURL = grammarURL
			}
			if failOnIssue {
				cfg.FailOnIssue = true
			}
			if len(excludePaths) > 0 {
				cfg.ExcludePaths = append(cfg.ExcludePaths, excludePaths...)
			}
			if cfg.Strict {
				cfg.ApplyStrict()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			engine, configIssues, err := application.BuildEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			var store cache.Store
			if cfg.CacheEnabled() {
				bolt, err := cache.NewBoltStore(filepath.Join(root, cacheFileName))
				if err == nil {
					store = bolt
					defer bolt.Close()
				}
			}

			svc := application.NewScanService(cfg, engine, configIssues, store, gitinfo.New())

			var report *domain.Report
			if changedOnly {
				report, err = svc.ScanChanged(cmd.Context(), root)
			} else {
				report, err = svc.ScanPaths(cmd.Context(), paths)
			}
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if applyFix {
				fixer := application.NewFixService(fix.Options{ContextGuard: fixContext})
				summary, err := fixer.Apply(report.Issues)
				if err != nil {
					return fmt.Errorf("applying fixes: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixSummary(summary))
				return nil
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, svc.Locate))
			}

			if cfg.FailOnIssue && report.HasIssues() {
				return fmt.Errorf("found %d issue(s)", len(report.Issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&applyFix, "fix", false, "Apply safe suggestions to files in place")
	cmd.Flags().BoolVar(&fixContext, "fix-context", false, "Skip fixes whose surroundings look like code or URLs")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().StringVar(&minSeverity, "min-severity", "INFO", "Minimum severity to report (INFO, WARN, ERROR)")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "Parallel scan workers (0 = number of CPUs)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Disable the scan result cache")
	cmd.Flags().StringSliceVar(&ruleFiles, "rules", nil, "Additional rule files (YAML or JSON)")
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "Skip comments in source files")
	cmd.Flags().BoolVar(&advanced, "advanced", false, "Enable advanced style rules")
	cmd.Flags().BoolVar(&strict, "strict", false, "Advanced rules with tightened thresholds")
	cmd.Flags().BoolVar(&morphOn, "morph", false, "Force morphological analysis on")
	cmd.Flags().BoolVar(&morphOff, "no-morph", false, "Disable morphological analysis")
	cmd.Flags().BoolVar(&spellCheck, "spell", false, "Enable dictionary-based similarity checks")
	cmd.Flags().StringSliceVar(&dictFiles, "dict", nil, "Dictionary files for --spell")
	cmd.Flags().IntVar(&spellCutoff, "spell-threshold", 90, "Similarity percentage that triggers a spell issue")
	cmd.Flags().BoolVar(&grammar, "grammar", false, "Query an external grammar service")
	cmd.Flags().StringVar(&grammarURL, "grammar-url", "http://localhost:8010/v2/check", "Grammar service endpoint")
	cmd.Flags().BoolVar(&changedOnly, "changed", false, "Scan only files modified in the git worktree")
	cmd.Flags().BoolVar(&failOnIssue, "fail-on-issue", false, "Exit non-zero when issues remain after filtering")
	cmd.Flags().StringSliceVar(&excludePaths, "exclude", nil, "Glob patterns of paths to skip")

	return cmd
}

func renderJSON(cmd *cobra.Command, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
