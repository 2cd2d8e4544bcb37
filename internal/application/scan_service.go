package application

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kotolint/kotolint/internal/adapters/outbound/cache"
	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/extract"
	"github.com/kotolint/kotolint/internal/domain/rules"
)

// GitInfo is the port the scan service uses to read repository state.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
	ChangedFiles(path string) ([]string, error)
}

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".venv":        true,
	"dist":         true,
	"build":        true,
	"target":       true,
}

// ScanService runs the full pipeline over files: classify, extract,
// detect, filter. Results are deterministic regardless of worker
// count because output slots follow input order.
type ScanService struct {
	cfg          domain.Config
	engine       *rules.Engine
	configIssues []domain.Issue
	store        cache.Store
	git          GitInfo

	// contents holds what was read, for line/col rendering after the
	// scan. Written only by the collecting goroutine.
	contents map[string]string
}

func NewScanService(cfg domain.Config, engine *rules.Engine, configIssues []domain.Issue, store cache.Store, git GitInfo) *ScanService {
	if store == nil {
		store = cache.NewMemoryStore()
	}
	return &ScanService{
		cfg:          cfg,
		engine:       engine,
		configIssues: configIssues,
		store:        store,
		git:          git,
		contents:     make(map[string]string),
	}
}

// fileResult is the outcome for one input file.
type fileResult struct {
	path    string
	issues  []domain.Issue
	content string
	cached  bool
	scanned bool
}

// ScanPaths expands the given paths (files or directories) and scans
// every candidate file.
func (s *ScanService) ScanPaths(ctx context.Context, paths []string) (*domain.Report, error) {
	files, err := s.collectFiles(paths)
	if err != nil {
		return nil, err
	}
	return s.scanFiles(ctx, files)
}

// ScanChanged scans only files the git worktree reports as modified
// under root.
func (s *ScanService) ScanChanged(ctx context.Context, root string) (*domain.Report, error) {
	if s.git == nil || !s.git.IsGitRepo(root) {
		return nil, fmt.Errorf("%s is not a git repository", root)
	}
	changed, err := s.git.ChangedFiles(root)
	if err != nil {
		return nil, fmt.Errorf("listing changed files: %w", err)
	}
	var files []string
	for _, f := range changed {
		if info, err := os.Stat(f); err == nil && info.Mode().IsRegular() && !s.excluded(f) {
			files = append(files, f)
		}
	}
	return s.scanFiles(ctx, files)
}

// ScanText runs the pipeline over in-memory content, used by the MCP
// tools. name only labels the issues.
func (s *ScanService) ScanText(name, content string) []domain.Issue {
	kind := extract.Classify(name, []byte(content))
	if kind == extract.Binary {
		return nil
	}
	issues := s.detect(content, kind)
	for i := range issues {
		issues[i].File = name
	}
	return domain.FilterSeverity(sortIssues(issues), s.cfg.MinSev())
}

// Locate maps a rune offset in a scanned file back to line and column.
func (s *ScanService) Locate(file string, offset int) (line, col int) {
	content, ok := s.contents[file]
	if !ok {
		return 1, offset + 1
	}
	return domain.OffsetToLineCol(content, offset)
}

func (s *ScanService) scanFiles(ctx context.Context, files []string) (*domain.Report, error) {
	jobs := s.cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]fileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.scanOne(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.Report{}
	report.Issues = append(report.Issues, s.configIssues...)
	for _, res := range results {
		if res.content != "" {
			s.contents[res.path] = res.content
		}
		if res.cached {
			report.FilesCached++
		}
		if res.scanned {
			report.FilesScanned++
		}
		report.Issues = append(report.Issues, res.issues...)
	}
	report.Issues = domain.FilterSeverity(report.Issues, s.cfg.MinSev())

	if s.git != nil && len(files) > 0 {
		if root := commonRoot(files); root != "" && s.git.IsGitRepo(root) {
			if hash, err := s.git.CommitHash(root); err == nil {
				report.CommitHash = hash
			}
		}
	}
	return report, nil
}

// scanOne never fails the run: unreadable files become a single ERROR
// issue on that file.
func (s *ScanService) scanOne(path string) fileResult {
	res := fileResult{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		res.issues = []domain.Issue{{
			File:     path,
			Message:  fmt.Sprintf("ファイルを読み取れません: %v", err),
			Severity: domain.SeverityError,
			RuleID:   "IO_ERROR",
		}}
		return res
	}

	kind := extract.Classify(path, raw)
	if kind == extract.Binary {
		return res
	}
	content := string(raw)
	res.content = content

	digest := cache.Digest(raw)
	key := cacheKey(path)
	if s.cfg.CacheEnabled() {
		if entry, ok := s.store.Get(key); ok && entry.ContentHash == digest {
			res.cached = true
			res.issues = entry.Issues
			return res
		}
	}

	res.scanned = true
	issues := s.detect(content, kind)
	for i := range issues {
		issues[i].File = path
	}
	res.issues = sortIssues(issues)

	if s.cfg.CacheEnabled() {
		// A put failure only costs a rescan next time.
		_ = s.store.Put(key, cache.Entry{ContentHash: digest, Issues: res.issues})
	}
	return res
}

// cacheKey normalizes a file path so relative and absolute spellings
// of the same file share one cache entry.
func cacheKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func (s *ScanService) detect(content string, kind extract.FileKind) []domain.Issue {
	spans := extract.Spans(content, kind, extract.Options{Comments: s.cfg.CommentsEnabled()})
	return s.engine.DetectAll(spans)
}

func (s *ScanService) collectFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] && !s.excluded(path) {
			seen[path] = true
			files = append(files, path)
		}
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if skipDirs[d.Name()] || (path != p && strings.HasPrefix(d.Name(), ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (s *ScanService) excluded(path string) bool {
	for _, pattern := range s.cfg.ExcludePaths {
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.ToSlash(path)); ok {
			return true
		}
	}
	return false
}

// sortIssues orders a file's issues by position, then rule, so the
// report is stable across runs and worker counts.
func sortIssues(issues []domain.Issue) []domain.Issue {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Start != issues[j].Start {
			return issues[i].Start < issues[j].Start
		}
		if issues[i].End != issues[j].End {
			return issues[i].End < issues[j].End
		}
		return issues[i].RuleID < issues[j].RuleID
	})
	return issues
}

// commonRoot walks up from the first file looking for a .git
// directory.
func commonRoot(files []string) string {
	if len(files) == 0 {
		return ""
	}
	root, err := filepath.Abs(filepath.Dir(files[0]))
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
			return root
		}
		parent := filepath.Dir(root)
		if parent == root {
			return ""
		}
		root = parent
	}
}
