package spell

import (
	"fmt"
	"regexp"

	"github.com/agnivade/levenshtein"

	"github.com/kotolint/kotolint/internal/domain"
)

// Words are script-homogeneous runs; a script change is a word
// boundary, so particles do not glue terms together.
var japaneseWordRE = regexp.MustCompile(`[ァ-ヶー]+|[\x{4E00}-\x{9FFF}]+|[ぁ-ん]+`)

// Detector compares extracted Japanese words against dictionary
// entries. A word that is not in the dictionary but within the
// similarity threshold of an entry is reported with that entry as the
// suggestion.
type Detector struct {
	words     []string
	wordSet   map[string]bool
	threshold int // percentage, 0-100
}

func NewDetector(words []string, threshold int) *Detector {
	if threshold <= 0 || threshold > 100 {
		threshold = 90
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return &Detector{words: words, wordSet: set, threshold: threshold}
}

func (d *Detector) ID() string { return "spell" }

func (d *Detector) Scan(text string) []domain.Issue {
	if len(d.words) == 0 {
		return nil
	}
	var issues []domain.Issue
	for _, m := range japaneseWordRE.FindAllStringIndex(text, -1) {
		word := text[m[0]:m[1]]
		wordRunes := []rune(word)
		if len(wordRunes) < 2 || d.wordSet[word] {
			continue
		}
		best, score := d.closest(word, len(wordRunes))
		if best == "" || score < d.threshold {
			continue
		}
		start := len([]rune(text[:m[0]]))
		issues = append(issues, domain.Issue{
			Start:      start,
			End:        start + len(wordRunes),
			Snippet:    word,
			Message:    fmt.Sprintf("辞書の語「%s」の表記揺れの可能性（類似度 %d%%）", best, score),
			Suggestion: domain.Suggest(best),
			Severity:   domain.SeverityInfo,
			RuleID:     "SPELL_NEAR_MATCH",
		})
	}
	return issues
}

// closest returns the highest-similarity dictionary entry and its
// percentage score. Ties keep the earliest entry so output is stable.
func (d *Detector) closest(word string, wordLen int) (string, int) {
	best, bestScore := "", -1
	for _, entry := range d.words {
		entryLen := len([]rune(entry))
		longer := wordLen
		if entryLen > longer {
			longer = entryLen
		}
		if longer == 0 {
			continue
		}
		// Length gap alone can rule an entry out.
		diff := wordLen - entryLen
		if diff < 0 {
			diff = -diff
		}
		if (longer-diff)*100 < d.threshold*longer {
			continue
		}
		dist := levenshtein.ComputeDistance(word, entry)
		score := (longer - dist) * 100 / longer
		if score > bestScore {
			best, bestScore = entry, score
		}
	}
	return best, bestScore
}
