package rules

import (
	"regexp"
	"strings"

	"github.com/kotolint/kotolint/internal/domain"
)

// AdvancedOptions are the tunable thresholds of the style detector.
type AdvancedOptions struct {
	// EmphThreshold: emphatic adverb occurrences before a warning.
	EmphThreshold int
	// LongSentenceLimit: runes per sentence before flagging.
	LongSentenceLimit int
	// StyleMixThreshold: polite and plain line counts that must both
	// be reached before the style-mix warning fires.
	StyleMixThreshold int

	KatakanaAllow map[string]bool
	KatakanaDeny  map[string]bool

	// EndParticlePolicy: 0 off, 1 warn, 2 error.
	EndParticlePolicy int

	SentenceFinalPunctSeverity domain.Severity
}

// DefaultAdvancedOptions mirrors the business-writing defaults.
func DefaultAdvancedOptions() AdvancedOptions {
	return AdvancedOptions{
		EmphThreshold:              2,
		LongSentenceLimit:          100,
		StyleMixThreshold:          2,
		SentenceFinalPunctSeverity: domain.SeverityInfo,
	}
}

// AdvancedDetector implements the optional style checks: ra-nuki verb
// forms, tautologies, doubled particles and adverbs, colloquialisms,
// punctuation consistency, sentence length and polite/plain mixing.
type AdvancedDetector struct {
	opts AdvancedOptions
}

func NewAdvancedDetector(opts AdvancedOptions) *AdvancedDetector {
	if opts.EmphThreshold <= 0 {
		opts.EmphThreshold = 2
	}
	if opts.LongSentenceLimit <= 0 {
		opts.LongSentenceLimit = 100
	}
	if opts.StyleMixThreshold <= 0 {
		opts.StyleMixThreshold = 2
	}
	return &AdvancedDetector{opts: opts}
}

func (d *AdvancedDetector) ID() string { return "advanced" }

// ra-nuki special cases kept at WARN with a concrete suggestion.
var ranukiSpecial = []struct{ wrong, right string }{
	{"見れる", "見られる"},
	{"来れる", "来られる"},
	{"出れる", "出られる"},
	{"食べれる", "食べられる"},
	{"寝れる", "寝られる"},
	{"起きれる", "起きられる"},
	{"着れる", "着られる"},
}

const eRowKana = "えけげせぜてでねへべぺめれエケゲセゼテデネヘベペメレ"

var (
	ranukiRE         = regexp.MustCompile(`([\x{3040}-\x{30FF}\x{4E00}-\x{9FFF}]+?)れる`)
	doubleParticleRE = regexp.MustCompile(`のの|がが|にに|をを|へへ|とと|でで`)
	emphaticAdvRE    = regexp.MustCompile(`非常に|とっても|とても|すごく|かなり|大変|めちゃくちゃ`)
	colloquialRE     = regexp.MustCompile(`とかさ|とか|っぽさ|っぽい|みたいな|みたい`)
	mixedPunctRE     = regexp.MustCompile(`[。．].*[，、]|[，、].*[。．]`)
	asciiEllipsisRE  = regexp.MustCompile(`\.\.{2,}`)
	spaceBeforeRE    = regexp.MustCompile(`([ 　]+)([。．，、])`)
	prolongedRE      = regexp.MustCompile(`ー{3,}`)
	katakanaWordRE   = regexp.MustCompile(`[ァ-ヶー・]+`)
	endParticleRE    = regexp.MustCompile(`(?:ね|よ|かな)[。】》)]?\s*$`)
	politeEndRE      = regexp.MustCompile(`(?:です。|ます。)\s*$`)
	plainEndRE       = regexp.MustCompile(`(?:だ。|である。)\s*$`)
	bulletRE         = regexp.MustCompile(`^\s*(?:[-*・•●◆◇■□]|\d+[.)]|[（(]\d+[）)])\s+`)
	quoteLineRE      = regexp.MustCompile(`^\s{0,3}>\s*`)
	japaneseCharRE   = regexp.MustCompile(`[\x{3040}-\x{30FF}\x{4E00}-\x{9FFF}]`)
)

var tautologies = []struct {
	pattern *regexp.Regexp
	message string
	sug     *string
}{
	{regexp.MustCompile(`一番最初`), "重言の可能性: '一番最初'", sug("最初")},
	{regexp.MustCompile(`一番最後`), "重言の可能性: '一番最後'", sug("最後")},
	{regexp.MustCompile(`過半数以上`), "重言の可能性: '過半数以上'", sug("過半数")},
	{regexp.MustCompile(`まず最初に`), "重言の可能性: 'まず最初に'", sug("最初に")},
	{regexp.MustCompile(`事前に予め`), "重言の可能性: '事前に予め'", sug("事前に")},
	{regexp.MustCompile(`違和感を感じる`), "重言の可能性: '違和感を感じる'", sug("違和感がある")},
	{regexp.MustCompile(`必須条件`), "重言の可能性: '必須条件'", sug("必須")},
	{regexp.MustCompile(`新規に新たな`), "重言の可能性: '新規に新たな'", sug("新たに")},
}

var doubleAdverbREs = func() []*regexp.Regexp {
	pairs := [][2]string{
		{"かなり", "とても"}, {"かなり", "すごく"}, {"とても", "すごく"},
		{"非常に", "とても"}, {"非常に", "すごく"},
	}
	res := make([]*regexp.Regexp, 0, len(pairs))
	for _, p := range pairs {
		res = append(res, regexp.MustCompile(regexp.QuoteMeta(p[0])+`\s*`+regexp.QuoteMeta(p[1])))
	}
	return res
}()

// maskedRanges collects Markdown fenced blocks and inline code as byte
// ranges; heuristic style issues inside them are suppressed.
func maskedRanges(text string) [][2]int {
	var ranges [][2]int
	fenceRE := regexp.MustCompile(`(?m)^\s*(?:` + "```" + `|~~~).*$`)
	fences := fenceRE.FindAllStringIndex(text, -1)
	for i := 0; i+1 < len(fences); i += 2 {
		ranges = append(ranges, [2]int{fences[i][0], fences[i+1][1]})
	}
	inlineRE := regexp.MustCompile("`[^`\n]+`")
	for _, m := range inlineRE.FindAllStringIndex(text, -1) {
		ranges = append(ranges, [2]int{m[0], m[1]})
	}
	return ranges
}

func inMasked(ranges [][2]int, pos int) bool {
	for _, r := range ranges {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}

func (d *AdvancedDetector) Scan(text string) []domain.Issue {
	var issues []domain.Issue
	masked := maskedRanges(text)

	add := func(b0, b1 int, message string, suggestion *string, sev domain.Severity, ruleID string) {
		start, end := runeBounds(text, b0, b1)
		issues = append(issues, domain.Issue{
			Start:      start,
			End:        end,
			Snippet:    text[b0:b1],
			Message:    message,
			Suggestion: suggestion,
			Severity:   sev,
			RuleID:     ruleID,
		})
	}

	// ra-nuki: known verbs first, then the e-row heuristic.
	for _, rs := range ranukiSpecial {
		for i := 0; ; {
			j := strings.Index(text[i:], rs.wrong)
			if j < 0 {
				break
			}
			b0 := i + j
			add(b0, b0+len(rs.wrong), "ら抜き表現の可能性", sug(rs.right), domain.SeverityWarn, "ADV_RANUKI")
			i = b0 + len(rs.wrong)
		}
	}
	for _, m := range ranukiRE.FindAllStringSubmatchIndex(text, -1) {
		head := text[m[2]:m[3]]
		if head == "" || inMasked(masked, m[0]) {
			continue
		}
		headRunes := []rune(head)
		if !strings.ContainsRune(eRowKana, headRunes[len(headRunes)-1]) {
			continue
		}
		add(m[0], m[1], "ら抜き表現の可能性", sug(head+"られる"), domain.SeverityInfo, "ADV_RANUKI")
	}

	for _, t := range tautologies {
		for _, m := range t.pattern.FindAllStringIndex(text, -1) {
			if inMasked(masked, m[0]) {
				continue
			}
			add(m[0], m[1], t.message, t.sug, domain.SeverityWarn, "ADV_TAUTOLOGY")
		}
	}

	for _, m := range doubleParticleRE.FindAllStringIndex(text, -1) {
		add(m[0], m[1], "連続する助詞の可能性", nil, domain.SeverityWarn, "ADV_DOUBLE_PARTICLE")
	}

	// Emphatic adverb overuse: one aggregated issue at the first hit.
	if hits := emphaticAdvRE.FindAllStringIndex(text, -1); len(hits) >= d.opts.EmphThreshold {
		add(hits[0][0], hits[0][1], "強調副詞（非常に/とても/すごく など）の多用", nil, domain.SeverityWarn, "ADV_EMPHATIC_ADVERB_MANY")
	}

	for _, re := range doubleAdverbREs {
		for _, m := range re.FindAllStringIndex(text, -1) {
			add(m[0], m[1], "二重副詞の可能性", nil, domain.SeverityWarn, "ADV_DOUBLE_ADVERB")
		}
	}

	for _, m := range colloquialRE.FindAllStringIndex(text, -1) {
		add(m[0], m[1], "口語的な表現（文体の統一を検討）", nil, domain.SeverityInfo, "ADV_COLLOQUIAL")
	}

	if m := mixedPunctRE.FindStringIndex(text); m != nil {
		b1 := m[1]
		if snippet := []rune(text[m[0]:m[1]]); len(snippet) > 10 {
			b1 = m[0] + len(string(snippet[:10]))
		}
		add(m[0], b1, "句読点の種類（全角/半角）が混在しています。全角（、。）への統一を推奨", nil, domain.SeverityWarn, "ADV_PUNCT_MIXED")
	}

	for _, m := range asciiEllipsisRE.FindAllStringIndex(text, -1) {
		add(m[0], m[1], "三点リーダはUnicodeの…に統一を推奨", sug("…"), domain.SeverityInfo, "ADV_ELLIPSIS")
	}

	for _, m := range spaceBeforeRE.FindAllStringSubmatchIndex(text, -1) {
		add(m[2], m[3], "句読点直前のスペースを削除", sug(""), domain.SeverityWarn, "ADV_SPACE_BEFORE_PUNCT")
	}

	for _, m := range prolongedRE.FindAllStringIndex(text, -1) {
		add(m[0], m[1], "伸ばし棒（ー）の多用", nil, domain.SeverityInfo, "ADV_PROLONGED_SOUND")
	}

	issues = append(issues, d.longSentences(text)...)
	issues = append(issues, d.sentenceFinalPunct(text)...)
	if mix := d.styleMixedLines(text); mix != nil {
		issues = append(issues, *mix)
	}
	issues = append(issues, d.katakanaPolicy(text)...)
	issues = append(issues, d.endParticles(text)...)

	return issues
}

func (d *AdvancedDetector) longSentences(text string) []domain.Issue {
	var issues []domain.Issue
	limit := d.opts.LongSentenceLimit
	runes := []rune(text)
	start := 0
	flag := func(s, e int) {
		snippetEnd := s + 10
		if snippetEnd > e {
			snippetEnd = e
		}
		issues = append(issues, domain.Issue{
			Start:    s,
			End:      e,
			Snippet:  string(runes[s:snippetEnd]),
			Message:  "1文が長すぎます。分割を検討してください（可読性低下の可能性）",
			Severity: domain.SeverityInfo,
			RuleID:   "ADV_LONG_SENTENCE",
		})
	}
	for i, r := range runes {
		if r == '。' {
			if i+1-start > limit {
				flag(start, i+1)
			}
			start = i + 1
		}
	}
	if len(runes)-start > limit {
		flag(start, len(runes))
	}
	return issues
}

// sentenceFinalPunct flags Japanese lines that do not end in 。！？,
// excluding bullets, headers, quotes, tables and lines inside fences.
func (d *AdvancedDetector) sentenceFinalPunct(text string) []domain.Issue {
	var issues []domain.Issue
	offset := 0 // rune offset of current line start
	inCode := false
	for _, line := range splitLinesKeepEnds(text) {
		lineRunes := len([]rune(line))
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "```") || strings.HasPrefix(stripped, "~~~") {
			inCode = !inCode
			offset += lineRunes
			continue
		}
		if inCode || !japaneseCharRE.MatchString(line) {
			offset += lineRunes
			continue
		}
		core := strings.TrimRight(line, " \t\r\n")
		skip := bulletRE.MatchString(line) ||
			strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") ||
			quoteLineRE.MatchString(line) ||
			strings.HasPrefix(strings.TrimLeft(line, " \t"), "|") ||
			endsWithAny(core, ")", "]", "）", "】", "》", "』", "」", ":", "：")
		if core != "" && !skip && !endsWithAny(core, "。", "！", "？") {
			snippet := strings.TrimSpace(line)
			if r := []rune(snippet); len(r) > 10 {
				snippet = string(r[:10])
			}
			issues = append(issues, domain.Issue{
				Start:    offset,
				End:      offset + lineRunes,
				Snippet:  snippet,
				Message:  "文末に句点（。）を付与してください（文末統一）",
				Severity: d.opts.SentenceFinalPunctSeverity,
				RuleID:   "ADV_SENTENCE_FINAL_PUNCT",
			})
		}
		offset += lineRunes
	}
	return issues
}

// styleMixedLines counts polite (です/ます) and plain (だ/である) line
// endings; both reaching the threshold yields a single warning.
func (d *AdvancedDetector) styleMixedLines(text string) *domain.Issue {
	polite, plain := 0, 0
	for _, line := range strings.Split(text, "\n") {
		if politeEndRE.MatchString(line) {
			polite++
		}
		if plainEndRE.MatchString(line) {
			plain++
		}
	}
	if polite < d.opts.StyleMixThreshold || plain < d.opts.StyleMixThreshold {
		return nil
	}
	anchor := ""
	b0 := -1
	for _, cand := range []string{"です。", "ます。", "だ。", "である。"} {
		if i := strings.Index(text, cand); i >= 0 && (b0 < 0 || i < b0) {
			b0, anchor = i, cand
		}
	}
	if b0 < 0 {
		b0, anchor = 0, ""
	}
	b1 := b0 + len(anchor)
	start, end := runeBounds(text, b0, b1)
	return &domain.Issue{
		Start:    start,
		End:      end,
		Snippet:  text[b0:b1],
		Message:  "文体(ですます/だ・である)が混在しています。どちらかへの統一を推奨（行単位集計）",
		Severity: domain.SeverityWarn,
		RuleID:   "ADV_STYLE_MIXED_LINES",
	}
}

func (d *AdvancedDetector) katakanaPolicy(text string) []domain.Issue {
	if len(d.opts.KatakanaDeny) == 0 {
		return nil
	}
	var issues []domain.Issue
	for _, m := range katakanaWordRE.FindAllStringIndex(text, -1) {
		word := text[m[0]:m[1]]
		if len([]rune(word)) < 2 {
			continue
		}
		// Skip words glued to ASCII identifiers.
		if prev, ok := runeBefore(text, m[0]); ok && isWordRune(prev) {
			continue
		}
		if next, ok := runeAt(text, m[1]); ok && isWordRune(next) {
			continue
		}
		if d.opts.KatakanaAllow[word] {
			continue
		}
		if !d.opts.KatakanaDeny[word] {
			continue
		}
		start, end := runeBounds(text, m[0], m[1])
		issues = append(issues, domain.Issue{
			Start:    start,
			End:      end,
			Snippet:  word,
			Message:  "ドメイン方針によりカタカナ語の使用を抑制（許容リスト外）",
			Severity: domain.SeverityWarn,
			RuleID:   "ADV_KATAKANA_DENY",
		})
	}
	return issues
}

func (d *AdvancedDetector) endParticles(text string) []domain.Issue {
	if d.opts.EndParticlePolicy <= 0 {
		return nil
	}
	sev := domain.SeverityWarn
	if d.opts.EndParticlePolicy >= 2 {
		sev = domain.SeverityError
	}
	var issues []domain.Issue
	offset := 0
	for _, line := range splitLinesKeepEnds(text) {
		lineRunes := len([]rune(line))
		if endParticleRE.MatchString(line) {
			snippet := strings.TrimSpace(line)
			if r := []rune(snippet); len(r) > 5 {
				snippet = string(r[len(r)-5:])
			}
			issues = append(issues, domain.Issue{
				Start:    offset,
				End:      offset + lineRunes,
				Snippet:  snippet,
				Message:  "終助詞の使用を禁止/抑制（設定による）",
				Severity: sev,
				RuleID:   "ADV_END_PARTICLE",
			})
		}
		offset += lineRunes
	}
	return issues
}

func splitLinesKeepEnds(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	return lines
}

func endsWithAny(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func runeBefore(s string, byteOff int) (rune, bool) {
	if byteOff <= 0 {
		return 0, false
	}
	r := []rune(s[:byteOff])
	return r[len(r)-1], true
}

func runeAt(s string, byteOff int) (rune, bool) {
	if byteOff >= len(s) {
		return 0, false
	}
	for _, r := range s[byteOff:] {
		return r, true
	}
	return 0, false
}
