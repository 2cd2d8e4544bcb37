package extract

// IsJapanese reports whether r belongs to the script ranges the linter
// cares about: kana, kanji, CJK punctuation, halfwidth katakana and
// fullwidth forms.
func IsJapanese(r rune) bool {
	switch {
	case r >= 0x3000 && r <= 0x30FF: // CJK punctuation, hiragana, katakana
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK extension A
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK unified
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK compatibility
		return true
	case r >= 0xFF01 && r <= 0xFF9F: // fullwidth forms, halfwidth katakana
		return true
	}
	return false
}

// ContainsJapanese reports whether s has at least one Japanese rune.
// Spans without any are not worth handing to detectors.
func ContainsJapanese(s string) bool {
	for _, r := range s {
		if IsJapanese(r) {
			return true
		}
	}
	return false
}

// JapaneseRatio returns the fraction of runes in s that IsJapanese
// accepts. CJK punctuation, fullwidth forms and halfwidth katakana
// all count, so width and spacing snippets are not penalized for
// containing no kana or kanji. Used by the fixer's context guard.
func JapaneseRatio(s string) float64 {
	total, jp := 0, 0
	for _, r := range s {
		total++
		if IsJapanese(r) {
			jp++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(jp) / float64(total)
}
