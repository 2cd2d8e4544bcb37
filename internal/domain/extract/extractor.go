package extract

import (
	"github.com/kotolint/kotolint/internal/domain"
)

// Options controls what the extractor yields.
type Options struct {
	// Comments includes line and block comment bodies (default on at
	// the config layer; the zero value here means "strings only").
	Comments bool
}

// scanState is the extractor's finite-state machine.
type scanState int

const (
	stNormal scanState = iota
	stString
	stLineComment
	stBlockComment
)

// Spans carves content into position-tracked spans. Plain text is one
// span at offset 0. Code-like content goes through a single forward
// scan: string literal interiors always become spans, comment bodies do
// when opts.Comments is set. Offsets are codepoint offsets.
//
// This is a best-effort scanner shared across languages, not a lexer:
// quote runs of three identical quotes are treated as one quote token,
// backslash escapes are consumed pairwise inside strings, and regex or
// template literals may under- or over-extract. Unterminated strings
// and comments close implicitly at end of input.
func Spans(content string, kind FileKind, opts Options) []domain.Span {
	if kind != CodeLike {
		return []domain.Span{{Text: content, Offset: 0}}
	}

	runes := []rune(content)
	n := len(runes)
	var spans []domain.Span

	emit := func(start, end int) {
		if end > start {
			spans = append(spans, domain.Span{Text: string(runes[start:end]), Offset: start})
		}
	}
	emitComment := func(start, end int) {
		if !opts.Comments {
			return
		}
		if end > start && runes[end-1] == '\r' {
			end--
		}
		emit(start, end)
	}

	state := stNormal
	var quote rune
	triple := false
	start := 0
	i := 0

	for i < n {
		r := runes[i]
		switch state {
		case stNormal:
			switch {
			case r == '"' || r == '\'' || r == '`':
				quote = r
				if i+2 < n && runes[i+1] == r && runes[i+2] == r {
					triple = true
					i += 3
				} else {
					triple = false
					i++
				}
				start = i
				state = stString
			case r == '/' && i+1 < n && runes[i+1] == '/':
				i += 2
				start = i
				state = stLineComment
			case r == '#':
				i++
				start = i
				state = stLineComment
			case r == '/' && i+1 < n && runes[i+1] == '*':
				i += 2
				start = i
				state = stBlockComment
			default:
				i++
			}
		case stString:
			switch {
			case r == '\\' && quote != '`':
				i += 2 // escape pair, never a transition
			case r == quote && !triple:
				emit(start, i)
				i++
				state = stNormal
			case r == quote && triple && i+2 < n && runes[i+1] == quote && runes[i+2] == quote:
				emit(start, i)
				i += 3
				state = stNormal
			default:
				i++
			}
		case stLineComment:
			if r == '\n' {
				emitComment(start, i)
				i++
				state = stNormal
			} else {
				i++
			}
		case stBlockComment:
			if r == '*' && i+1 < n && runes[i+1] == '/' {
				emitComment(start, i)
				i += 2
				state = stNormal
			} else {
				i++
			}
		}
	}

	// Implicit close at EOF.
	switch state {
	case stString:
		emit(start, n)
	case stLineComment, stBlockComment:
		emitComment(start, n)
	}

	return spans
}
