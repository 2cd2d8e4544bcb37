// Package extract decides which parts of a file are Japanese-bearing
// text worth checking: the whole content for plain text, string literals
// and comments for code-like files, nothing for binaries.
package extract

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FileKind routes a file through the pipeline.
type FileKind int

const (
	Binary FileKind = iota
	PlainText
	CodeLike
)

func (k FileKind) String() string {
	switch k {
	case Binary:
		return "binary"
	case PlainText:
		return "plain-text"
	case CodeLike:
		return "code-like"
	default:
		return "unknown"
	}
}

// Extensions routed through the literal/comment extractor. Unknown
// extensions default to PlainText.
var codeExtensions = map[string]bool{
	".c": true, ".cc": true, ".cpp": true, ".cs": true, ".cxx": true,
	".dart": true, ".go": true, ".h": true, ".hpp": true, ".java": true,
	".js": true, ".jsx": true, ".kt": true, ".lua": true, ".m": true,
	".mjs": true, ".php": true, ".pl": true, ".py": true, ".r": true,
	".rb": true, ".rs": true, ".scala": true, ".sh": true, ".sql": true,
	".swift": true, ".ts": true, ".tsx": true, ".vue": true, ".zig": true,
}

const binarySampleSize = 4096

// binary control bytes: everything below 0x20 except tab, LF and CR.
func isBinaryByte(b byte) bool {
	return b < 0x20 && b != '\t' && b != '\n' && b != '\r'
}

// Classify decides how a file should be scanned. It is a pure function
// of the path (extension) and a content prefix: a null byte or a high
// ratio of control bytes marks the file binary.
func Classify(path string, content []byte) FileKind {
	sample := content
	if len(sample) > binarySampleSize {
		sample = sample[:binarySampleSize]
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return Binary
	}
	if len(sample) > 0 {
		nonText := 0
		for _, b := range sample {
			if isBinaryByte(b) {
				nonText++
			}
		}
		if float64(nonText)/float64(len(sample)) >= 0.30 {
			return Binary
		}
	}
	if codeExtensions[strings.ToLower(filepath.Ext(path))] {
		return CodeLike
	}
	return PlainText
}
