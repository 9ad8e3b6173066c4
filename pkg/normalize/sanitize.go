package normalize

import (
	"strings"
	"unicode/utf8"

	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// MaxNormalizedRunes bounds the length of an accepted search term.
const MaxNormalizedRunes = 120

const (
	quoteChars    = "\"'`“”‘’«»"
	trailingPunct = ".!;:"
)

// Labels a model sometimes echoes from the worked examples.
var labelPrefixes = []string{"saída:", "saida:", "output:", "query:", "resposta:"}

// Sanitize reduces a raw model reply to a single search term: the first
// non-empty line, without echoed labels, surrounding quotes or trailing
// punctuation. A leading line ending in ':' is a preamble and is skipped
// when more lines follow.
func Sanitize(raw string) (domain.NormalizedQuery, error) {
	line := firstLine(raw)

	for {
		before := line
		line = strings.TrimSpace(line)
		line = stripLabel(line)
		line = strings.Trim(line, quoteChars)
		line = strings.TrimRight(line, trailingPunct)
		if line == before {
			break
		}
	}

	line = strings.Join(strings.Fields(line), " ")
	if line == "" {
		return "", ErrEmptyNormalization
	}
	if utf8.RuneCountInString(line) > MaxNormalizedRunes {
		return "", ErrMalformedNormalization
	}
	return domain.NormalizedQuery(line), nil
}

func firstLine(s string) string {
	var preamble string
	for l := range strings.Lines(s) {
		t := strings.TrimSpace(l)
		switch {
		case t == "":
		case strings.HasSuffix(t, ":"):
			if preamble == "" {
				preamble = t
			}
		default:
			return t
		}
	}
	return preamble
}

func stripLabel(s string) string {
	for _, p := range labelPrefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return strings.TrimSpace(s[len(p):])
		}
	}
	return s
}
