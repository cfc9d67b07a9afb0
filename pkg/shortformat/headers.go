package shortformat

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	anchorPrefix       = "VALUE"
	unitsToken         = "UNITS"
	scientificNameRaw  = "SCIENTIFIC NAME"
	scientificNameSafe = "SCIENTIFIC_NAME"
)

// flagTokenRe matches data-quality flag columns: "F" followed by exactly
// one digit (F1..F9).
var flagTokenRe = regexp.MustCompile(`^F[0-9]$`)

// splitHeaderLine splits the raw header line into tokens and applies the
// hyphen-to-underscore normalization the rest of the pipeline expects.
func splitHeaderLine(line string) []string {
	tokens := strings.Split(line, fieldDelimiter)
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		tokens[i] = strings.ReplaceAll(tok, "-", "_")
	}
	return tokens
}

// disambiguateHeaders rewrites ambiguous, repeated header tokens into
// unique field names. The format repeats a VALUE... column followed by
// qualifier columns (UNITS, F1..F4) that describe it, so each qualifier
// is renamed after the nearest preceding VALUE anchor. A single
// left-to-right scan tracking the most recently seen anchor implements
// the nearest-preceding match.
//
// Output length always equals input length. Tokens a qualifier rule does
// not touch are passed through the final sanitization step unchanged, so
// running the function over its own output is a no-op.
func disambiguateHeaders(tokens []string) ([]string, error) {
	out := make([]string, len(tokens))
	copy(out, tokens)

	anchor := ""
	anchorSeen := false
	sciNamePos := -1

	for i, tok := range out {
		switch {
		case strings.HasPrefix(tok, anchorPrefix):
			anchor = tok
			anchorSeen = true
		case tok == unitsToken:
			if !anchorSeen {
				return nil, NewFormatError(
					fmt.Sprintf("%s column has no preceding %s* column", unitsToken, anchorPrefix),
					nil).WithPosition(0, i+1)
			}
			out[i] = anchor + "_" + unitsToken
		case flagTokenRe.MatchString(tok):
			if !anchorSeen {
				return nil, NewFormatError(
					fmt.Sprintf("flag column %s has no preceding %s* column", tok, anchorPrefix),
					nil).WithPosition(0, i+1)
			}
			out[i] = anchor + "_" + tok
		case tok == scientificNameRaw:
			if sciNamePos >= 0 {
				return nil, NewFormatError(
					fmt.Sprintf("%q column appears more than once (columns %d and %d)",
						scientificNameRaw, sciNamePos+1, i+1), nil)
			}
			sciNamePos = i
			out[i] = scientificNameSafe
		}
	}

	for i := range out {
		out[i] = sanitizeFieldName(out[i])
	}
	return out, nil
}

// sanitizeFieldName deletes every rune that is not alphanumeric or an
// underscore. Deletion, not substitution: the canonical numeric field
// names are matched byte-for-byte downstream.
func sanitizeFieldName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isFieldNameRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isFieldNameRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// validateFieldNames checks the post-trim field list: every name must be
// a valid identifier (alphanumeric/underscore, not starting with a
// digit) and no two names may collide.
func validateFieldNames(names []string) error {
	seen := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return NewFormatError("header produced an empty field name", nil).WithPosition(0, i+1)
		}
		if name[0] >= '0' && name[0] <= '9' {
			return NewFormatError(
				fmt.Sprintf("field name %q starts with a digit", name), nil).WithPosition(0, i+1)
		}
		if prev, dup := seen[name]; dup {
			return NewFormatError(
				fmt.Sprintf("duplicate field name %q (columns %d and %d)", name, prev+1, i+1), nil)
		}
		seen[name] = i
	}
	return nil
}
