package updateversion

import (
	"fmt"
	"regexp"
	"strings"
)

// AttributeKind selects which version attribute a transform targets.
type AttributeKind int

const (
	// KindAssembly targets AssemblyVersion / AssemblyVersionAttribute.
	KindAssembly AttributeKind = iota
	// KindFile targets AssemblyFileVersion / AssemblyFileVersionAttribute.
	KindFile
)

func (k AttributeKind) String() string {
	switch k {
	case KindAssembly:
		return "assembly"
	case KindFile:
		return "file"
	}
	return fmt.Sprintf("attributekind(%d)", int(k))
}

// ParseAttributeKind maps a kind name from the option surface to its tag.
// Names are case-insensitive.
func ParseAttributeKind(name string) (AttributeKind, error) {
	switch strings.ToLower(name) {
	case "assembly":
		return KindAssembly, nil
	case "file":
		return KindFile, nil
	}
	return 0, fmt.Errorf("%w: unknown attribute kind %q", ErrInvalidConfig, name)
}

// The recognized attribute shapes. The name, the optional Attribute suffix
// and any whitespace around the quoted literal belong to the match but are
// never rewritten; only the submatch (the dotted literal itself) is.
var versionPatterns = map[AttributeKind]*regexp.Regexp{
	KindAssembly: regexp.MustCompile(`AssemblyVersion(?:Attribute)?\(\s*"(\d+\.\d+\.\d+\.\d+)"\s*\)`),
	KindFile:     regexp.MustCompile(`AssemblyFileVersion(?:Attribute)?\(\s*"(\d+\.\d+\.\d+\.\d+)"\s*\)`),
}

// Match records where a version literal was found, so exactly that literal
// can be substituted later.
type Match struct {
	// Literal is the dotted version text found inside the quotes.
	Literal string

	start, end int // byte offsets of Literal within the scanned text
}

// FindVersion locates the first version-attribute occurrence of the given
// kind in text. The boolean result is false when text contains no occurrence;
// that is an expected outcome, not an error.
func FindVersion(text string, kind AttributeKind) (Match, bool) {
	re, ok := versionPatterns[kind]
	if !ok {
		return Match{}, false
	}
	idx := re.FindStringSubmatchIndex(text)
	if idx == nil {
		return Match{}, false
	}
	return Match{Literal: text[idx[2]:idx[3]], start: idx[2], end: idx[3]}, true
}

// Substitute returns text with the matched literal replaced by v. The
// surrounding attribute shell, any later occurrences and every other byte of
// text come back unchanged.
func (m Match) Substitute(text string, v Version) string {
	return text[:m.start] + v.String() + text[m.end:]
}
