package viewer

import (
	"strconv"
	"strings"

	"newsviewer/config"
)

// FragmentMatch classifies a URL fragment
type FragmentMatch int

const (
	// FragmentNone selects the grid view and is not worth a diagnostic
	FragmentNone FragmentMatch = iota
	// FragmentArticle carries a parsed article id
	FragmentArticle
	// FragmentBadArticle has the article prefix but no integer id
	FragmentBadArticle
)

// ParseFragment extracts the article id from "article-<integer>".
// A leading '#' is ignored. The id must be a complete base-10 integer.
func ParseFragment(fragment string) (int, FragmentMatch) {
	fragment = NormalizeFragment(fragment)
	if !strings.HasPrefix(fragment, config.FragmentPrefix) {
		return 0, FragmentNone
	}
	id, err := strconv.Atoi(strings.TrimPrefix(fragment, config.FragmentPrefix))
	if err != nil {
		return 0, FragmentBadArticle
	}
	return id, FragmentArticle
}

// CanonicalFragment is the fragment that exactly represents article id
func CanonicalFragment(id int) string {
	return config.FragmentPrefix + strconv.Itoa(id)
}

// NormalizeFragment drops the leading '#', if any
func NormalizeFragment(fragment string) string {
	return strings.TrimPrefix(fragment, "#")
}
