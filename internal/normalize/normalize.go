// Package normalize holds the pure text helpers shared by the collector and the scorer.
package normalize

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// MaxSourceLen is the longest trailing segment still treated as a publisher name.
const MaxSourceLen = 50

var tagRe = regexp.MustCompile(`<[^>]+>`)

// StripHTML returns the text content of an HTML fragment with whitespace collapsed.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "<&") {
		return CollapseSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return CollapseSpace(tagRe.ReplaceAllString(s, ""))
	}
	return CollapseSpace(doc.Text())
}

// CollapseSpace trims s and folds every whitespace run into a single space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsHangul reports whether r is a precomposed Hangul syllable.
func IsHangul(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

// HangulStats counts Hangul syllables and non-space runes in s.
func HangulStats(s string) (hangul, nonSpace int) {
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		nonSpace++
		if IsHangul(r) {
			hangul++
		}
	}
	return hangul, nonSpace
}

// HangulRatio is the share of Hangul syllables among the non-space runes of s.
func HangulRatio(s string) float64 {
	hangul, total := HangulStats(s)
	if total == 0 {
		return 0
	}
	return float64(hangul) / float64(total)
}

// IsKoreanQuery decides the Google News locale for a search query.
// Unlike HangulRatio the denominator includes spaces.
func IsKoreanQuery(q string) bool {
	total := utf8.RuneCountInString(q)
	if total == 0 {
		return false
	}
	hangul, _ := HangulStats(q)
	return float64(hangul)/float64(total) > 0.3
}

// IsASCII reports whether every non-space rune of s is ASCII.
func IsASCII(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// SplitSource separates the publisher from a Google Alerts style title,
// e.g. "Article Title | The Star" or "Article Title - BBC".
// The last separator wins; " | " is tried before " - ".
func SplitSource(rawTitle string) (title, source string) {
	title = StripHTML(rawTitle)

	for _, sep := range []string{" | ", " - "} {
		idx := strings.LastIndex(title, sep)
		if idx < 0 {
			continue
		}
		candidate := strings.TrimSpace(title[idx+len(sep):])
		if utf8.RuneCountInString(candidate) <= MaxSourceLen {
			return strings.TrimSpace(title[:idx]), candidate
		}
	}

	return title, ""
}

// RedirectTarget returns the value of the last "url=" parameter in link, the
// innermost target of nested redirects, or "" when link carries none.
// The value is not unescaped.
func RedirectTarget(link string) string {
	return redirectParam(link, strings.LastIndex(link, "url="))
}

func redirectParam(link string, idx int) string {
	if idx < 0 {
		return ""
	}
	target := link[idx+len("url="):]
	if amp := strings.Index(target, "&"); amp >= 0 {
		target = target[:amp]
	}
	return target
}

// DomainSource derives a publisher name from the article link host.
func DomainSource(link string) string {
	if strings.Contains(link, "google.com/url") {
		// the outer redirect names the publisher
		if target := redirectParam(link, strings.Index(link, "url=")); target != "" {
			if unescaped, err := url.QueryUnescape(target); err == nil {
				link = unescaped
			} else {
				link = target
			}
		}
	}

	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}
