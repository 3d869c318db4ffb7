// Package textutil provides small text manipulation helpers shared across genkit.
package textutil

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

var (
	parenDigitsRE = regexp.MustCompile(`\(\d+\)`)
	htmlTagRE     = regexp.MustCompile(`<.*?>`)
)

// FirstCapital returns s with its first letter upper-cased. Nothing else changes.
func FirstCapital(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// DigitFromText returns the number from the first "(digits)" occurrence in s.
// For example, 2 from "file(1 ) and file (2) and file(3).txt".
func DigitFromText(s string) (int, bool) {
	match := parenDigitsRE.FindString(s)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.Trim(match, "()"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// FirstNonAlphabet returns the first rune of s that is not a letter and not in
// ignored. Returns a space when every rune is a letter or ignored.
func FirstNonAlphabet(s string, ignored ...rune) rune {
	for _, r := range s {
		if unicode.IsLetter(r) {
			continue
		}
		skip := false
		for _, ig := range ignored {
			if r == ig {
				skip = true
				break
			}
		}
		if !skip {
			return r
		}
	}
	return ' '
}

// ReplaceHTMLTags returns s with every HTML tag replaced by repl.
func ReplaceHTMLTags(s, repl string) string {
	return htmlTagRE.ReplaceAllString(s, repl)
}

// Replacement is one old/new substitution for ReplacePairs.
type Replacement struct {
	Old string
	New string
}

// ReplaceEach returns s after replacing every occurrence of each old substring
// with new. count bounds occurrences per substring; count < 0 replaces all.
func ReplaceEach(s string, old []string, new string, count int) string {
	for _, o := range old {
		s = strings.Replace(s, o, new, count)
	}
	return s
}

// ReplacePairs applies each substitution in order, count occurrences per pair.
// count < 0 replaces all occurrences.
func ReplacePairs(s string, pairs []Replacement, count int) string {
	for _, p := range pairs {
		s = strings.Replace(s, p.Old, p.New, count)
	}
	return s
}

// Similarized sorts items and groups them into sublists of strings sharing a
// prefix. The prefix is the part before sep, or before the string's first
// non-alphabet rune when sep is empty.
//
// Example: ["HE_bro", "SHE_why", "HE_yes"] -> [["HE_bro", "HE_yes"], ["SHE_why"]].
func Similarized(items []string, sep string) [][]string {
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)

	var groups [][]string
	var current []string
	var currentPrefix string

	for _, item := range sorted {
		itemSep := sep
		if itemSep == "" {
			itemSep = string(FirstNonAlphabet(item))
		}
		prefix := strings.SplitN(item, itemSep, 2)[0]
		if len(current) > 0 && prefix == currentPrefix {
			current = append(current, item)
			continue
		}
		if len(current) > 0 {
			groups = append(groups, current)
		}
		current = []string{item}
		currentPrefix = prefix
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
