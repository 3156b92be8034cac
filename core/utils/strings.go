package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyName is returned by Initials for a blank name.
	ErrEmptyName = errors.New("name is empty")
	// ErrNameTooShort is returned by Initials for a single-token name with
	// only one letter, where a second initial does not exist.
	ErrNameTooShort = errors.New("name is too short for two initials")
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Start of input, any capital, or the first char of a word.
	camelBoundary = regexp.MustCompile(`^\w|[A-Z]|\b\w`)
)

// Initials returns the upper-cased first letters of the first two tokens of
// name, or the first two letters of a single-token name.
//
//	Initials("Jane Doe") // "JD"
//	Initials("Madonna")  // "MA"
func Initials(name string) (string, error) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", ErrEmptyName
	}

	var initials []rune
	if len(tokens) > 1 {
		initials = []rune{[]rune(tokens[0])[0], []rune(tokens[1])[0]}
	} else {
		letters := []rune(tokens[0])
		if len(letters) < 2 {
			return "", ErrNameTooShort
		}
		initials = letters[:2]
	}
	return strings.ToUpper(string(initials)), nil
}

// CamelCase converts text to lower camel case: the leading word character is
// lower-cased, every capital and every word start is upper-cased, and all
// whitespace is removed.
//
//	CamelCase("Hello World") // "helloWorld"
func CamelCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, loc := range camelBoundary.FindAllStringIndex(text, -1) {
		b.WriteString(text[last:loc[0]])
		word := text[loc[0]:loc[1]]
		if loc[0] == 0 {
			b.WriteString(strings.ToLower(word))
		} else {
			b.WriteString(strings.ToUpper(word))
		}
		last = loc[1]
	}
	b.WriteString(text[last:])

	return whitespaceRun.ReplaceAllString(b.String(), "")
}

// Hyphenate replaces every run of whitespace in text with a single hyphen.
func Hyphenate(text string) string {
	return whitespaceRun.ReplaceAllString(text, "-")
}
