package extractor

import (
	"strings"
	"unicode/utf8"
)

const defaultTitle = "Meeting"

var scheduleVerbs = wordSet("schedule", "book", "arrange", "create", "add", "plan", "organize", "organise",
	"reserve", "setup", "set", "up", "put", "please", "new")

var cancelVerbs = wordSet("cancel", "delete", "remove", "drop", "rescind", "abort", "discard", "please")

// connectives are dropped from either end of an extracted title.
var connectives = wordSet("for", "on", "at", "from", "a", "an", "the", "to", "and", "of", "by", "in",
	"called", "named", "titled", "about", "regarding", "re", "my", "our", "with", "between")

// leadingNouns are dropped only from the front of a schedule title ("a meeting about X").
var leadingNouns = wordSet("meeting", "appointment", "event")

// trailingNouns are dropped from the back of cancel fragments ("cancel the review meeting").
var trailingNouns = wordSet("meeting", "meetings", "appointment", "appointments", "event", "events")

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func has(set map[string]struct{}, w string) bool {
	_, ok := set[strings.ToLower(w)]
	return ok
}

// mask blanks text[start:end] so later regex passes cannot match it again.
func mask(text string, start, end int) string {
	if start < 0 || end <= start {
		return text
	}
	return text[:start] + strings.Repeat(" ", end-start) + text[end:]
}

// tokens splits text into words with surrounding punctuation removed.
func tokens(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()[]{}")
		f = strings.TrimSuffix(f, "'s")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// trimWords drops words from the front while front(w) holds and from the back while back(w) holds.
func trimWords(words []string, front, back func(string) bool) []string {
	for len(words) > 0 && front(words[0]) {
		words = words[1:]
	}
	for len(words) > 0 && back(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	return words
}

func (e *Extractor) scheduleTitle(residue string) string {
	words := trimWords(tokens(residue),
		func(w string) bool { return has(scheduleVerbs, w) || has(connectives, w) || has(leadingNouns, w) },
		func(w string) bool { return has(scheduleVerbs, w) || has(connectives, w) },
	)
	return e.truncate(strings.Join(words, " "), defaultTitle)
}

func (e *Extractor) cancelFragment(residue string) string {
	words := trimWords(tokens(residue),
		func(w string) bool { return has(cancelVerbs, w) || has(connectives, w) || has(leadingNouns, w) },
		func(w string) bool { return has(cancelVerbs, w) || has(connectives, w) || has(trailingNouns, w) },
	)
	return e.truncate(strings.Join(words, " "), "")
}

func (e *Extractor) truncate(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	if utf8.RuneCountInString(s) <= e.titleMaxLen {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:e.titleMaxLen]))
}
