package pipeline

import (
	"regexp"
	"strings"
)

// OptionMode selects how strictly option group/value pairs are folded.
type OptionMode string

const (
	// OptionLenient includes a group name or a value whenever it is present,
	// independently of its partner column.
	OptionLenient OptionMode = "lenient"
	// OptionStrict includes a pair only when both group and value are present.
	OptionStrict OptionMode = "strict"
)

var pipeSpacePattern = regexp.MustCompile(`\s*\|\s*`)

// FoldOptions merges paired option group/value columns into two aligned
// pipe-delimited strings for a product's option declarations. Value cells may
// hold comma-separated lists; those are split, trimmed and rejoined with "|".
func FoldOptions(row Row, pairs []OptionPair, mode OptionMode) (string, string) {
	var groups, values []string

	for _, pair := range pairs {
		group, hasGroup := row.Value(pair.GroupColumn)
		value, hasValue := row.Value(pair.ValueColumn)

		if mode == OptionStrict && (!hasGroup || !hasValue) {
			continue
		}

		if hasGroup {
			groups = append(groups, group)
		}
		if hasValue {
			var parts []string
			for _, v := range strings.Split(value, ",") {
				if v = strings.TrimSpace(v); v != "" {
					parts = append(parts, v)
				}
			}
			values = append(values, strings.Join(parts, "|"))
		}
	}

	return collapsePipes(strings.Join(groups, "|")), collapsePipes(strings.Join(values, "|"))
}

// OptionValues returns a variant row's option values in column order, one raw
// trimmed cell per value column, skipping absent cells.
func OptionValues(row Row, pairs []OptionPair) []string {
	var values []string
	for _, pair := range pairs {
		if v, ok := row.Value(pair.ValueColumn); ok {
			values = append(values, v)
		}
	}
	return values
}

// collapsePipes removes whitespace hugging the pipe delimiters.
func collapsePipes(s string) string {
	return pipeSpacePattern.ReplaceAllString(s, "|")
}
