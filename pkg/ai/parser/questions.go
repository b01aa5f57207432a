package parser

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Question-list extraction from model output. Models are asked for
// strict JSON but routinely add commentary, code fences, or fall back
// to plain bullet lists, so parsing runs as an ordered chain of
// attempts. Each attempt either claims the input or passes; the final
// line-splitting attempt always claims, so extraction never fails.

type attempt func(raw string) ([]string, bool)

var attempts = []attempt{
	parseJSONObject,
	parseJSONArray,
	parseLines,
}

// ParseQuestions extracts a question list from raw model output.
func ParseQuestions(raw string) []string {
	for _, parse := range attempts {
		if questions, ok := parse(raw); ok {
			return questions
		}
	}
	return nil
}

// parseJSONObject handles the requested shape: the first
// brace-delimited substring parsed as {"questions": [...]}.
func parseJSONObject(raw string) ([]string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, false
	}

	var payload struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, false
	}
	if payload.Questions == nil {
		return nil, false
	}
	return payload.Questions, true
}

// parseJSONArray handles models that answer with a bare list of
// strings.
func parseJSONArray(raw string) ([]string, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil, false
	}

	var questions []string
	if err := json.Unmarshal([]byte(raw[start:end+1]), &questions); err != nil {
		return nil, false
	}
	return questions, true
}

var listMarkerRe = regexp.MustCompile(`^\s*(?:[-*•]+|\d+[.)])\s*`)

// parseLines treats the output as newline-delimited items, stripping
// leading bullets, dashes, and numbering. It always claims the input.
func parseLines(raw string) ([]string, bool) {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		item := listMarkerRe.ReplaceAllString(line, "")
		questions = append(questions, item)
	}
	return questions, true
}

// Normalize trims entries, drops empties, removes exact duplicates
// (first occurrence wins) and truncates to limit.
func Normalize(questions []string, limit int) []string {
	seen := make(map[string]struct{}, len(questions))
	out := make([]string, 0, len(questions))

	for _, q := range questions {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out
}
