package llmscore

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	MinScore     = 1
	MaxScore     = 10
	NeutralScore = 5
)

// StripCodeFence removes a ```json ... ``` wrapper the model sometimes adds.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if nl := strings.Index(text, "\n"); nl != -1 {
			text = text[nl+1:]
		}
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

// extractArray returns the span from the first '[' to the last ']', or text
// unchanged when there is no such span.
func extractArray(text string) string {
	text = StripCodeFence(text)
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start != -1 && end > start {
		return text[start : end+1]
	}
	return text
}

// ParseScores turns a rating response into exactly n scores in [1,10].
// Short arrays are padded with NeutralScore and long ones truncated; any
// response that does not decode to an array of numbers yields n neutral
// scores. The second result is how many scores came from the response.
func ParseScores(text string, n int) ([]int, int) {
	if n <= 0 {
		return []int{}, 0
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(extractArray(text)), &raw); err != nil {
		return neutral(n), 0
	}

	scores := make([]int, 0, n)
	for _, r := range raw {
		v, ok := toInt(r)
		if !ok {
			return neutral(n), 0
		}
		scores = append(scores, clamp(v))
	}

	parsed := len(scores)
	if parsed > n {
		parsed = n
		scores = scores[:n]
	}
	for len(scores) < n {
		scores = append(scores, NeutralScore)
	}
	return scores, parsed
}

// toInt accepts numbers (fractions truncated), numeric strings and booleans.
func toInt(r json.RawMessage) (int, bool) {
	var v interface{}
	if err := json.Unmarshal(r, &v); err != nil {
		return 0, false
	}

	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		t := math.Trunc(x)
		if t > MaxScore {
			return MaxScore, true
		}
		if t < MinScore {
			return MinScore, true
		}
		return int(t), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return i, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func clamp(v int) int {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}

func neutral(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = NeutralScore
	}
	return out
}

// Translation is the Korean rendering of one article.
type Translation struct {
	TitleKR   string `json:"title_kr"`
	SummaryKR string `json:"summary_kr"`
}

// ParseTranslations decodes a translation response into exactly n entries.
// Entries the model got wrong stay empty.
func ParseTranslations(text string, n int) []Translation {
	out := make([]Translation, 0, n)

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(extractArray(text)), &raw); err == nil {
		for _, r := range raw {
			out = append(out, decodeTranslation(r))
		}
	}

	if len(out) > n {
		out = out[:n]
	}
	for len(out) < n {
		out = append(out, Translation{})
	}
	return out
}

func decodeTranslation(r json.RawMessage) Translation {
	var t Translation
	if err := json.Unmarshal(r, &t); err == nil {
		return t
	}
	// a bare string is taken as the summary
	var s string
	if err := json.Unmarshal(r, &s); err == nil {
		return Translation{SummaryKR: s}
	}
	return Translation{}
}

// Analysis is the briefing metadata of one article.
type Analysis struct {
	Country      string
	Oneliner     string
	Hashtags     string
	Summary3Sent string
}

// ParseAnalyses decodes an analysis response into exactly n entries. Fields
// that are missing or not strings stay empty.
func ParseAnalyses(text string, n int) []Analysis {
	out := make([]Analysis, 0, n)

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(extractArray(text)), &raw); err == nil {
		for _, r := range raw {
			out = append(out, decodeAnalysis(r))
		}
	}

	if len(out) > n {
		out = out[:n]
	}
	for len(out) < n {
		out = append(out, Analysis{})
	}
	return out
}

func decodeAnalysis(r json.RawMessage) Analysis {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r, &fields); err != nil {
		return Analysis{}
	}
	return Analysis{
		Country:      stringField(fields, "country"),
		Oneliner:     stringField(fields, "oneliner"),
		Hashtags:     stringField(fields, "hashtags"),
		Summary3Sent: stringField(fields, "summary_3sent"),
	}
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if err := json.Unmarshal(fields[key], &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
