package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NoWordsMessage is shown instead of a report when ErrNoWords is returned.
const NoWordsMessage = "Не найдено слов для анализа"

type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Report is non-empty and ordered by count, highest first.
type Report struct {
	Entries []Entry `json:"entries"`
	// Total is the number of counted words.
	Total int `json:"total"`
	// Distinct is the number of different words before truncation.
	Distinct int `json:"distinct"`
}

// MostFrequent is the zero Entry for an empty report.
func (r *Report) MostFrequent() Entry {
	if len(r.Entries) == 0 {
		return Entry{}
	}
	return r.Entries[0]
}

// LeastFrequent is the last retained entry, which is not the rarest word
// overall when the report was truncated.
func (r *Report) LeastFrequent() Entry {
	if len(r.Entries) == 0 {
		return Entry{}
	}
	return r.Entries[len(r.Entries)-1]
}

func (r *Report) Truncated() bool {
	return r.Distinct > len(r.Entries)
}

// String renders NoWordsMessage for an empty report.
func (r *Report) String() string {
	if len(r.Entries) == 0 {
		return NoWordsMessage
	}
	var b strings.Builder
	most, least := r.MostFrequent(), r.LeastFrequent()
	fmt.Fprintf(&b, "САМОЕ ЧАСТОЕ СЛОВО: %s - %d\n", most.Word, most.Count)
	b.WriteString("\nЧастота слов:\n\n")
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "%s — %d\n", e.Word, e.Count)
	}
	fmt.Fprintf(&b, "\n\nСАМОЕ РЕДКОЕ СЛОВО: %s - %d", least.Word, least.Count)
	return b.String()
}

func (r *Report) MarshalJSON() ([]byte, error) {
	type report Report
	if len(r.Entries) == 0 {
		return json.Marshal((*report)(r))
	}
	return json.Marshal(struct {
		*report
		MostFrequent  Entry `json:"most_frequent"`
		LeastFrequent Entry `json:"least_frequent"`
	}{
		report:        (*report)(r),
		MostFrequent:  r.MostFrequent(),
		LeastFrequent: r.LeastFrequent(),
	})
}
