package analysis

import "sort"

// FrequencyTable counts normalized words and remembers the order in which
// each word was first seen.
type FrequencyTable struct {
	index   map[string]int
	entries []Entry
	total   int
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{index: make(map[string]int)}
}

func (t *FrequencyTable) Add(word string) {
	t.total++
	if i, ok := t.index[word]; ok {
		t.entries[i].Count++
		return
	}
	t.index[word] = len(t.entries)
	t.entries = append(t.entries, Entry{Word: word, Count: 1})
}

// Count returns the occurrences of word, zero if never added.
func (t *FrequencyTable) Count(word string) int {
	if i, ok := t.index[word]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Len is the number of distinct words.
func (t *FrequencyTable) Len() int {
	return len(t.entries)
}

// Total is the number of words added.
func (t *FrequencyTable) Total() int {
	return t.total
}

// Rank sorts by count descending, keeping first-occurrence order among equal
// counts, and keeps at most topN entries. topN <= 0 keeps everything.
func (t *FrequencyTable) Rank(topN int) []Entry {
	ranked := make([]Entry, len(t.entries))
	copy(ranked, t.entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
