package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terms(s string) []string {
	tk, _ := NewTokenizer(nil)
	return tk.Tokenize([]byte(s)).Terms()
}

func Test_Tokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"blank", "  \t\n ", []string{}},
		{"punctuation", "!!! ... ???", []string{}},
		{"lone joiners", "-- ' - ''", []string{}},
		{"simple", "word, word. word!", []string{"word", "word", "word"}},
		{"hyphen", "state-of-the-art equipment", []string{"state-of-the-art", "equipment"}},
		{"apostrophe", "it's 'quoted'", []string{"it's", "quoted"}},
		{"edge joiners", "--a--b-- -c", []string{"a--b", "c"}},
		{"cyrillic", "Мама мыла раму.", []string{"Мама", "мыла", "раму"}},
		{"digits underscore", "a_1 42", []string{"a_1", "42"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, terms(c.in))
		})
	}
}

func Test_TokenizeNFC(t *testing.T) {
	// "й" written as "и" + combining breve
	got := terms("мо\u0438\u0306 мой")
	assert.Equal(t, []string{"мой", "мой"}, got)
}

func Test_IteratorOffsets(t *testing.T) {
	it := NewIterator([]byte("ab, -cd"))
	require.True(t, it.Next())
	tok := it.At()
	assert.Equal(t, "ab", tok.Term)
	assert.Equal(t, 0, tok.Start)
	assert.Equal(t, 2, tok.End)
	assert.Equal(t, 1, tok.Position)

	require.True(t, it.Next())
	tok = it.At()
	assert.Equal(t, "cd", tok.Term)
	assert.Equal(t, 5, tok.Start)
	assert.Equal(t, 2, tok.Position)
	assert.Equal(t, "cd", string(it.Text()[tok.Start:tok.End]))
	assert.False(t, it.Next())
}

func Test_IteratorReset(t *testing.T) {
	it := NewIterator([]byte("one two"))
	var first, second []string
	for it.Next() {
		first = append(first, it.At().Term)
	}
	it.Reset()
	for it.Next() {
		second = append(second, it.At().Term)
	}
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"one", "two"}, second)
}
