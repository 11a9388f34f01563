// Package word splits text into runs of word characters, apostrophes and
// hyphens. It is the default tokenizer for languages that separate words with
// spaces and punctuation.
package word

import (
	"unicode"
	"unicode/utf8"

	"github.com/szuwgh/wordfreq/pkg/tokenizer"
	"golang.org/x/text/unicode/norm"
)

const Type = "word"

func init() {
	tokenizer.RegiterConstructor(Type, NewTokenizer)
}

// IsWordRune reports whether r is a word character: a letter, a digit or an
// underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '-'
}

type WordTokenizer struct{}

func NewTokenizer(config map[string]interface{}) (tokenizer.Tokenizer, error) {
	return &WordTokenizer{}, nil
}

//tokenize
func (t *WordTokenizer) Tokenize(content []byte) tokenizer.Tokens {
	result := make(tokenizer.Tokens, 0)
	it := NewIterator(content)
	for it.Next() {
		tok := it.At()
		result = append(result, &tok)
	}
	return result
}

// Iterator walks the tokens of a text lazily. Offsets refer to the NFC form
// of the input, which Text returns.
type Iterator struct {
	text []byte
	off  int
	pos  int
	cur  tokenizer.Token
}

func NewIterator(content []byte) *Iterator {
	return &Iterator{text: norm.NFC.Bytes(content)}
}

// Text returns the normalized text the offsets point into.
func (it *Iterator) Text() []byte {
	return it.text
}

// Reset rewinds the iterator to the first token.
func (it *Iterator) Reset() {
	it.off = 0
	it.pos = 0
	it.cur = tokenizer.Token{}
}

func (it *Iterator) At() tokenizer.Token {
	return it.cur
}

func (it *Iterator) Next() bool {
	for it.off < len(it.text) {
		start, end := it.nextRun()
		if start == end {
			continue
		}
		start, end = trimJoiners(it.text, start, end)
		if start == end {
			continue
		}
		it.pos++
		it.cur = tokenizer.Token{
			Start:    start,
			End:      end,
			Term:     string(it.text[start:end]),
			Position: it.pos,
		}
		return true
	}
	return false
}

// nextRun skips separators and returns the bounds of the following run of
// word runes and joiners.
func (it *Iterator) nextRun() (int, int) {
	for it.off < len(it.text) {
		r, size := utf8.DecodeRune(it.text[it.off:])
		if IsWordRune(r) || isJoiner(r) {
			break
		}
		it.off += size
	}
	start := it.off
	for it.off < len(it.text) {
		r, size := utf8.DecodeRune(it.text[it.off:])
		if !IsWordRune(r) && !isJoiner(r) {
			break
		}
		it.off += size
	}
	return start, it.off
}

// trimJoiners drops apostrophes and hyphens that are not enclosed by word
// runes, so a token always starts and ends on a word boundary.
func trimJoiners(b []byte, start, end int) (int, int) {
	for start < end {
		r, size := utf8.DecodeRune(b[start:end])
		if !isJoiner(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRune(b[start:end])
		if !isJoiner(r) {
			break
		}
		end -= size
	}
	return start, end
}
