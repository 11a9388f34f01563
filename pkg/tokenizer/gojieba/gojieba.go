// Package gojieba segments Chinese text, which has no spaces between words.
package gojieba

import (
	"github.com/pkg/errors"
	"github.com/szuwgh/wordfreq/pkg/tokenizer"

	"github.com/yanyiwu/gojieba"
)

const Type = "gojieba"

func init() {
	tokenizer.RegiterConstructor(Type, NewTokenizer)
}

// DefaultConfig points at the dictionaries shipped with gojieba.
func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"dict_path":    gojieba.DICT_PATH,
		"hmmpath":      gojieba.HMM_PATH,
		"userdictpath": gojieba.USER_DICT_PATH,
		"idf":          gojieba.IDF_PATH,
		"stop_words":   gojieba.STOP_WORDS_PATH,
	}
}

type JiebaTokenizer struct {
	handle *gojieba.Jieba
}

func NewTokenizer(config map[string]interface{}) (tokenizer.Tokenizer, error) {
	paths := make([]string, 0, 5)
	for _, key := range []string{"dict_path", "hmmpath", "userdictpath", "idf", "stop_words"} {
		v, ok := config[key].(string)
		if !ok || v == "" {
			return nil, errors.Errorf("config %s not found", key)
		}
		paths = append(paths, v)
	}
	return &JiebaTokenizer{
		handle: gojieba.NewJieba(paths...),
	}, nil
}

//tokenize
func (t *JiebaTokenizer) Tokenize(content []byte) tokenizer.Tokens {
	result := make(tokenizer.Tokens, 0)
	pos := 1
	words := t.handle.Tokenize(string(content), gojieba.DefaultMode, true)
	for _, word := range words {
		token := tokenizer.Token{
			Term:     word.Str,
			Start:    word.Start,
			End:      word.End,
			Position: pos,
		}
		result = append(result, &token)
		pos++
	}
	return result
}

// Free releases the underlying C dictionaries.
func (t *JiebaTokenizer) Free() {
	t.handle.Free()
}
