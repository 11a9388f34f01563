package gojieba

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_gojieba_tokenizer(t *testing.T) {
	tk, err := NewTokenizer(DefaultConfig())
	require.NoError(t, err)
	defer tk.(*JiebaTokenizer).Free()

	s := "长江,百度搜索是最差劲的，长江"
	tokens := tk.Tokenize([]byte(s))
	require.NotEmpty(t, tokens)
	fmt.Println(strings.Join(tokens.Terms(), "/"))

	var count int
	for i, v := range tokens {
		assert.Equal(t, i+1, v.Position)
		if v.Term == "长江" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func Test_gojieba_missing_config(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg, "idf")
	_, err := NewTokenizer(cfg)
	assert.Error(t, err)
}
