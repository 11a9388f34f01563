// Package buildinit registers every tokenizer shipped with wordfreq.
package buildinit

import (
	_ "github.com/szuwgh/wordfreq/pkg/tokenizer/gojieba"
	_ "github.com/szuwgh/wordfreq/pkg/tokenizer/word"
)
