package analysis

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/szuwgh/wordfreq/pkg/log"
	"github.com/szuwgh/wordfreq/pkg/morph"
	"github.com/szuwgh/wordfreq/pkg/tokenizer/word"
	"go.uber.org/zap"
)

// Context carries one token through the chain.
type Context struct {
	Raw      string
	Term     string
	Position int
	Table    *FrequencyTable
	Skipped  int
}

//analyzeFunc 处理一个词
type analyzeFunc func(context *Context)

//middleware 中间件
type middleware func(analyzeFunc) analyzeFunc

//Chain 分析链
type Chain struct {
	middlewares []middleware
}

//NewChain 一个分析链 ...
func NewChain() *Chain {
	return &Chain{}
}

//Use 添加一个中间件
func (c *Chain) Use(m middleware) {
	c.middlewares = append(c.middlewares, m)
}

//Last 最后一个方法
func (c *Chain) Last(h analyzeFunc) analyzeFunc {
	for j := range c.middlewares {
		h = c.middlewares[len(c.middlewares)-1-j](h)
	}
	return h
}

// Clean strips every non-word rune and lowercases what is left.
func Clean(raw string) string {
	return strings.Map(func(r rune) rune {
		if word.IsWordRune(r) {
			return r
		}
		return -1
	}, strings.ToLower(raw))
}

//CleanMiddleware 清洗词语, 空词直接丢弃
func CleanMiddleware() middleware {
	return func(f analyzeFunc) analyzeFunc {
		return func(context *Context) {
			context.Term = Clean(context.Raw)
			if context.Term == "" {
				context.Skipped++
				return
			}
			f(context)
		}
	}
}

//NormalizeMiddleware 词形还原, 失败的词跳过
func NormalizeMiddleware(n morph.Normalizer) middleware {
	return func(f analyzeFunc) analyzeFunc {
		return func(context *Context) {
			lemma, err := normalize(n, context.Term)
			if err != nil || lemma == "" {
				log.Debug("skip token",
					zap.String("term", context.Term),
					zap.Int("position", context.Position),
					zap.Error(err))
				context.Skipped++
				return
			}
			context.Term = lemma
			f(context)
		}
	}
}

// normalize treats a panicking normalizer as a failed token.
func normalize(n morph.Normalizer, term string) (lemma string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("normalizer panic: %v", r)
		}
	}()
	return n.Normalize(term)
}

//Count 写入词频
func Count(context *Context) {
	context.Table.Add(context.Term)
}
