package analysis

import (
	"github.com/pkg/errors"
	"github.com/szuwgh/wordfreq/pkg/log"
	"github.com/szuwgh/wordfreq/pkg/morph"
	"github.com/szuwgh/wordfreq/pkg/tokenizer"
	"go.uber.org/zap"
)

// DefaultTopN is how many entries a report keeps.
const DefaultTopN = 50

// ErrNoWords means the text held nothing to count.
var ErrNoWords = errors.New("no words found for analysis")

// Analyzer counts normalized word frequencies. It keeps no state between
// calls besides its tokenizer and normalizer.
type Analyzer struct {
	t       tokenizer.Tokenizer
	topN    int
	process analyzeFunc
}

// New builds an Analyzer. topN <= 0 selects DefaultTopN.
func New(t tokenizer.Tokenizer, n morph.Normalizer, topN int) *Analyzer {
	if topN <= 0 {
		topN = DefaultTopN
	}
	c := NewChain()
	c.Use(CleanMiddleware())
	c.Use(NormalizeMiddleware(n))
	return &Analyzer{
		t:       t,
		topN:    topN,
		process: c.Last(Count),
	}
}

// NewAnalyzer looks the tokenizer up in the registry.
func NewAnalyzer(tokenizerType string, config map[string]interface{}, n morph.Normalizer, topN int) (*Analyzer, error) {
	if tokenizer.RegistryInstance == nil {
		tokenizer.Init()
	}
	t, err := tokenizer.RegistryInstance.NewTokenizer(tokenizerType, config)
	if err != nil {
		return nil, err
	}
	return New(t, n, topN), nil
}

func (a *Analyzer) TopN() int {
	return a.topN
}

//分析
func (a *Analyzer) Analyze(input []byte) (*Report, error) {
	return a.AnalyzeTop(input, a.topN)
}

// AnalyzeTop is Analyze with a per call report size.
func (a *Analyzer) AnalyzeTop(input []byte, topN int) (*Report, error) {
	if topN <= 0 {
		topN = a.topN
	}
	tokens := a.t.Tokenize(input)
	table := NewFrequencyTable()
	skipped := 0
	for _, tok := range tokens {
		ctx := &Context{Raw: tok.Term, Position: tok.Position, Table: table}
		a.process(ctx)
		skipped += ctx.Skipped
	}
	log.Debug("analyzed text",
		zap.Int("tokens", len(tokens)),
		zap.Int("skipped", skipped),
		zap.Int("distinct", table.Len()))
	if table.Len() == 0 {
		return nil, ErrNoWords
	}
	return &Report{
		Entries:  table.Rank(topN),
		Total:    table.Total(),
		Distinct: table.Len(),
	}, nil
}
