package server

import (
	"testing"

	"github.com/oklog/ulid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szuwgh/wordfreq/pkg/analysis"
	"github.com/szuwgh/wordfreq/pkg/morph"
	"github.com/szuwgh/wordfreq/pkg/tokenizer/word"
)

func newTestServer(t *testing.T, cacheSize int) *Server {
	tk, err := word.NewTokenizer(nil)
	require.NoError(t, err)
	d, err := morph.SeedDictionary()
	require.NoError(t, err)
	s, err := New(analysis.New(tk, morph.Fallback{d, morph.Identity}, 0), Options{CacheSize: cacheSize})
	require.NoError(t, err)
	return s
}

func Test_ServerAnalyze(t *testing.T) {
	s := newTestServer(t, 8)
	text := []byte("Мама мыла раму. Рама мыла мылом.")

	r1, err := s.Analyze(text, 0)
	require.NoError(t, err)
	assert.False(t, r1.Cached)
	assert.Equal(t, analysis.Entry{Word: "мыть", Count: 2}, r1.Report.MostFrequent())
	_, err = ulid.Parse(r1.ID)
	require.NoError(t, err)

	r2, err := s.Analyze(text, 0)
	require.NoError(t, err)
	assert.True(t, r2.Cached)
	assert.Equal(t, r1.Report, r2.Report)
	assert.NotEqual(t, r1.ID, r2.ID)

	r3, err := s.Analyze(text, 1)
	require.NoError(t, err)
	assert.False(t, r3.Cached)
	assert.Len(t, r3.Report.Entries, 1)

	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.cacheHits))
	assert.Equal(t, float64(3), testutil.ToFloat64(s.metrics.analyzeTotal.WithLabelValues(resultOK)))
	assert.Equal(t, float64(12), testutil.ToFloat64(s.metrics.wordsTotal))
}

func Test_ServerEmpty(t *testing.T) {
	s := newTestServer(t, 0)
	_, err := s.Analyze([]byte(" \n\t"), 0)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	_, err = s.Analyze([]byte("!!! ... ???"), 0)
	assert.True(t, errors.Is(err, analysis.ErrNoWords))

	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.analyzeTotal.WithLabelValues(resultBlank)))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.analyzeTotal.WithLabelValues(resultEmpty)))
}

func Test_ServerNoCache(t *testing.T) {
	s := newTestServer(t, 0)
	for i := 0; i < 2; i++ {
		r, err := s.Analyze([]byte("cat cat"), 0)
		require.NoError(t, err)
		assert.False(t, r.Cached)
	}
	assert.Equal(t, float64(0), testutil.ToFloat64(s.metrics.cacheHits))
}
