package server

import (
	"bytes"
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/cespare/xxhash"
	lru "github.com/hashicorp/golang-lru"
	"github.com/oklog/ulid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/szuwgh/wordfreq/pkg/analysis"
	"github.com/szuwgh/wordfreq/pkg/log"
)

// EmptyInputMessage is shown when there is no text at all.
const EmptyInputMessage = "Введите текст для анализа"

// ErrEmptyInput rejects text that is blank before it reaches the analyzer.
var ErrEmptyInput = errors.New(EmptyInputMessage)

type Options struct {
	// CacheSize is the number of reports kept, 0 disables the cache.
	CacheSize int
}

//服务
type Server struct {
	a       *analysis.Analyzer
	cache   *lru.Cache
	reg     *prometheus.Registry
	metrics *metrics

	mu      sync.Mutex
	entropy io.Reader
}

type Result struct {
	ID     string           `json:"id"`
	Cached bool             `json:"cached"`
	Report *analysis.Report `json:"report"`
}

type cacheKey struct {
	sum  uint64
	size int
	topN int
}

func New(a *analysis.Analyzer, opts Options) (*Server, error) {
	s := &Server{
		a:       a,
		reg:     prometheus.NewRegistry(),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	if opts.CacheSize > 0 {
		c, err := lru.New(opts.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "new report cache")
		}
		s.cache = c
	}
	s.metrics = newMetrics(s.reg)
	return s, nil
}

// Registry exposes the server metrics.
func (s *Server) Registry() *prometheus.Registry {
	return s.reg
}

func (s *Server) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Analyze counts the words of text. topN <= 0 uses the analyzer default.
// Reports are cached by content, every call gets a fresh ID.
func (s *Server) Analyze(text []byte, topN int) (*Result, error) {
	if len(bytes.TrimSpace(text)) == 0 {
		s.metrics.analyzeTotal.WithLabelValues(resultBlank).Inc()
		return nil, ErrEmptyInput
	}
	if topN <= 0 {
		topN = s.a.TopN()
	}
	id := s.newID()
	key := cacheKey{sum: xxhash.Sum64(text), size: len(text), topN: topN}
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			s.metrics.cacheHits.Inc()
			s.metrics.analyzeTotal.WithLabelValues(resultOK).Inc()
			return &Result{ID: id, Cached: true, Report: v.(*analysis.Report)}, nil
		}
	}

	start := time.Now()
	report, err := s.a.AnalyzeTop(text, topN)
	s.metrics.analyzeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, analysis.ErrNoWords) {
			s.metrics.analyzeTotal.WithLabelValues(resultEmpty).Inc()
		}
		log.Debug("analyze", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.metrics.analyzeTotal.WithLabelValues(resultOK).Inc()
	s.metrics.wordsTotal.Add(float64(report.Total))
	if s.cache != nil {
		s.cache.Add(key, report)
	}
	log.Debug("analyze",
		zap.String("id", id),
		zap.Int("words", report.Total),
		zap.Int("distinct", report.Distinct),
		zap.Duration("took", time.Since(start)))
	return &Result{ID: id, Report: report}, nil
}
