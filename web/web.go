package web

import (
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"

	"github.com/szuwgh/wordfreq/pkg/analysis"
	"github.com/szuwgh/wordfreq/pkg/log"
	"github.com/szuwgh/wordfreq/pkg/server"
	"github.com/szuwgh/wordfreq/util"
)

var ok = []byte("ok")

type Options struct {
	Listen       string
	MaxConns     int
	MaxBodyBytes int64
}

type Handler struct {
	s    *server.Server
	opts Options
}

func New(s *server.Server, opts Options) *Handler {
	return &Handler{s: s, opts: opts}
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeErr(w, http.StatusMethodNotAllowed, "use POST")
		return
	}
	body := r.Body
	if h.opts.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	}
	b, err := ioutil.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErr(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	top := int(util.Str2Int64(q.Get("top")))
	res, err := h.s.Analyze(b, top)
	switch {
	case errors.Is(err, server.ErrEmptyInput):
		writeErr(w, http.StatusBadRequest, server.EmptyInputMessage)
		return
	case errors.Is(err, analysis.ErrNoWords):
		writeErr(w, http.StatusUnprocessableEntity, analysis.NoWordsMessage)
		return
	case err != nil:
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("X-Analysis-Id", res.ID)
	if q.Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write(util.Str2bytes(res.Report.String()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Warn("write response", zap.String("id", res.ID), zap.Error(err))
	}
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Write(ok)
}

// Mux routes every endpoint of the service.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", h.analyze)
	mux.HandleFunc("/healthz", healthz)
	mux.Handle("/metrics", promhttp.HandlerFor(h.s.Registry(), promhttp.HandlerOpts{}))
	return mux
}

// Serve answers on l until the listener fails.
func (h *Handler) Serve(l net.Listener) error {
	if h.opts.MaxConns > 0 {
		l = netutil.LimitListener(l, h.opts.MaxConns)
	}
	srv := &http.Server{
		Handler:           h.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.Serve(l)
}

func (h *Handler) Run() error {
	l, err := net.Listen("tcp", h.opts.Listen)
	if err != nil {
		return errors.Wrapf(err, "listen %s", h.opts.Listen)
	}
	log.Info("server start", zap.String("listen", l.Addr().String()), zap.Int("max_conns", h.opts.MaxConns))
	return h.Serve(l)
}
