package web

import (
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/szuwgh/cograph/pkg/analysis"
	"github.com/szuwgh/cograph/pkg/cooccur"
	"github.com/szuwgh/cograph/pkg/render"
	"github.com/szuwgh/cograph/util"
)

const maxBody = 16 << 20

type Handler struct {
	a    *analysis.Analyzer
	opts cooccur.Options
	log  *util.Logger
}

func New(a *analysis.Analyzer, opts cooccur.Options, logger *util.Logger) *Handler {
	return &Handler{a: a, opts: opts, log: logger}
}

// options applies window, top_n, restrict and mode query overrides.
func (h *Handler) options(r *http.Request) (cooccur.Options, error) {
	opts := h.opts
	q := r.URL.Query()
	var err error
	if s := q.Get("window"); s != "" {
		if opts.Window, err = strconv.Atoi(s); err != nil {
			return opts, errors.Wrap(err, "window")
		}
	}
	if s := q.Get("top_n"); s != "" {
		if opts.TopN, err = strconv.Atoi(s); err != nil {
			return opts, errors.Wrap(err, "top_n")
		}
	}
	if s := q.Get("restrict"); s != "" {
		if opts.Restrict, err = strconv.ParseBool(s); err != nil {
			return opts, errors.Wrap(err, "restrict")
		}
	}
	if s := q.Get("mode"); s != "" {
		if opts.Mode, err = cooccur.ParseMode(s); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func (h *Handler) readStream(w http.ResponseWriter, r *http.Request) (cooccur.Stream, error) {
	b, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	return h.a.Stream(b), nil
}

func (h *Handler) graph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, errors.New("use POST"))
		return
	}
	opts, err := h.options(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	format := render.FormatJSON
	if s := r.URL.Query().Get("format"); s != "" {
		if format, err = render.ParseFormat(s); err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
	}
	p, err := cooccur.NewPipeline(opts)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	stream, err := h.readStream(w, r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	res, err := p.Run(stream)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	h.log.Debug("run %s: %d terms, %d nodes, %d edges", res.ID, len(stream), res.Graph.NumNodes(), res.Graph.NumEdges())

	switch format {
	case render.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	if err := render.Write(w, format, render.FromResult(res)); err != nil {
		h.log.Error("write run %s: %v", res.ID, err)
	}
}

func (h *Handler) freq(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, errors.New("use POST"))
		return
	}
	n := 15
	if s := r.URL.Query().Get("n"); s != "" {
		var err error
		if n, err = strconv.Atoi(s); err != nil || n < 0 {
			writeErr(w, http.StatusBadRequest, errors.Wrapf(cooccur.ErrInvalidTopN, "n=%s", s))
			return
		}
	}
	stream, err := h.readStream(w, r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	ft := cooccur.CountFrequencies(stream, h.opts.Stopwords.OrDefault())
	w.Header().Set("Content-Type", "application/json")
	if err := writeJSON(w, ft.MostCommon(n)); err != nil {
		h.log.Error("write frequencies: %v", err)
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/graph", h.graph)
	mux.HandleFunc("/freq", h.freq)
	return mux
}

func (h *Handler) Run(addr string) error {
	h.log.Info("server start: %s", addr)
	return http.ListenAndServe(addr, h.Routes())
}
