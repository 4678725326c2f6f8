package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/toshiksharma271/collab-insight-engine/internal/analytics"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"github.com/toshiksharma271/collab-insight-engine/internal/graph"
	"github.com/toshiksharma271/collab-insight-engine/internal/scenario"
)

// Handler builds the router with every route and middleware attached.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.log))
	r.Use(s.instrument)

	origins := s.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)
	r.Get("/", s.index)
	r.Get("/network.svg", s.networkSVG)
	r.Get("/network.html", s.networkHTML)

	r.Route("/api", func(r chi.Router) {
		r.Get("/network", s.network)
		r.Get("/overview", s.overview)
		r.Get("/roi", s.roi)
		r.Get("/collaboration", s.collaboration)
		r.Get("/timeseries", s.timeseries)
		r.Get("/scenario", s.scenario)
	})

	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ds := s.Dataset()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"people":   len(ds.People),
		"projects": len(ds.Projects),
	})
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>insight</title>
<style>body{font-family:system-ui,sans-serif;margin:2rem;color:#1f2937}a{color:#2563eb}li{margin:.3rem 0}</style>
</head>
<body>
<h1>Collaboration insight</h1>
<p>{{.People}} people, {{.Links}} links, {{.Projects}} projects.</p>
<ul>
<li><a href="/network.html">Collaboration network</a></li>
<li><a href="/network.svg">Network (SVG)</a></li>
<li><a href="/api/overview">Overview</a></li>
<li><a href="/api/roi">ROI analysis</a></li>
<li><a href="/api/collaboration">Collaboration impact</a></li>
<li><a href="/api/timeseries">Monthly trend</a></li>
<li><a href="/api/scenario">Scenario (default controls)</a></li>
<li><a href="/metrics">Metrics</a></li>
</ul>
</body>
</html>
`))

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	ds := s.Dataset()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTmpl.Execute(w, map[string]int{
		"People":   len(ds.People),
		"Links":    len(ds.Links),
		"Projects": len(ds.Projects),
	})
	if err != nil {
		s.log.Error("rendering index", zap.Error(err))
	}
}

// scene builds the network at the requested size, recording what it dropped.
func (s *Server) scene(r *http.Request) (graph.Scene, error) {
	width, err := floatParam(r, "width", s.opts.Width)
	if err != nil {
		return graph.Scene{}, err
	}
	height, err := floatParam(r, "height", s.opts.Height)
	if err != nil {
		return graph.Scene{}, err
	}
	if err := graph.CheckDimensions(width, height); err != nil {
		return graph.Scene{}, err
	}

	ds := s.Dataset()
	sc := graph.Build(ds.People, ds.Links, width, height)
	s.metrics.RecordScene(sc.Dropped)
	if sc.Dropped > 0 {
		ids := make([]string, 0, len(sc.DroppedLinks))
		for _, e := range sc.DroppedLinks {
			ids = append(ids, e.Source+"->"+e.Target)
		}
		s.log.Warn("links reference unknown people", zap.Int("dropped", sc.Dropped), zap.Strings("links", ids))
	}
	s.log.Debug("scene built",
		zap.Int("nodes", len(sc.Circles)),
		zap.Int("lines", len(sc.Lines)),
		zap.Int("dropped", sc.Dropped),
	)
	return sc, nil
}

func (s *Server) networkSVG(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scene(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	sc.WriteSVG(w, s.opts.Style)
}

func (s *Server) networkHTML(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scene(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(sc.ExportHTML("Collaboration network", s.opts.Style)))
}

type networkResponse struct {
	Stats graph.NetworkStats `json:"stats"`
	Scene graph.Scene        `json:"scene"`
}

func (s *Server) network(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scene(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, networkResponse{Stats: graph.Analyze(s.Dataset()), Scene: sc})
}

func (s *Server) overview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.OverviewOf(s.Dataset()))
}

func (s *Server) roi(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.ROIOf(s.Dataset()))
}

func (s *Server) collaboration(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.CollaborationOf(s.Dataset()))
}

func (s *Server) timeseries(w http.ResponseWriter, r *http.Request) {
	timeline := s.Dataset().Timeline
	if timeline == nil {
		timeline = []dataset.MonthPoint{}
	}
	writeJSON(w, http.StatusOK, timeline)
}

func (s *Server) scenario(w http.ResponseWriter, r *http.Request) {
	c := scenario.DefaultControls()
	var err error
	if c.CollaborationIncrease, err = floatParam(r, "increase", c.CollaborationIncrease); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if c.ToolsInvestment, err = floatParam(r, "tools", c.ToolsInvestment); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if c.TrainingInvestment, err = floatParam(r, "training", c.TrainingInvestment); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := scenario.Run(s.opts.Baseline, c)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// floatParam reads a numeric query parameter, returning def when it is absent.
func floatParam(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Newf("invalid %s %q: not a number", name, raw)
	}
	return v, nil
}

// writeJSON encodes v in full before writing. A value that cannot be encoded
// is answered with a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Error: errors.Wrap(err, "encoding response").Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error: err.Error(),
		Hint:  errors.FlattenHints(err),
	})
}
