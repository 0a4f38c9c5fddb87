// Package handler serves the breed engine over HTTP. Every handler answers JSON by default and
// Korean markdown when called with format=markdown.
package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"dogbreed-service/internal/breeds/catalog"
	"dogbreed-service/internal/breeds/model"
	"dogbreed-service/internal/breeds/service"
	"dogbreed-service/internal/metrics"
	"dogbreed-service/internal/middleware"
	"dogbreed-service/internal/render"
)

type Handler struct {
	catalogs *catalog.Holder
	aliases  catalog.AliasTable
	logger   zerolog.Logger
	validate *validator.Validate
}

func New(catalogs *catalog.Holder, aliases catalog.AliasTable, logger zerolog.Logger) *Handler {
	return &Handler{
		catalogs: catalogs,
		aliases:  aliases,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) reqLogger(r *http.Request) zerolog.Logger {
	if rid := middleware.GetRequestID(r); rid != "" {
		return h.logger.With().Str("req_id", rid).Logger()
	}
	return h.logger
}

// Search resolves ?q= to a record. Misses and suggestions answer 404 with the result body.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		metrics.Observe("search", "bad_request", start)
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	cat := h.catalogs.Current()
	res := service.Resolve(cat, h.aliases, q)
	metrics.Observe("search", res.Kind.String(), start)

	status := http.StatusOK
	if !res.Found() {
		status = http.StatusNotFound
	}
	if wantsMarkdown(r) {
		if cat.Len() == 0 {
			writeMarkdown(w, status, render.MsgEmptyCatalog)
			return
		}
		writeMarkdown(w, status, render.Search(res))
		return
	}
	h.writeJSON(w, r, status, res)
}

type recommendRequest struct {
	LivingSpace     string `json:"living_space" validate:"max=64"`
	ActivityLevel   string `json:"activity_level" validate:"max=32"`
	ConcernShedding bool   `json:"concern_shedding"`
	ConcernBarking  bool   `json:"concern_barking"`
	IsBeginner      bool   `json:"is_beginner"`
	K               *int   `json:"k"` // k <= 0 yields no results
	Variety         bool   `json:"variety"`
	Pool            int    `json:"pool" validate:"min=0"`
	Seed            *int64 `json:"seed"`
}

func (req recommendRequest) profile() model.Profile {
	p := model.DefaultProfile()
	if s := strings.TrimSpace(req.LivingSpace); s != "" {
		p.LivingSpace = s
	}
	if s := strings.TrimSpace(req.ActivityLevel); s != "" {
		p.ActivityLevel = s
	}
	p.ConcernShedding = req.ConcernShedding
	p.ConcernBarking = req.ConcernBarking
	p.IsBeginner = req.IsBeginner
	return p
}

type recommendation struct {
	Record       *model.BreedRecord `json:"record"`
	Score        int                `json:"score"`
	DisplayScore int                `json:"display_score"`
	Reasons      []model.Reason     `json:"reasons"`
}

type recommendResponse struct {
	Profile model.Profile    `json:"profile"`
	K       int              `json:"k"`
	Seed    *int64           `json:"seed,omitempty"`
	Results []recommendation `json:"results"`
}

// Recommend ranks the catalog against the posted profile. An empty body uses the default profile.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := h.reqLogger(r)

	var req recommendRequest
	if err := decodeBody(r, &req); err != nil {
		metrics.Observe("recommend", "bad_request", start)
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		metrics.Observe("recommend", "bad_request", start)
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	k := service.DefaultRecommendK
	if req.K != nil {
		k = *req.K
	}
	p := req.profile()
	cat := h.catalogs.Current()

	resp := recommendResponse{Profile: p, K: k}
	var picks []model.ScoredRecord
	if req.Variety {
		seed := time.Now().UnixNano()
		if req.Seed != nil {
			seed = *req.Seed
		}
		pool := req.Pool
		if pool == 0 {
			pool = service.DefaultVarietyPool
		}
		resp.Seed = &seed
		picks = service.RecommendVaried(cat, p, k, pool, seed)
	} else {
		picks = service.Recommend(cat, p, k)
	}

	outcome := "ok"
	if cat.Len() == 0 {
		outcome = "empty"
	}
	metrics.Observe("recommend", outcome, start)
	log.Debug().Int("k", k).Bool("variety", req.Variety).Int("results", len(picks)).Msg("recommend")

	if wantsMarkdown(r) {
		if cat.Len() == 0 {
			writeMarkdown(w, http.StatusOK, render.MsgEmptyCatalog)
			return
		}
		writeMarkdown(w, http.StatusOK, render.Recommendations(p, picks))
		return
	}
	resp.Results = make([]recommendation, len(picks))
	for i, s := range picks {
		resp.Results[i] = recommendation{Record: s.Record, Score: s.Score, DisplayScore: s.DisplayScore(), Reasons: s.Reasons}
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// Compare resolves ?a= and ?b= without suggestions and compares them.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		metrics.Observe("compare", "bad_request", start)
		writeError(w, http.StatusBadRequest, "query parameters a and b are required")
		return
	}

	c, ok := service.Compare(h.catalogs.Current(), h.aliases, a, b)
	if !ok {
		metrics.Observe("compare", "not_found", start)
		if wantsMarkdown(r) {
			writeMarkdown(w, http.StatusNotFound, render.MsgCompareNotFound)
			return
		}
		h.writeJSON(w, r, http.StatusNotFound, map[string]string{"kind": model.MatchNotFound.String(), "a": a, "b": b})
		return
	}
	metrics.Observe("compare", "found", start)

	if wantsMarkdown(r) {
		writeMarkdown(w, http.StatusOK, render.Comparison(c))
		return
	}
	h.writeJSON(w, r, http.StatusOK, c)
}

// Popular lists the ?count= (default 5) most popular breeds. count <= 0 lists none; a count past
// the catalog size lists all.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	count := service.DefaultPopularCount
	if s := r.URL.Query().Get("count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			metrics.Observe("popular", "bad_request", start)
			writeError(w, http.StatusBadRequest, "count must be an integer")
			return
		}
		count = n
	}

	cat := h.catalogs.Current()
	top := service.TopPopularity(cat, count)
	outcome := "ok"
	if cat.Len() == 0 {
		outcome = "empty"
	}
	metrics.Observe("popular", outcome, start)

	if wantsMarkdown(r) {
		writeMarkdown(w, http.StatusOK, render.Popularity(count, top))
		return
	}
	h.writeJSON(w, r, http.StatusOK, top)
}

// decodeBody decodes a JSON body strictly. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func wantsMarkdown(r *http.Request) bool {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "markdown", "md":
		return true
	}
	return false
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log := h.reqLogger(r)
		log.Error().Err(err).Msg("write json")
	}
}

func writeMarkdown(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	b, _ := json.Marshal(map[string]string{"error": msg})
	_, _ = w.Write(b)
}
