package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/export"
	"github.com/heartmarshall/myenglish-suite/internal/service/batch"
)

type batchGenerator interface {
	Generate(ctx context.Context, in batch.Input) ([]domain.VocabularyEntry, error)
}

// BatchHandler serves stateless batch synthesis.
type BatchHandler struct {
	batches batchGenerator
	log     *slog.Logger
}

// NewBatchHandler creates a BatchHandler.
func NewBatchHandler(batches batchGenerator, logger *slog.Logger) *BatchHandler {
	return &BatchHandler{batches: batches, log: logger.With("handler", "batch")}
}

// Register mounts the batch routes on mux.
func (h *BatchHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/synthesize", h.Synthesize)
	mux.HandleFunc("GET /api/export.xlsx", h.Export)
}

type synthesizeRequest struct {
	Key       string `json:"key"`
	BatchSize *int   `json:"batchSize"`
	IDPrefix  string `json:"idPrefix"`
}

// Synthesize handles POST /api/synthesize.
func (h *BatchHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req synthesizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	entries, err := h.batches.Generate(r.Context(), batch.Input{
		Key:       req.Key,
		BatchSize: req.BatchSize,
		IDPrefix:  req.IDPrefix,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntries(entries))
}

// Export handles GET /api/export.xlsx?key=&size=&prefix=.
func (h *BatchHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := batch.Input{Key: q.Get("key"), IDPrefix: q.Get("prefix")}
	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid size")
			return
		}
		in.BatchSize = &size
	}

	entries, err := h.batches.Generate(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="vocabulary.xlsx"`)
	if err := export.WriteBatch(w, entries); err != nil {
		h.log.ErrorContext(r.Context(), "export batch", slog.String("error", err.Error()))
	}
}
