package recommendations

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"healthplan-backend/internal/shared/server/middleware"
	"healthplan-backend/internal/shared/server/respond"
	"healthplan-backend/internal/shared/telemetry"
)

const maxBodyBytes = 64 << 10

// Handler wires HTTP handlers to the recommendations service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group. The
// optional middleware applies only to the routes that generate plans.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, generateMiddleware ...gin.HandlerFunc) {
	generate := append(append([]gin.HandlerFunc{}, generateMiddleware...), h.generate)
	create := append(append([]gin.HandlerFunc{}, generateMiddleware...), h.create)

	rg.POST("/recommendations/generate", generate...)
	rg.POST("/recommendations", create...)
	rg.POST("/recommendations/feedback", h.feedback)
	rg.GET("/recommendations", h.list)
	rg.GET("/recommendations/:id", h.get)
}

func (h *Handler) generate(c *gin.Context) {
	in := decodeGenerateRequest(c).ToInput()
	res := h.Svc.Generate(c.Request.Context(), in, GenerateOptions{
		UserID:  middleware.UserIDFromContext(c),
		Persist: !noPersist(c.GetHeader("X-No-Persist")),
	})
	c.Set("planSource", string(res.Kind))
	respond.OK(c, toGenerateResponse(res))
}

func (h *Handler) create(c *gin.Context) {
	in := decodeGenerateRequest(c).ToInput()
	res := h.Svc.Generate(c.Request.Context(), in, GenerateOptions{
		UserID:  middleware.UserIDFromContext(c),
		Persist: true,
	})
	c.Set("planSource", string(res.Kind))

	resp := gin.H{
		"recommendation": toRecommendationDTO(res.Record),
		"source":         res.Kind,
	}
	if res.Warning != "" {
		resp["warning"] = res.Warning
	}
	respond.OK(c, resp)
}

func (h *Handler) list(c *gin.Context) {
	filter := ListFilter{
		UserID: middleware.UserIDFromContext(c),
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	}

	recs, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		telemetry.Warn("recommendation.list_failed", map[string]any{
			"error":      err.Error(),
			"request_id": middleware.RequestIDFromContext(c),
		})
		respond.OK(c, gin.H{"recommendations": []RecommendationDTO{}, "error": err.Error()})
		return
	}

	out := make([]RecommendationDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecommendationDTO(rec))
	}
	respond.OK(c, gin.H{"recommendations": out})
}

func (h *Handler) get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "recommendation id is required", nil)
		return
	}

	rec, summary, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "recommendation not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "recommendation id is required", nil)
		default:
			telemetry.Warn("recommendation.get_failed", map[string]any{"id": id, "error": err.Error()})
			respond.OK(c, gin.H{"recommendation": nil, "error": err.Error()})
		}
		return
	}

	dto := toRecommendationDTO(rec)
	dto.Feedback = &FeedbackDTO{Likes: summary.Likes, Dislikes: summary.Dislikes}
	respond.OK(c, gin.H{"recommendation": dto})
}

func (h *Handler) feedback(c *gin.Context) {
	var req FeedbackRequest
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil ||
		req.RecommendationID == nil || strings.TrimSpace(*req.RecommendationID) == "" || req.Liked == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid payload", nil)
		return
	}

	err := h.Svc.RecordFeedback(c.Request.Context(), middleware.UserIDFromContext(c), *req.RecommendationID, *req.Liked)
	if err != nil {
		telemetry.Warn("feedback.record_failed", map[string]any{
			"recommendation_id": *req.RecommendationID,
			"error":             err.Error(),
		})
		respond.OK(c, gin.H{"ok": false, "error": err.Error()})
		return
	}
	respond.OK(c, gin.H{"ok": true})
}

// decodeGenerateRequest never fails: malformed or empty bodies produce an empty request.
func decodeGenerateRequest(c *gin.Context) GenerateRequest {
	var req GenerateRequest
	if c.Request.Body == nil {
		return req
	}
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		telemetry.Warn("recommendation.decode_failed", map[string]any{
			"error":      err.Error(),
			"request_id": middleware.RequestIDFromContext(c),
		})
		return GenerateRequest{}
	}
	return req
}

func noPersist(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1"
}

func queryInt(c *gin.Context, key string) int {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
