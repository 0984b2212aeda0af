// Package rest exposes the spellbook over HTTP with gin
package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apiv1alpha1 "github.com/KirkDiggler/grimoire-api/internal/api/spellbook/v1alpha1"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/handlers/card"
	"github.com/KirkDiggler/grimoire-api/internal/orchestrators/spellbook"
)

// KeepaliveMessage is served on GET / for uptime pingers
const KeepaliveMessage = "🪄 Grimório ativo!"

// HandlerConfig holds dependencies for the HTTP handler
type HandlerConfig struct {
	SpellbookService spellbook.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.SpellbookService == nil {
		return errors.InvalidArgument("spellbook service is required")
	}
	return nil
}

// Handler serves the spellbook REST routes
type Handler struct {
	spellbookService spellbook.Service
}

// NewHandler creates a new HTTP handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{spellbookService: cfg.SpellbookService}, nil
}

// NewRouter builds a gin engine with recovery, request logging and every route registered
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/", h.keepalive)
	router.GET("/healthz", h.health)
	h.RegisterRoutes(router.Group("/v1"))
	return router
}

// RegisterRoutes mounts the spellbook routes on rg
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/spells/:name", h.getSpell) // GET /v1/spells/:name
	rg.GET("/suggest", h.suggest)       // GET /v1/suggest?q=&limit=
	rg.GET("/search", h.search)         // GET /v1/search?term=
	rg.GET("/list", h.list)             // GET /v1/list?filter=
	rg.GET("/random", h.random)         // GET /v1/random
	rg.GET("/stats", h.stats)           // GET /v1/stats
	rg.POST("/reload", h.reload)        // POST /v1/reload
}

func (h *Handler) keepalive(c *gin.Context) {
	c.String(http.StatusOK, KeepaliveMessage)
}

func (h *Handler) health(c *gin.Context) {
	out, err := h.spellbookService.Stats(c.Request.Context(), &spellbook.StatsInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"spells":  out.Count,
		"version": out.Version,
	})
}

func (h *Handler) getSpell(c *gin.Context) {
	name := c.Param("name")
	if strings.TrimSpace(name) == "" {
		writeError(c, errors.InvalidArgument("name is required"))
		return
	}

	out, err := h.spellbookService.GetSpell(c.Request.Context(), &spellbook.GetSpellInput{Name: name})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apiv1alpha1.NewSpellResponse(out.Spell))
}

func (h *Handler) suggest(c *gin.Context) {
	limit, err := parseInt(c.Query("limit"), 0)
	if err != nil {
		writeError(c, errors.InvalidArgumentf("limit must be a number: %q", c.Query("limit")))
		return
	}

	out, err := h.spellbookService.SuggestSpells(c.Request.Context(), &spellbook.SuggestSpellsInput{
		Query: c.Query("q"),
		Limit: limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &apiv1alpha1.SuggestSpellsResponse{
		Names:   out.Names,
		Choices: card.Choices(out.Names),
	})
}

func (h *Handler) search(c *gin.Context) {
	term := c.Query("term")
	if strings.TrimSpace(term) == "" {
		writeError(c, errors.InvalidArgument("term is required"))
		return
	}

	out, err := h.spellbookService.SearchSpells(c.Request.Context(), &spellbook.SearchSpellsInput{Term: term})
	if err != nil {
		writeError(c, err)
		return
	}
	resp := apiv1alpha1.NewSpellListResponse(out.Spells)
	resp.ElementScoped = out.ElementScoped
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) list(c *gin.Context) {
	filter := c.Query("filter")
	if strings.TrimSpace(filter) == "" {
		writeError(c, errors.InvalidArgument("filter is required"))
		return
	}

	out, err := h.spellbookService.ListSpells(c.Request.Context(), &spellbook.ListSpellsInput{Filter: filter})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apiv1alpha1.NewSpellListResponse(out.Spells))
}

func (h *Handler) random(c *gin.Context) {
	out, err := h.spellbookService.RandomSpell(c.Request.Context(), &spellbook.RandomSpellInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apiv1alpha1.NewSpellResponse(out.Spell))
}

func (h *Handler) stats(c *gin.Context) {
	out, err := h.spellbookService.Stats(c.Request.Context(), &spellbook.StatsInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &apiv1alpha1.GetStatsResponse{
		Count:     out.Count,
		ByElement: out.ByElement,
		Version:   out.Version,
		LoadedAt:  out.LoadedAt,
		Source:    out.Source,
	})
}

func (h *Handler) reload(c *gin.Context) {
	out, err := h.spellbookService.Reload(c.Request.Context(), &spellbook.ReloadInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &apiv1alpha1.ReloadSpellbookResponse{
		Count:    out.Count,
		Version:  out.Version,
		LoadedAt: out.LoadedAt,
		Source:   out.Source,
	})
}

// writeError maps an error code onto its HTTP status with a {"code","message"} body
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	body := gin.H{
		"code":    code.String(),
		"message": errors.GetMessage(err),
	}
	if meta := errors.GetMeta(err); len(meta) > 0 {
		body["meta"] = meta
	}
	c.AbortWithStatusJSON(code.HTTPStatus(), body)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}

func parseInt(s string, def int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(s))
}
