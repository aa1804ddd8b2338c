package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/wheretowatch/internal/content"
	apperrors "github.com/amaumene/wheretowatch/internal/errors"
	"github.com/amaumene/wheretowatch/internal/middleware"
	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/internal/providers"
	"github.com/amaumene/wheretowatch/internal/regions"
)

func (h *Handler) handleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		h.respondError(c, apperrors.NewInvalidRequestError("Query parameter is required"))
		return
	}

	h.services.Logger.Debugf("[ProxyHandler] search request - query length: %d", len(query))

	body, err := h.services.Upstream.SearchMultiRaw(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *Handler) handleMovie(c *gin.Context) {
	h.handleDetail(c, models.MediaMovie)
}

func (h *Handler) handleTV(c *gin.Context) {
	h.handleDetail(c, models.MediaTV)
}

func (h *Handler) handleDetail(c *gin.Context, kind models.MediaKind) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		h.respondError(c, apperrors.NewInvalidRequestError("ID parameter is required"))
		return
	}

	h.services.Logger.Debugf("[ProxyHandler] %s detail request - id: %s", kind, id)

	payload, err := h.services.Upstream.FetchDetailRaw(c.Request.Context(), kind, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h *Handler) handleRegions(c *gin.Context) {
	q := c.Query("q")
	c.JSON(http.StatusOK, gin.H{
		"default": regions.Default(),
		"regions": regions.Search(q),
	})
}

// WhereResponse is the body of /api/where: the formatted title plus the
// offers for one region grouped by kind.
type WhereResponse struct {
	Detail models.ContentDetail  `json:"detail"`
	Region models.Region         `json:"region"`
	Offers []providers.KindGroup `json:"offers"`
}

func (h *Handler) handleWhere(c *gin.Context) {
	kind, ok := models.ParseMediaKind(c.Query("kind"))
	if !ok {
		h.respondError(c, apperrors.NewInvalidRequestError("kind must be movie or tv"))
		return
	}

	id, err := strconv.Atoi(strings.TrimSpace(c.Query("id")))
	if err != nil || id <= 0 {
		h.respondError(c, apperrors.NewInvalidRequestError("ID parameter is required"))
		return
	}

	region := regions.Default()
	if code := c.Query("region"); code != "" {
		region, ok = regions.Lookup(code)
		if !ok {
			h.respondError(c, apperrors.NewInvalidRequestError("unknown region "+code))
			return
		}
	}

	payload, err := h.services.Catalog.FetchDetail(c.Request.Context(), kind, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	detail := content.Format(kind, *payload)
	resp := WhereResponse{
		Detail: detail,
		Region: region,
		Offers: providers.GroupByKind(detail.OffersByRegion.For(region.Code)),
	}
	if resp.Offers == nil {
		resp.Offers = []providers.KindGroup{}
	}

	c.JSON(http.StatusOK, resp)
}

// respondError writes the {error} envelope. The cause is logged; only the
// public message reaches the client.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.services.Logger.Errorf("[ProxyHandler] [%s] %s failed: %v", middleware.GetRequestID(c), c.Request.URL.Path, err)
	} else {
		h.services.Logger.Warnf("[ProxyHandler] [%s] %s rejected: %v", middleware.GetRequestID(c), c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": apperrors.PublicMessage(err)})
}
