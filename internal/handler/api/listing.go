package api

import (
	"net/http"

	reqdto "closeout-market/internal/handler/dto/request"
	resdto "closeout-market/internal/handler/dto/response"
	"closeout-market/internal/handler/httperr"
	"closeout-market/internal/handler/middleware"
	"closeout-market/internal/usecase/commands"
	"closeout-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary Listings in viewport
// @Description Live listings whose location lies inside the box (bounds inclusive). Sold-out listings are included and flagged.
// @Tags listings
// @Produce json
// @Param minLat query number true "South bound"
// @Param minLng query number true "West bound"
// @Param maxLat query number true "North bound"
// @Param maxLng query number true "East bound"
// @Param limit query int false "Max results"
// @Success 200 {object} resdto.ListResponse[queries.ListingView]
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /listings [get]
func (h *ListingHandler) InViewport(c *gin.Context) {
	var q reqdto.ViewportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "minLat, minLng, maxLat and maxLng are required", nil)
		return
	}
	vp, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.q.InViewport(c.Request.Context(), vp, q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.ListingView]{Items: views})
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} queries.ListingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create listing
// @Description Seller lists a discounted item. Marketing copy is attached when the generator answers in time.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), middleware.GetPrincipal(c), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/listings/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
