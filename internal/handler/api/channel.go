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

type ChannelHandler struct {
	channels commands.ChannelCommands
	messages commands.MessageCommands
	chq      queries.ChannelQueries
	msgq     queries.MessageQueries
}

func NewChannelHandler(
	channels commands.ChannelCommands,
	messages commands.MessageCommands,
	chq queries.ChannelQueries,
	msgq queries.MessageQueries,
) *ChannelHandler {
	return &ChannelHandler{channels: channels, messages: messages, chq: chq, msgq: msgq}
}

// @Summary Contact seller
// @Description Returns the single negotiation channel between the caller and the listing's seller, creating it on first contact.
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenChannelRequest true "Listing to discuss"
// @Success 201 {object} resdto.ChannelResponse "Created"
// @Success 200 {object} resdto.ChannelResponse "Already existed"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /channels [post]
func (h *ChannelHandler) Open(c *gin.Context) {
	var req reqdto.OpenChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.channels.Open(c.Request.Context(), middleware.GetPrincipal(c), req.ListingID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	status := http.StatusOK
	if result.Created() {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromGetOrCreate(result))
}

// @Summary List my channels
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max results"
// @Success 200 {object} resdto.ListResponse[queries.ChannelListItem]
// @Failure 401 {object} httperr.Response
// @Router /channels [get]
func (h *ChannelHandler) ListMine(c *gin.Context) {
	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, err := h.chq.ListMine(c.Request.Context(), middleware.GetPrincipal(c), q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.ChannelListItem]{Items: items})
}

// @Summary Get channel
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Success 200 {object} queries.ChannelView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /channels/{id} [get]
func (h *ChannelHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid channel id", nil)
		return
	}
	view, err := h.chq.GetByID(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Message history
// @Description Messages with seq greater than afterSeq in ascending order, with no gaps.
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Param afterSeq query int false "Last seq the client has (default 0)"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ListResponse[queries.MessageView]
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /channels/{id}/messages [get]
func (h *ChannelHandler) History(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid channel id", nil)
		return
	}
	var q reqdto.HistoryQuery
	if err = c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	items, err := h.msgq.History(c.Request.Context(), middleware.GetPrincipal(c), id, q.AfterSeq, q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.MessageView]{Items: items})
}

// @Summary Post message
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Param request body reqdto.PostMessageRequest true "Message"
// @Success 201 {object} queries.MessageView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /channels/{id}/messages [post]
func (h *ChannelHandler) Post(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid channel id", nil)
		return
	}
	var req reqdto.PostMessageRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.messages.Publish(c.Request.Context(), middleware.GetPrincipal(c), id, req.Body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}
