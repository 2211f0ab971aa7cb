package api

import (
	"net/http"

	reqdto "closeout-market/internal/handler/dto/request"
	resdto "closeout-market/internal/handler/dto/response"
	"closeout-market/internal/handler/httperr"
	"closeout-market/internal/handler/middleware"
	"closeout-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StoreHandler struct {
	cmds commands.StoreCommands
}

func NewStoreHandler(cmds commands.StoreCommands) *StoreHandler {
	return &StoreHandler{cmds: cmds}
}

var storeErrors = []httperr.Extra{
	{Target: commands.ErrStoreAlreadyExists, Status: http.StatusConflict, Code: "store_exists", Msg: "A store is already registered for this account"},
	{Target: commands.ErrVerificationFailed, Status: http.StatusUnprocessableEntity, Code: "verification_failed", Msg: "Business registration could not be verified"},
}

// @Summary Register store
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterStoreRequest true "Store"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stores [post]
func (h *StoreHandler) Register(c *gin.Context) {
	var req reqdto.RegisterStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Register(c.Request.Context(), middleware.GetPrincipal(c), req.ToInput())
	if err != nil {
		httperr.Respond(c, err, storeErrors...)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Verify store
// @Description Checks the business registration with the verification service and records the result.
// @Tags stores
// @Accept json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Param request body reqdto.VerifyStoreRequest true "Registration details"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /stores/{id}/verify [post]
func (h *StoreHandler) Verify(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store id", nil)
		return
	}
	var req reqdto.VerifyStoreRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err = h.cmds.Verify(c.Request.Context(), middleware.GetPrincipal(c), id, req.ToInput()); err != nil {
		httperr.Respond(c, err, storeErrors...)
		return
	}
	c.Status(http.StatusNoContent)
}
