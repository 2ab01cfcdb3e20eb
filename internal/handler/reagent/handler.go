package reagent

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/haemolab/lab-api/internal/handler"
	"github.com/haemolab/lab-api/internal/model"
	"github.com/haemolab/lab-api/internal/schema"
	reagentService "github.com/haemolab/lab-api/internal/service/reagent"
)

type Handler struct {
	service *reagentService.Service
}

func NewHandler(service *reagentService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reagents := r.Group("/reagents")
	{
		reagents.POST("", h.CreateReagent)
		reagents.GET("", h.ListReagents)
		reagents.GET("/:id", h.GetReagent)
		reagents.PUT("/:id", h.UpdateReagent)
		reagents.DELETE("/:id", h.DeleteReagent)
	}
}

func (h *Handler) CreateReagent(c *gin.Context) {
	var req model.CreateReagentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if _, errs := schema.Reagent().Validate(req.Form()); errs != nil {
		c.JSON(http.StatusBadRequest, handler.NewValidationErrorResponse(errs))
		return
	}

	reagent, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(reagent))
}

func (h *Handler) GetReagent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid reagent ID"))
		return
	}

	reagent, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(reagent))
}

func (h *Handler) UpdateReagent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid reagent ID"))
		return
	}

	var req model.UpdateReagentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	reagent, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(reagent))
}

func (h *Handler) DeleteReagent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid reagent ID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

// ListReagents applies the standard list filters; category matches the
// reagent type and range matches the expiry date.
func (h *Handler) ListReagents(c *gin.Context) {
	reagents, err := h.service.List(c.Request.Context(), handler.CriteriaFromQuery(c))
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(reagents))
}
