package instrument

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/haemolab/lab-api/internal/handler"
	"github.com/haemolab/lab-api/internal/model"
	"github.com/haemolab/lab-api/internal/schema"
	instrumentService "github.com/haemolab/lab-api/internal/service/instrument"
)

type Handler struct {
	service *instrumentService.Service
}

func NewHandler(service *instrumentService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	instruments := r.Group("/instruments")
	{
		instruments.POST("", h.CreateInstrument)
		instruments.GET("", h.ListInstruments)
		instruments.GET("/:id", h.GetInstrument)
		instruments.PUT("/:id", h.UpdateInstrument)
		instruments.DELETE("/:id", h.DeleteInstrument)
	}
}

func (h *Handler) CreateInstrument(c *gin.Context) {
	var req model.CreateInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if _, errs := schema.Instrument().Validate(req.Form()); errs != nil {
		c.JSON(http.StatusBadRequest, handler.NewValidationErrorResponse(errs))
		return
	}

	instrument, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(instrument))
}

func (h *Handler) GetInstrument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid instrument ID"))
		return
	}

	instrument, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(instrument))
}

func (h *Handler) UpdateInstrument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid instrument ID"))
		return
	}

	var req model.UpdateInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	instrument, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(instrument))
}

func (h *Handler) DeleteInstrument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid instrument ID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

// ListInstruments applies the standard list filters; category matches the
// instrument type and range matches the last calibration date.
func (h *Handler) ListInstruments(c *gin.Context) {
	instruments, err := h.service.List(c.Request.Context(), handler.CriteriaFromQuery(c))
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(instruments))
}
