package handler

import (
	"errors"
	"net/http"

	"uniformes/internal/form"
	"uniformes/internal/middleware"
	"uniformes/internal/service"
	"uniformes/pkg/response"

	"github.com/gin-gonic/gin"
)

// ItemSelection mirrors one item entry of the request draft
type ItemSelection struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
}

// SubmitDeliveryRequest is the wire shape of a draft submission. Photo is
// raw image bytes (base64 in JSON); encoding to the stored data URI happens
// in the pipeline.
type SubmitDeliveryRequest struct {
	EmployeeName string                   `json:"employeeName"`
	Area         string                   `json:"area"`
	ReasonKey    string                   `json:"reasonKey"`
	Items        map[string]ItemSelection `json:"items"`
	Photo        []byte                   `json:"photo,omitempty"`
}

type DeliveryHandler struct {
	deliveryService service.DeliveryService
	jwtSecret       []byte
}

func NewDeliveryHandler(deliveryService service.DeliveryService, jwtSecret []byte) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService, jwtSecret: jwtSecret}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *DeliveryHandler) RegisterRoutes(router *gin.RouterGroup) {
	deliveries := router.Group("/api/deliveries")
	{
		deliveries.POST("", middleware.RequireRole(h.jwtSecret, service.RoleAnonymous, service.RoleAdmin), h.SubmitDelivery)
	}
}

// SubmitDelivery handles POST /api/deliveries
// @Summary      Submit a uniform request
// @Description  Validates the draft, persists one delivery record and broadcasts the refreshed feed
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      SubmitDeliveryRequest  true  "Request draft"
// @Success      201      {object}  response.Response{data=model.Delivery}
// @Failure      400      {object}  response.Response "Validation failure"
// @Failure      409      {object}  response.Response "Submission already in flight"
// @Failure      502      {object}  response.Response "Storage failure after retries"
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) SubmitDelivery(c *gin.Context) {
	var req SubmitDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	draft, err := draftFromRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	userID, _ := c.MustGet("userID").(string)
	record, err := h.deliveryService.Submit(c.Request.Context(), userID, draft)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, verr.Error()))
		case errors.Is(err, service.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, response.Error(http.StatusConflict, "Ya hay una solicitud en curso. Espere un momento."))
		case errors.Is(err, service.ErrPhotoEncoding):
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "La foto adjunta no es una imagen válida."))
		default:
			c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, "Error al guardar los datos. Intente de nuevo."))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, record))
}

// draftFromRequest replays the wire payload through the form controller so
// every submission goes through the same draft semantics as the UI.
func draftFromRequest(req SubmitDeliveryRequest) (*form.Draft, error) {
	draft := form.NewDraft()
	if err := draft.UpdateField("employeeName", req.EmployeeName); err != nil {
		return nil, err
	}
	if err := draft.UpdateField("area", req.Area); err != nil {
		return nil, err
	}
	if req.ReasonKey != "" {
		if err := draft.UpdateField("reasonKey", req.ReasonKey); err != nil {
			return nil, err
		}
	}

	for key, sel := range req.Items {
		if err := draft.UpdateItem(key, "quantity", sel.Quantity); err != nil {
			return nil, err
		}
		if sel.Size != "" {
			if err := draft.UpdateItem(key, "size", sel.Size); err != nil {
				return nil, err
			}
		}
		if sel.Color != "" {
			if err := draft.UpdateItem(key, "color", sel.Color); err != nil {
				return nil, err
			}
		}
	}

	if len(req.Photo) > 0 {
		draft.SetPhoto(req.Photo)
	}
	return draft, nil
}
