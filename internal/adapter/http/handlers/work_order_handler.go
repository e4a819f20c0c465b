package handlers

import (
	"errors"
	"net/http"

	request "gestao_manutencao/internal/adapter/http/dto/request"
	response "gestao_manutencao/internal/adapter/http/dto/response"
	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase"
	"gestao_manutencao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// WorkOrderHandler handles HTTP requests for the work order lifecycle:
// creation, status transitions, checklist answers, parts lines, photo
// evidence and signature capture.

type WorkOrderHandler struct {
	orders     usecase.IWorkOrderUseCase
	checklists usecase.IChecklistUseCase
	parts      usecase.IPartsUseCase
	signatures usecase.ISignatureUseCase
}

func NewWorkOrderHandler(
	orders usecase.IWorkOrderUseCase,
	checklists usecase.IChecklistUseCase,
	parts usecase.IPartsUseCase,
	signatures usecase.ISignatureUseCase,
) *WorkOrderHandler {
	return &WorkOrderHandler{
		orders:     orders,
		checklists: checklists,
		parts:      parts,
		signatures: signatures,
	}
}

// CreateWorkOrder opens a new ticket in ABERTA.
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.orders.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) GetWorkOrderByID(c *gin.Context) {
	w, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

// UpdateStatus requests a state machine transition. Completion gates reject
// with 422; a lost concurrent update race reports 409.
func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.orders.RequestTransition(c.Request.Context(), c.Param("id"), entities.WorkOrderStatus(payload.Status))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) AssignResponsible(c *gin.Context) {
	var payload request.AssignResponsibleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.orders.AssignResponsible(c.Request.Context(), c.Param("id"), payload.TechnicianID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

// BindChecklist instantiates a template onto the order. Binding twice is a
// no-op that returns the existing checklist untouched.
func (h *WorkOrderHandler) BindChecklist(c *gin.Context) {
	var payload request.BindChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.checklists.BindTemplate(c.Request.Context(), c.Param("id"), payload.TemplateID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) SetChecklistItem(c *gin.Context) {
	var payload request.ChecklistItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.checklists.SetItemStatus(
		c.Request.Context(),
		c.Param("id"),
		payload.GroupIndex,
		payload.ItemIndex,
		entities.ChecklistItemStatus(payload.Status),
		payload.Comment,
	)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

// AddPart appends a quantity-1 parts line and returns the stock evaluation
// alongside the updated order.
func (h *WorkOrderHandler) AddPart(c *gin.Context) {
	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	result, err := h.parts.AddPart(c.Request.Context(), c.Param("id"), payload.ProductID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPartResult(result))
}

func (h *WorkOrderHandler) SetPartQuantity(c *gin.Context) {
	var payload request.SetPartQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	lineIndex, err := parseIndexParam(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	result, err := h.parts.SetQuantity(c.Request.Context(), c.Param("id"), lineIndex, payload.Quantity)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPartResult(result))
}

func (h *WorkOrderHandler) AttachPhoto(c *gin.Context) {
	var payload request.AttachPhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.orders.AttachPhoto(c.Request.Context(), c.Param("id"), usecase.PhotoKind(payload.Kind), payload.URL)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) CaptureSignature(c *gin.Context) {
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.signatures.Capture(c.Request.Context(), c.Param("id"), usecase.SignRole(payload.Role), payload.URL)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Checklist template not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Work order was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMediaRequired):
		return pkg.NewDomainErrorSimple("MEDIA_REQUIRED", "Before/after photos required to complete", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrChecklistCommentRequired):
		return pkg.NewDomainErrorSimple("CHECKLIST_COMMENT_REQUIRED", "Checklist items marked NÃO OK require a comment", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSignaturesRequired):
		return pkg.NewDomainErrorSimple("SIGNATURES_REQUIRED", "Technician and client signatures required to complete", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCommentRequired):
		return pkg.NewDomainErrorSimple("COMMENT_REQUIRED", "Comment required for item marked NÃO OK", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAlreadySigned):
		return pkg.NewDomainErrorSimple("ALREADY_SIGNED", "Signature already captured for this role", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock for part line", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIndexOutOfRange), errors.Is(err, usecase.ErrPartIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INDEX_OUT_OF_RANGE", "Index out of range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidAssetID),
		errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrInvalidTechnician),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidTemplateID),
		errors.Is(err, usecase.ErrInvalidItemStatus),
		errors.Is(err, usecase.ErrNoChecklistBound),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPhotoKind),
		errors.Is(err, usecase.ErrInvalidPhotoURL),
		errors.Is(err, usecase.ErrInvalidSignRole),
		errors.Is(err, usecase.ErrInvalidSignatureURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
