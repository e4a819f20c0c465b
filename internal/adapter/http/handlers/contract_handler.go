package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "gestao_manutencao/internal/adapter/http/dto/response"
	"gestao_manutencao/internal/usecase"
	"gestao_manutencao/pkg"

	"github.com/gin-gonic/gin"
)

// ContractHandler serves the contract-level read and billing surface: the
// trailing-window cost rollup and monthly charge creation.

type ContractHandler struct {
	rollup  usecase.IRollupUseCase
	billing usecase.IContractBillingUseCase
}

func NewContractHandler(rollup usecase.IRollupUseCase, billing usecase.IContractBillingUseCase) *ContractHandler {
	return &ContractHandler{rollup: rollup, billing: billing}
}

// GetRollup computes revenue/cost/margin over a trailing window. The
// window_days query parameter defaults to 90.
func (h *ContractHandler) GetRollup(c *gin.Context) {
	windowDays := usecase.DefaultWindowDays
	if raw := c.Query("window_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_WINDOW", "window_days must be a positive integer", http.StatusBadRequest).ToHTTPError())
			return
		}
		windowDays = n
	}

	result, err := h.rollup.Rollup(c.Request.Context(), c.Param("id"), windowDays)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRollup(result))
}

// CreateCharge bills one monthly installment through the payment gateway.
func (h *ContractHandler) CreateCharge(c *gin.Context) {
	charge, err := h.billing.CreateMonthlyCharge(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContractCharge(charge))
}

func (h *ContractHandler) ListCharges(c *gin.Context) {
	charges, err := h.billing.ListCharges(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractCharges(charges))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidWindow):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContractValue):
		return pkg.NewDomainErrorSimple("NO_BILLABLE_VALUE", "Contract has no billable monthly value", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
