package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/middleware"
	"github.com/lobatoremulo/Restaurante-PDV/internal/service"
)

type VendaHandler struct{ svc service.VendaService }

func NewVendaHandler(svc service.VendaService) *VendaHandler { return &VendaHandler{svc: svc} }

// Criar registers a direct sale (balcão) in draft state.
func (h *VendaHandler) Criar(c *gin.Context) {
	var req dto.CriarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarVenda(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Finalizar settles a draft sale with its payments.
func (h *VendaHandler) Finalizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.FinalizarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.FinalizarVenda(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancelar voids a sale, restoring stock and compensating the drawer.
func (h *VendaHandler) Cancelar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	claims := middleware.GetClaims(c)
	operadorID, err := uuid.Parse(claims.FuncionarioID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de operador inválido"))
		return
	}
	motivo := c.Query("motivo")
	if motivo == "" {
		motivo = "Cancelamento manual"
	}
	if err := h.svc.CancelarVenda(c.Request.Context(), id, operadorID, motivo); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetByID returns one sale with items and payments.
func (h *VendaHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByNumero looks a sale up by its date-scoped number (VND20240131001).
func (h *VendaHandler) GetByNumero(c *gin.Context) {
	resp, err := h.svc.GetByNumero(c.Request.Context(), c.Param("numero"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PagamentoComanda godoc
// @Summary Processa o pagamento de uma comanda fechada
// @Tags vendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.PagamentoComandaRequest true "Pagamento"
// @Success 201 {object} dto.VendaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/vendas/pagamento-comanda [post]
func (h *VendaHandler) PagamentoComanda(c *gin.Context) {
	var req dto.PagamentoComandaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ProcessarPagamentoComanda(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ValidarPagamento dry-runs a payment without persisting anything.
func (h *VendaHandler) ValidarPagamento(c *gin.Context) {
	var req dto.ValidarPagamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ValidarPagamento(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PrepararPagamento returns everything the checkout screen needs for a comanda.
func (h *VendaHandler) PrepararPagamento(c *gin.Context) {
	comandaID, err := uuid.Parse(c.Param("comandaId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.PrepararPagamento(c.Request.Context(), comandaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ComandasPendentes lists closed comandas still awaiting payment.
func (h *VendaHandler) ComandasPendentes(c *gin.Context) {
	resp, err := h.svc.GetComandasPendentes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReprocessarPagamento voids the previous sale of a comanda and charges it
// again with the new payment set.
func (h *VendaHandler) ReprocessarPagamento(c *gin.Context) {
	var req dto.PagamentoComandaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ReprocessarPagamento(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RelatorioVendas aggregates sales over a period.
func (h *VendaHandler) RelatorioVendas(c *gin.Context) {
	inicio, fim, ok := parsePeriodo(c)
	if !ok {
		return
	}
	resp, err := h.svc.RelatorioVendas(c.Request.Context(), inicio, fim)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
