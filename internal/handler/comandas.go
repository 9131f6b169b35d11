package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/service"
)

type ComandaHandler struct{ svc service.ComandaService }

func NewComandaHandler(svc service.ComandaService) *ComandaHandler {
	return &ComandaHandler{svc: svc}
}

// Criar opens a new comanda for a table or customer.
func (h *ComandaHandler) Criar(c *gin.Context) {
	var req dto.CriarComandaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetByID returns one comanda with its items.
func (h *ComandaHandler) GetByID(c *gin.Context) {
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

// GetByNumero finds a comanda by its printed number (CMD000123).
func (h *ComandaHandler) GetByNumero(c *gin.Context) {
	numero := c.Param("numero")
	resp, err := h.svc.GetByNumero(c.Request.Context(), numero)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListAbertas lists comandas currently open.
func (h *ComandaHandler) ListAbertas(c *gin.Context) {
	resp, err := h.svc.ListAbertas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdicionarItem adds a product to an open comanda.
func (h *ComandaHandler) AdicionarItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AdicionarItemComandaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdicionarItem(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RemoverItem removes a not-yet-delivered item from an open comanda.
func (h *ComandaHandler) RemoverItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de item inválido"))
		return
	}
	resp, err := h.svc.RemoverItem(c.Request.Context(), id, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarcarItemPreparado flags a kitchen item as ready.
func (h *ComandaHandler) MarcarItemPreparado(c *gin.Context) {
	h.marcarItem(c, h.svc.MarcarItemPreparado)
}

// MarcarItemEntregue flags a ready item as delivered to the table.
func (h *ComandaHandler) MarcarItemEntregue(c *gin.Context) {
	h.marcarItem(c, h.svc.MarcarItemEntregue)
}

func (h *ComandaHandler) marcarItem(c *gin.Context, fn func(ctx context.Context, comandaID, itemID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de item inválido"))
		return
	}
	if err := fn(c.Request.Context(), id, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AplicarDesconto sets discount/surcharge on an open comanda.
func (h *ComandaHandler) AplicarDesconto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AplicarDescontoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AplicarDesconto(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Fechar closes the comanda, freezing its items for checkout.
func (h *ComandaHandler) Fechar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Fechar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancelar voids an unpaid comanda.
func (h *ComandaHandler) Cancelar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Cancelar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
