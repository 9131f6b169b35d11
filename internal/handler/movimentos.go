package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/service"
)

type MovimentoHandler struct{ svc service.MovimentoCaixaService }

func NewMovimentoHandler(svc service.MovimentoCaixaService) *MovimentoHandler {
	return &MovimentoHandler{svc: svc}
}

// Adicionar godoc
// @Summary Registra um movimento manual no caixa aberto
// @Tags movimentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.MovimentoCaixaRequest true "Movimento"
// @Success 201 {object} dto.MovimentoCaixaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/movimentos [post]
func (h *MovimentoHandler) Adicionar(c *gin.Context) {
	var req dto.MovimentoCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Adicionar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Sangria registers a cash withdrawal from the open drawer.
func (h *MovimentoHandler) Sangria(c *gin.Context) {
	var req dto.SangriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarSangria(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Suprimento registers a cash reinforcement into the open drawer.
func (h *MovimentoHandler) Suprimento(c *gin.Context) {
	var req dto.SuprimentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarSuprimento(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListByCaixa returns the movement ledger of a session, optionally filtered by
// tipo (?tipo=sangria).
func (h *MovimentoHandler) ListByCaixa(c *gin.Context) {
	caixaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}

	var (
		resp []dto.MovimentoCaixaResponse
	)
	if tipo := c.Query("tipo"); tipo != "" {
		resp, err = h.svc.ListByCaixaETipo(c.Request.Context(), caixaID, tipo)
	} else {
		resp, err = h.svc.ListByCaixa(c.Request.Context(), caixaID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID returns a single ledger entry.
func (h *MovimentoHandler) GetByID(c *gin.Context) {
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

// ListByPeriodo returns all movements across sessions within a date range.
func (h *MovimentoHandler) ListByPeriodo(c *gin.Context) {
	inicio, fim, ok := parsePeriodo(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListByPeriodo(c.Request.Context(), inicio, fim)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TotalPorTipo returns the accumulated value of one movement type in a session.
func (h *MovimentoHandler) TotalPorTipo(c *gin.Context) {
	caixaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	tipo := c.Param("tipo")
	total, err := h.svc.TotalPorTipo(c.Request.Context(), caixaID, tipo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tipo": tipo, "total": total})
}
