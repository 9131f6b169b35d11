package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/service"
)

type EscalaHandler struct{ svc service.EscalaService }

func NewEscalaHandler(svc service.EscalaService) *EscalaHandler { return &EscalaHandler{svc: svc} }

func (h *EscalaHandler) Criar(c *gin.Context) {
	var req dto.CriarEscalaRequest
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

func (h *EscalaHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarEscalaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EscalaHandler) GetByID(c *gin.Context) {
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

// ListPorFuncionario lists an employee's shifts over a period.
func (h *EscalaHandler) ListPorFuncionario(c *gin.Context) {
	funcionarioID, err := uuid.Parse(c.Param("funcionarioId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de funcionário inválido"))
		return
	}
	inicio, fim, ok := parsePeriodo(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListPorFuncionario(c.Request.Context(), funcionarioID, inicio, fim)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPorData lists every shift scheduled for one day (?data=2026-08-31,
// default today).
func (h *EscalaHandler) ListPorData(c *gin.Context) {
	dia := time.Now()
	if dataStr := c.Query("data"); dataStr != "" {
		parsed, err := time.Parse("2006-01-02", dataStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Parâmetro data inválido"))
			return
		}
		dia = parsed
	}
	resp, err := h.svc.ListPorData(c.Request.Context(), dia)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EscalaHandler) Desativar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Desativar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
