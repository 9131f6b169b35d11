package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/infra"
	"github.com/lobatoremulo/Restaurante-PDV/internal/service"
	"github.com/lobatoremulo/Restaurante-PDV/internal/worker"
)

type CaixaHandler struct {
	svc         service.CaixaService
	dispatcher  *worker.Dispatcher
	pdfPath     string
	emailGestor string
}

func NewCaixaHandler(svc service.CaixaService, dispatcher *worker.Dispatcher, pdfPath, emailGestor string) *CaixaHandler {
	return &CaixaHandler{svc: svc, dispatcher: dispatcher, pdfPath: pdfPath, emailGestor: emailGestor}
}

// Abrir godoc
// @Summary Abre uma nova sessão de caixa
// @Tags caixa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AbrirCaixaRequest true "Dados de abertura"
// @Success 201 {object} dto.CaixaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/caixas/abrir [post]
func (h *CaixaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Fechar godoc
// @Summary Fecha a sessão de caixa e registra a diferença de conferência
// @Tags caixa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do caixa"
// @Param body body dto.FecharCaixaRequest true "Dados de fechamento"
// @Success 200 {object} dto.CaixaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/caixas/{id}/fechar [post]
func (h *CaixaHandler) Fechar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.FecharCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Fechar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.enviarRelatorioFechamento(c, id)
	c.JSON(http.StatusOK, resp)
}

// enviarRelatorioFechamento generates the closing PDF and queues it for the
// manager. Best effort: a failure here never fails the close itself.
func (h *CaixaHandler) enviarRelatorioFechamento(c *gin.Context, caixaID uuid.UUID) {
	if h.emailGestor == "" {
		return
	}
	rel, err := h.svc.Relatorio(c.Request.Context(), caixaID)
	if err != nil {
		log.Warn().Err(err).Str("caixa_id", caixaID.String()).Msg("relatório de fechamento indisponível para envio")
		return
	}
	pdfFile, err := infra.GenerateFechamentoPDF(rel, h.pdfPath)
	if err != nil {
		log.Warn().Err(err).Str("caixa_id", caixaID.String()).Msg("falha ao gerar PDF de fechamento")
		return
	}
	payload := worker.EmailJobPayload{
		ToEmail: h.emailGestor,
		Subject: fmt.Sprintf("Fechamento de caixa %s", rel.Caixa.DataAbertura.Format("02/01/2006")),
		Body:    fmt.Sprintf("Segue em anexo o relatório de fechamento do caixa aberto em %s.", rel.Caixa.DataAbertura.Format("02/01/2006 15:04")),
		PDFPath: pdfFile,
	}
	if err := h.dispatcher.EnqueueEmail(c.Request.Context(), payload); err != nil {
		log.Warn().Err(err).Str("caixa_id", caixaID.String()).Msg("falha ao enfileirar email de fechamento")
	}
}

// GetAberto returns the currently open cash session, if any.
func (h *CaixaHandler) GetAberto(c *gin.Context) {
	resp, err := h.svc.GetCaixaAberto(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Status reports whether there is an open session without returning it.
func (h *CaixaHandler) Status(c *gin.Context) {
	aberto, err := h.svc.TemCaixaAberto(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"caixa_aberto": aberto})
}

// GetByID returns one cash session by id.
func (h *CaixaHandler) GetByID(c *gin.Context) {
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

// List returns paginated cash sessions, newest first.
func (h *CaixaHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	resp, total, err := h.svc.List(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": total, "page": page, "limit": limit})
}

// Relatorio godoc
// @Summary Relatório completo de uma sessão de caixa
// @Tags caixa
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do caixa"
// @Success 200 {object} dto.RelatorioCaixaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/caixas/{id}/relatorio [get]
func (h *CaixaHandler) Relatorio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Relatorio(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RelatorioPDF streams the closing report of a session as a PDF attachment.
func (h *CaixaHandler) RelatorioPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	rel, err := h.svc.Relatorio(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	pdfFile, err := infra.GenerateFechamentoPDF(rel, h.pdfPath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(pdfFile, fmt.Sprintf("fechamento_%s.pdf", id))
}

// RelatorioFinanceiro aggregates sessions over a period.
func (h *CaixaHandler) RelatorioFinanceiro(c *gin.Context) {
	inicio, fim, ok := parsePeriodo(c)
	if !ok {
		return
	}
	resp, err := h.svc.RelatorioFinanceiro(c.Request.Context(), inicio, fim)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
