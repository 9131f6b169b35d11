package worker

// Processes low-stock alert jobs: sends a warning email to the purchasing
// address configured in ALERTA_ESTOQUE_EMAIL. Alerts are enqueued by the sale
// pipeline only after its transaction commits.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lobatoremulo/Restaurante-PDV/internal/infra"
)

// AlertaEstoquePayload is the job envelope sent to QueueAlertaEstoque.
type AlertaEstoquePayload struct {
	ProdutoID     string `json:"produto_id"`
	ProdutoNome   string `json:"produto_nome"`
	EstoqueAtual  string `json:"estoque_atual"`
	EstoqueMinimo string `json:"estoque_minimo"`
}

// EstoqueWorker turns low-stock alerts into emails.
type EstoqueWorker struct {
	mailer      *infra.Mailer
	destinatario string
}

func NewEstoqueWorker(mailer *infra.Mailer, destinatario string) *EstoqueWorker {
	return &EstoqueWorker{mailer: mailer, destinatario: destinatario}
}

func (w *EstoqueWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload AlertaEstoquePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("estoque_worker: payload inválido")
		return nil // malformed payload is not retryable
	}
	if w.destinatario == "" {
		log.Warn().Str("produto", payload.ProdutoNome).Msg("estoque_worker: destinatário não configurado")
		return nil
	}

	assunto := fmt.Sprintf("Estoque baixo: %s", payload.ProdutoNome)
	corpo := fmt.Sprintf(
		"O produto %s atingiu o estoque mínimo.\n\nEstoque atual: %s\nEstoque mínimo: %s\n",
		payload.ProdutoNome, payload.EstoqueAtual, payload.EstoqueMinimo)

	if err := w.mailer.Enviar(w.destinatario, assunto, corpo, ""); err != nil {
		return fmt.Errorf("estoque_worker: enviar email: %w", err)
	}
	log.Info().Str("produto", payload.ProdutoNome).Msg("estoque_worker: alerta enviado")
	return nil
}
