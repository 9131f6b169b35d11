package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AbrirCaixaRequest struct {
	ValorAbertura decimal.Decimal `json:"valor_abertura" validate:"min=0"`
	OperadorID    uuid.UUID       `json:"operador_id" validate:"required"`
	Observacoes   *string         `json:"observacoes" validate:"omitempty,max=500"`
}

type FecharCaixaRequest struct {
	ValorFechamento decimal.Decimal `json:"valor_fechamento" validate:"min=0"`
	OperadorID      uuid.UUID       `json:"operador_id" validate:"required"`
	Observacoes     *string         `json:"observacoes" validate:"omitempty,max=500"`
}

type CaixaResponse struct {
	ID                    uuid.UUID       `json:"id"`
	DataAbertura          time.Time       `json:"data_abertura"`
	DataFechamento        *time.Time      `json:"data_fechamento,omitempty"`
	Status                string          `json:"status"`
	ValorAbertura         decimal.Decimal `json:"valor_abertura"`
	ValorFechamento       decimal.Decimal `json:"valor_fechamento"`
	TotalVendas           decimal.Decimal `json:"total_vendas"`
	TotalSangrias         decimal.Decimal `json:"total_sangrias"`
	TotalSuprimentos      decimal.Decimal `json:"total_suprimentos"`
	SaldoTeorico          decimal.Decimal `json:"saldo_teorico"`
	ObservacoesAbertura   *string         `json:"observacoes_abertura,omitempty"`
	ObservacoesFechamento *string         `json:"observacoes_fechamento,omitempty"`
	OperadorAberturaID    uuid.UUID       `json:"operador_abertura_id"`
	OperadorFechamentoID  *uuid.UUID      `json:"operador_fechamento_id,omitempty"`
}

// RelatorioCaixaResponse is the closing report: session totals plus the full
// movement ledger and the per-payment-method sales breakdown.
type RelatorioCaixaResponse struct {
	Caixa                 CaixaResponse              `json:"caixa"`
	SaldoTeorico          decimal.Decimal            `json:"saldo_teorico"`
	Diferenca             *decimal.Decimal           `json:"diferenca,omitempty"`
	Movimentos            []MovimentoCaixaResponse   `json:"movimentos"`
	VendasPorPagamento    map[string]decimal.Decimal `json:"vendas_por_forma_pagamento"`
	QuantidadeVendas      int64                      `json:"quantidade_vendas"`
	QuantidadeSangrias    int64                      `json:"quantidade_sangrias"`
	QuantidadeSuprimentos int64                      `json:"quantidade_suprimentos"`
}

// RelatorioFinanceiroResponse aggregates sales over a date range, independent
// of caixa sessions.
type RelatorioFinanceiroResponse struct {
	DataInicio         time.Time                  `json:"data_inicio"`
	DataFim            time.Time                  `json:"data_fim"`
	TotalVendas        decimal.Decimal            `json:"total_vendas"`
	QuantidadeVendas   int64                      `json:"quantidade_vendas"`
	TicketMedio        decimal.Decimal            `json:"ticket_medio"`
	VendasPorPagamento map[string]decimal.Decimal `json:"vendas_por_forma_pagamento"`
	TotalDescontos     decimal.Decimal            `json:"total_descontos"`
	TotalAcrescimos    decimal.Decimal            `json:"total_acrescimos"`
}
