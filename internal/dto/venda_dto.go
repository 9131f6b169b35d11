package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemVendaRequest struct {
	ProdutoID     uuid.UUID        `json:"produto_id" validate:"required"`
	Quantidade    decimal.Decimal  `json:"quantidade" validate:"gt=0"`
	ValorUnitario *decimal.Decimal `json:"valor_unitario" validate:"omitempty,gt=0"`
	Desconto      decimal.Decimal  `json:"desconto" validate:"omitempty,min=0"`
	Observacoes   *string          `json:"observacoes" validate:"omitempty,max=200"`
}

type CriarVendaRequest struct {
	ClienteID   *uuid.UUID         `json:"cliente_id"`
	ComandaID   *uuid.UUID         `json:"comanda_id"`
	VendaBalcao bool               `json:"venda_balcao"`
	Itens       []ItemVendaRequest `json:"itens" validate:"required,min=1,dive"`
	Desconto    decimal.Decimal    `json:"desconto" validate:"omitempty,min=0"`
	Acrescimo   decimal.Decimal    `json:"acrescimo" validate:"omitempty,min=0"`
	Observacoes *string            `json:"observacoes" validate:"omitempty,max=500"`
}

type PagamentoRequest struct {
	FormaPagamento  string           `json:"forma_pagamento" validate:"required,oneof=dinheiro cartao_credito cartao_debito pix fiado"`
	Valor           decimal.Decimal  `json:"valor" validate:"gt=0"`
	ValorRecebido   *decimal.Decimal `json:"valor_recebido" validate:"omitempty,gt=0"`
	NumeroDocumento *string          `json:"numero_documento" validate:"omitempty,max=50"`
}

type FinalizarVendaRequest struct {
	Pagamentos []PagamentoRequest `json:"pagamentos" validate:"required,min=1,dive"`
	OperadorID uuid.UUID          `json:"operador_id" validate:"required"`
}

// PagamentoComandaRequest drives the one-shot comanda checkout: close the
// comanda, create and finalize the sale, decrement stock and post the cash
// ledger entries in a single transaction.
type PagamentoComandaRequest struct {
	ComandaID   uuid.UUID          `json:"comanda_id" validate:"required"`
	Pagamentos  []PagamentoRequest `json:"pagamentos" validate:"required,min=1,dive"`
	OperadorID  uuid.UUID          `json:"operador_id" validate:"required"`
	Desconto    decimal.Decimal    `json:"desconto" validate:"omitempty,min=0"`
	Acrescimo   decimal.Decimal    `json:"acrescimo" validate:"omitempty,min=0"`
	Observacoes *string            `json:"observacoes" validate:"omitempty,max=500"`
}

type ValidarPagamentoRequest struct {
	ComandaID  uuid.UUID          `json:"comanda_id" validate:"required"`
	Pagamentos []PagamentoRequest `json:"pagamentos" validate:"required,min=1,dive"`
	Desconto   decimal.Decimal    `json:"desconto" validate:"omitempty,min=0"`
	Acrescimo  decimal.Decimal    `json:"acrescimo" validate:"omitempty,min=0"`
}

// ValidarPagamentoResponse is a dry-run verdict: no state changes.
type ValidarPagamentoResponse struct {
	Valido       bool            `json:"valido"`
	ValorComanda decimal.Decimal `json:"valor_comanda"`
	ValorFinal   decimal.Decimal `json:"valor_final"`
	ValorPago    decimal.Decimal `json:"valor_pago"`
	Troco        decimal.Decimal `json:"troco"`
	Erros        []string        `json:"erros,omitempty"`
}

// PrepararPagamentoResponse pre-fills the checkout screen for a comanda.
type PrepararPagamentoResponse struct {
	Comanda         ComandaResponse `json:"comanda"`
	ValorTotal      decimal.Decimal `json:"valor_total"`
	FormasPagamento []string        `json:"formas_pagamento"`
	CaixaAberto     bool            `json:"caixa_aberto"`
}

type ItemVendaResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProdutoID     uuid.UUID       `json:"produto_id"`
	ProdutoNome   string          `json:"produto_nome,omitempty"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Desconto      decimal.Decimal `json:"desconto"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

type PagamentoVendaResponse struct {
	ID              uuid.UUID        `json:"id"`
	FormaPagamento  string           `json:"forma_pagamento"`
	Valor           decimal.Decimal  `json:"valor"`
	ValorRecebido   *decimal.Decimal `json:"valor_recebido,omitempty"`
	NumeroDocumento *string          `json:"numero_documento,omitempty"`
	DataPagamento   time.Time        `json:"data_pagamento"`
}

type VendaResponse struct {
	ID          uuid.UUID                `json:"id"`
	NumeroVenda string                   `json:"numero_venda"`
	DataVenda   time.Time                `json:"data_venda"`
	Status      string                   `json:"status"`
	ClienteID   *uuid.UUID               `json:"cliente_id,omitempty"`
	ComandaID   *uuid.UUID               `json:"comanda_id,omitempty"`
	VendaBalcao bool                     `json:"venda_balcao"`
	SubTotal    decimal.Decimal          `json:"sub_total"`
	Desconto    decimal.Decimal          `json:"desconto"`
	Acrescimo   decimal.Decimal          `json:"acrescimo"`
	ValorTotal  decimal.Decimal          `json:"valor_total"`
	ValorPago   decimal.Decimal          `json:"valor_pago"`
	Troco       decimal.Decimal          `json:"troco"`
	Observacoes *string                  `json:"observacoes,omitempty"`
	Itens       []ItemVendaResponse      `json:"itens,omitempty"`
	Pagamentos  []PagamentoVendaResponse `json:"pagamentos,omitempty"`
}

type RelatorioVendasResponse struct {
	DataInicio       time.Time       `json:"data_inicio"`
	DataFim          time.Time       `json:"data_fim"`
	QuantidadeVendas int64           `json:"quantidade_vendas"`
	TotalVendido     decimal.Decimal `json:"total_vendido"`
	TicketMedio      decimal.Decimal `json:"ticket_medio"`
	Vendas           []VendaResponse `json:"vendas"`
}
