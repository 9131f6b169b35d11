package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MovimentoCaixaRequest struct {
	TipoMovimento   string          `json:"tipo_movimento" validate:"required,oneof=venda sangria suprimento"`
	Valor           decimal.Decimal `json:"valor" validate:"gt=0"`
	Descricao       string          `json:"descricao" validate:"required,max=200"`
	Observacoes     *string         `json:"observacoes" validate:"omitempty,max=500"`
	FormaPagamento  *string         `json:"forma_pagamento" validate:"omitempty,oneof=dinheiro cartao_credito cartao_debito pix fiado"`
	VendaID         *uuid.UUID      `json:"venda_id"`
	OperadorID      uuid.UUID       `json:"operador_id" validate:"required"`
	NumeroDocumento *string         `json:"numero_documento" validate:"omitempty,max=50"`
}

type SangriaRequest struct {
	Valor           decimal.Decimal `json:"valor" validate:"gt=0"`
	Descricao       string          `json:"descricao" validate:"required,max=200"`
	OperadorID      uuid.UUID       `json:"operador_id" validate:"required"`
	Observacoes     *string         `json:"observacoes" validate:"omitempty,max=500"`
	NumeroDocumento *string         `json:"numero_documento" validate:"omitempty,max=50"`
}

type SuprimentoRequest struct {
	Valor           decimal.Decimal `json:"valor" validate:"gt=0"`
	Descricao       string          `json:"descricao" validate:"required,max=200"`
	OperadorID      uuid.UUID       `json:"operador_id" validate:"required"`
	Observacoes     *string         `json:"observacoes" validate:"omitempty,max=500"`
	NumeroDocumento *string         `json:"numero_documento" validate:"omitempty,max=50"`
}

type MovimentoCaixaResponse struct {
	ID              uuid.UUID       `json:"id"`
	CaixaID         uuid.UUID       `json:"caixa_id"`
	DataMovimento   time.Time       `json:"data_movimento"`
	TipoMovimento   string          `json:"tipo_movimento"`
	Valor           decimal.Decimal `json:"valor"`
	Descricao       string          `json:"descricao"`
	Observacoes     *string         `json:"observacoes,omitempty"`
	FormaPagamento  *string         `json:"forma_pagamento,omitempty"`
	VendaID         *uuid.UUID      `json:"venda_id,omitempty"`
	OperadorID      uuid.UUID       `json:"operador_id"`
	NumeroDocumento *string         `json:"numero_documento,omitempty"`
}
