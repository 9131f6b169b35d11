package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemComandaRequest struct {
	ProdutoID   uuid.UUID       `json:"produto_id" validate:"required"`
	Quantidade  decimal.Decimal `json:"quantidade" validate:"gt=0"`
	Observacoes *string         `json:"observacoes" validate:"omitempty,max=200"`
}

type CriarComandaRequest struct {
	ClienteID   *uuid.UUID           `json:"cliente_id"`
	GarcomID    *uuid.UUID           `json:"garcom_id"`
	Mesa        *string              `json:"mesa" validate:"omitempty,max=10"`
	Itens       []ItemComandaRequest `json:"itens" validate:"omitempty,dive"`
	Observacoes *string              `json:"observacoes" validate:"omitempty,max=500"`
}

type AdicionarItemComandaRequest struct {
	ProdutoID   uuid.UUID       `json:"produto_id" validate:"required"`
	Quantidade  decimal.Decimal `json:"quantidade" validate:"gt=0"`
	Observacoes *string         `json:"observacoes" validate:"omitempty,max=200"`
}

type AplicarDescontoRequest struct {
	Desconto  decimal.Decimal `json:"desconto" validate:"omitempty,min=0"`
	Acrescimo decimal.Decimal `json:"acrescimo" validate:"omitempty,min=0"`
}

type ItemComandaResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProdutoID     uuid.UUID       `json:"produto_id"`
	ProdutoNome   string          `json:"produto_nome,omitempty"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	Preparado     bool            `json:"preparado"`
	Entregue      bool            `json:"entregue"`
	Observacoes   *string         `json:"observacoes,omitempty"`
}

type ComandaResponse struct {
	ID            uuid.UUID             `json:"id"`
	NumeroComanda string                `json:"numero_comanda"`
	DataAbertura  time.Time             `json:"data_abertura"`
	DataFechamento *time.Time           `json:"data_fechamento,omitempty"`
	Status        string                `json:"status"`
	ClienteID     *uuid.UUID            `json:"cliente_id,omitempty"`
	GarcomID      *uuid.UUID            `json:"garcom_id,omitempty"`
	Mesa          *string               `json:"mesa,omitempty"`
	ValorTotal    decimal.Decimal       `json:"valor_total"`
	Desconto      decimal.Decimal       `json:"desconto"`
	Acrescimo     decimal.Decimal       `json:"acrescimo"`
	ValorFinal    decimal.Decimal       `json:"valor_final"`
	Observacoes   *string               `json:"observacoes,omitempty"`
	Itens         []ItemComandaResponse `json:"itens,omitempty"`
}
