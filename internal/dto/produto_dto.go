package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CriarProdutoRequest struct {
	Nome                string           `json:"nome" validate:"required,max=100"`
	Descricao           *string          `json:"descricao" validate:"omitempty,max=500"`
	Tipo                string           `json:"tipo" validate:"required,oneof=bebida prato sobremesa entrada"`
	CodigoBarras        *string          `json:"codigo_barras" validate:"omitempty,max=50"`
	Unidade             string           `json:"unidade" validate:"omitempty,max=20"`
	PrecoVenda          decimal.Decimal  `json:"preco_venda" validate:"gt=0"`
	PrecoCusto          *decimal.Decimal `json:"preco_custo" validate:"omitempty,min=0"`
	ControlaNaoEstoque  bool             `json:"controla_nao_estoque"`
	EstoqueMinimo       decimal.Decimal  `json:"estoque_minimo" validate:"omitempty,min=0"`
	EstoqueAtual        decimal.Decimal  `json:"estoque_atual" validate:"omitempty,min=0"`
	Ingredientes        *string          `json:"ingredientes" validate:"omitempty,max=500"`
	TempoPreparoMinutos *int             `json:"tempo_preparo_minutos" validate:"omitempty,gte=0"`
	DisponivelDelivery  bool             `json:"disponivel_delivery"`
}

type AtualizarProdutoRequest struct {
	Nome                *string          `json:"nome" validate:"omitempty,max=100"`
	Descricao           *string          `json:"descricao" validate:"omitempty,max=500"`
	Tipo                *string          `json:"tipo" validate:"omitempty,oneof=bebida prato sobremesa entrada"`
	CodigoBarras        *string          `json:"codigo_barras" validate:"omitempty,max=50"`
	Unidade             *string          `json:"unidade" validate:"omitempty,max=20"`
	PrecoVenda          *decimal.Decimal `json:"preco_venda" validate:"omitempty,gt=0"`
	PrecoCusto          *decimal.Decimal `json:"preco_custo" validate:"omitempty,min=0"`
	EstoqueMinimo       *decimal.Decimal `json:"estoque_minimo" validate:"omitempty,min=0"`
	Ingredientes        *string          `json:"ingredientes" validate:"omitempty,max=500"`
	TempoPreparoMinutos *int             `json:"tempo_preparo_minutos" validate:"omitempty,gte=0"`
	DisponivelDelivery  *bool            `json:"disponivel_delivery"`
	Ativo               *bool            `json:"ativo"`
}

type AjusteEstoqueRequest struct {
	Quantidade  decimal.Decimal `json:"quantidade" validate:"required"`
	Observacoes *string         `json:"observacoes" validate:"omitempty,max=500"`
}

type ProdutoResponse struct {
	ID                  uuid.UUID        `json:"id"`
	Nome                string           `json:"nome"`
	Descricao           *string          `json:"descricao,omitempty"`
	Tipo                string           `json:"tipo"`
	CodigoBarras        *string          `json:"codigo_barras,omitempty"`
	Unidade             string           `json:"unidade"`
	PrecoVenda          decimal.Decimal  `json:"preco_venda"`
	PrecoCusto          *decimal.Decimal `json:"preco_custo,omitempty"`
	ControlaNaoEstoque  bool             `json:"controla_nao_estoque"`
	EstoqueMinimo       decimal.Decimal  `json:"estoque_minimo"`
	EstoqueAtual        decimal.Decimal  `json:"estoque_atual"`
	EstoqueBaixo        bool             `json:"estoque_baixo"`
	Ingredientes        *string          `json:"ingredientes,omitempty"`
	TempoPreparoMinutos *int             `json:"tempo_preparo_minutos,omitempty"`
	DisponivelDelivery  bool             `json:"disponivel_delivery"`
	Ativo               bool             `json:"ativo"`
	CriadoEm            time.Time        `json:"criado_em"`
}

type MovimentoEstoqueResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProdutoID     uuid.UUID       `json:"produto_id"`
	TipoMovimento string          `json:"tipo_movimento"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	VendaID       *uuid.UUID      `json:"venda_id,omitempty"`
	Observacoes   *string         `json:"observacoes,omitempty"`
	CriadoEm      time.Time       `json:"criado_em"`
}
