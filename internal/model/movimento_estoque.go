package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock movement kinds.
const (
	EstoqueEntrada = "entrada"
	EstoqueSaida   = "saida"
	EstoqueAjuste  = "ajuste"
)

// MovimentoEstoque records every stock change on a product. Created
// automatically on sale, adjustment, or sale reversal.
type MovimentoEstoque struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TipoMovimento string          `gorm:"type:varchar(20);not null"`
	Quantidade    decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	VendaID       *uuid.UUID      `gorm:"type:uuid"`
	Observacoes   *string         `gorm:"type:varchar(500)"`
	CriadoEm      time.Time       `gorm:"autoCreateTime"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

// TableName overrides GORM's pluralization (movimentos_estoque).
func (MovimentoEstoque) TableName() string { return "movimentos_estoque" }
