package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product types.
const (
	ProdutoBebida    = "bebida"
	ProdutoPrato     = "prato"
	ProdutoSobremesa = "sobremesa"
	ProdutoEntrada   = "entrada"
)

// Produto is a catalog item. ControlaNaoEstoque=true means the product is not
// stock-tracked (e.g. made-to-order dishes) and checkout never decrements it.
type Produto struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome         string    `gorm:"type:varchar(100);index;not null"`
	Descricao    *string   `gorm:"type:varchar(500)"`
	Tipo         string    `gorm:"type:varchar(20);not null"`
	CodigoBarras *string   `gorm:"type:varchar(50);uniqueIndex"`
	Unidade      string    `gorm:"type:varchar(20);not null;default:'UN'"`

	PrecoVenda decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	PrecoCusto *decimal.Decimal `gorm:"type:decimal(10,2)"`

	ControlaNaoEstoque bool            `gorm:"not null;default:false"`
	EstoqueMinimo      decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0"`
	EstoqueAtual       decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0"`

	Ingredientes        *string `gorm:"type:varchar(500)"`
	TempoPreparoMinutos *int
	DisponivelDelivery  bool `gorm:"not null;default:true"`

	Ativo        bool      `gorm:"not null;default:true"`
	CriadoEm     time.Time `gorm:"autoCreateTime"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime"`
}

func (Produto) TableName() string { return "produtos" }
