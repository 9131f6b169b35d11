package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status values for Comanda.
const (
	ComandaAberta    = "aberta"
	ComandaFechada   = "fechada"
	ComandaCancelada = "cancelada"
)

// Comanda is an open running order tied to a table/customer, accumulating
// line items until closed for payment. Only fechada comandas may be paid.
type Comanda struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroComanda string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	ClienteID     *uuid.UUID `gorm:"type:uuid"`
	GarcomID      *uuid.UUID `gorm:"type:uuid"`
	Mesa          *string    `gorm:"type:varchar(50)"`

	DataAbertura   time.Time `gorm:"not null"`
	DataFechamento *time.Time
	Status         string `gorm:"type:varchar(20);not null;default:'aberta';index"`

	// ValorTotal/ValorFinal are recomputed from the items on close.
	ValorTotal decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Desconto   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Acrescimo  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ValorFinal decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	Observacoes *string `gorm:"type:varchar(500)"`

	CriadoEm     time.Time `gorm:"autoCreateTime"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime"`

	Cliente *Cliente      `gorm:"foreignKey:ClienteID"`
	Garcom  *Funcionario  `gorm:"foreignKey:GarcomID"`
	Itens   []ItemComanda `gorm:"foreignKey:ComandaID"`
}

func (Comanda) TableName() string { return "comandas" }

// ItemComanda is one line of an open comanda. Preparado/Entregue track the
// kitchen workflow; they have no effect on billing.
type ItemComanda struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ComandaID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantidade    decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ValorTotal    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Observacoes   *string         `gorm:"type:varchar(500)"`
	Adicionais    *string         `gorm:"type:varchar(500)"`

	Preparado   bool `gorm:"not null;default:false"`
	DataPreparo *time.Time
	Entregue    bool `gorm:"not null;default:false"`
	DataEntrega *time.Time

	CriadoEm time.Time `gorm:"autoCreateTime"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ItemComanda) TableName() string { return "itens_comanda" }
