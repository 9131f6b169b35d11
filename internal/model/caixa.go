package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status values for Caixa.
const (
	CaixaAberto   = "aberto"
	CaixaFechado  = "fechado"
	CaixaBloqueado = "bloqueado" // reserved for manual intervention, no automated transition
)

// Caixa represents one cash-drawer shift, open to close.
// At most one row may have Status = "aberto" at any time; the invariant is
// enforced by a partial unique index, not only by the service check.
type Caixa struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DataAbertura   time.Time `gorm:"not null"`
	DataFechamento *time.Time
	Status         string          `gorm:"type:varchar(20);not null;default:'aberto';index"`
	ValorAbertura  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ValorFechamento decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	// Running totals are denormalized aggregates. They are only ever written
	// inside the same transaction as the ledger mutation that changes them,
	// recomputed by summation, never incremented and trusted.
	TotalVendas      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TotalSangrias    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TotalSuprimentos decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	ObservacoesAbertura   *string `gorm:"type:varchar(500)"`
	ObservacoesFechamento *string `gorm:"type:varchar(500)"`

	OperadorAberturaID   uuid.UUID  `gorm:"type:uuid;not null"`
	OperadorFechamentoID *uuid.UUID `gorm:"type:uuid"`

	CriadoEm     time.Time `gorm:"autoCreateTime"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime"`

	OperadorAbertura   *Funcionario     `gorm:"foreignKey:OperadorAberturaID"`
	OperadorFechamento *Funcionario     `gorm:"foreignKey:OperadorFechamentoID"`
	Movimentos         []MovimentoCaixa `gorm:"foreignKey:CaixaID"`
}

// TableName overrides GORM's pluralization (caixas, not caixa).
func (Caixa) TableName() string { return "caixas" }

// SaldoTeorico is the expected cash amount before counting:
// opening float + sales + cash-ins − cash-outs.
func (c *Caixa) SaldoTeorico() decimal.Decimal {
	return c.ValorAbertura.Add(c.TotalVendas).Add(c.TotalSuprimentos).Sub(c.TotalSangrias)
}
