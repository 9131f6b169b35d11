package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movement kinds. Valor is always > 0; the kind encodes direction.
const (
	MovimentoAbertura   = "abertura"   // opening float, system-generated on open
	MovimentoFechamento = "fechamento" // closing variance, system-generated on close
	MovimentoVenda      = "venda"
	MovimentoSangria    = "sangria"    // cash removed from the drawer mid-shift
	MovimentoSuprimento = "suprimento" // cash added to the drawer mid-shift
)

// Payment methods, shared with Venda/PagamentoVenda.
const (
	PagamentoDinheiro      = "dinheiro"
	PagamentoCartaoCredito = "cartao_credito"
	PagamentoCartaoDebito  = "cartao_debito"
	PagamentoPix           = "pix"
	PagamentoFiado         = "fiado"
)

// MovimentoCaixa is an immutable event in the cash-drawer ledger and the
// source of truth for drawer totals. Movements are NEVER modified or deleted;
// corrections create new entries.
type MovimentoCaixa struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CaixaID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	DataMovimento time.Time       `gorm:"not null"`
	TipoMovimento string          `gorm:"type:varchar(20);not null"`
	Valor         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Descricao     string          `gorm:"type:varchar(200);not null"`
	Observacoes   *string         `gorm:"type:varchar(500)"`
	FormaPagamento *string        `gorm:"type:varchar(20)"`
	// VendaID links a venda-kind movement to its sale. A partial unique index
	// on (caixa_id, venda_id) WHERE tipo_movimento='venda' prevents posting
	// the same sale into the drawer twice.
	VendaID         *uuid.UUID `gorm:"type:uuid"`
	OperadorID      uuid.UUID  `gorm:"type:uuid;not null"`
	NumeroDocumento *string    `gorm:"type:varchar(100)"`
	CriadoEm        time.Time  `gorm:"autoCreateTime"`

	Caixa    *Caixa       `gorm:"foreignKey:CaixaID"`
	Venda    *Venda       `gorm:"foreignKey:VendaID"`
	Operador *Funcionario `gorm:"foreignKey:OperadorID"`
}

// TableName overrides GORM's pluralization (movimento_caixas → movimentos_caixa).
func (MovimentoCaixa) TableName() string { return "movimentos_caixa" }
