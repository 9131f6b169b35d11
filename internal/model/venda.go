package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status values for Venda.
const (
	VendaAberta     = "aberta"
	VendaFinalizada = "finalizada"
	VendaCancelada  = "cancelada"
)

// Venda is a finalized (or in-progress) sale. Comanda checkouts create the
// venda already finalizada; balcão sales start aberta and are finalized with a
// single payment. A given comanda may produce at most one finalized venda,
// guarded by an existence check plus a partial unique index on comanda_id.
type Venda struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// NumeroVenda is a human-readable, date-scoped sequential number
	// (VND20240131001), generated atomically inside the sale transaction.
	NumeroVenda string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	ClienteID   *uuid.UUID `gorm:"type:uuid"`
	ComandaID   *uuid.UUID `gorm:"type:uuid;index"`
	DataVenda   time.Time  `gorm:"not null"`
	Status      string     `gorm:"type:varchar(20);not null;default:'aberta'"`

	SubTotal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Desconto   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Acrescimo  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ValorTotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ValorPago  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Troco      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	Observacoes *string `gorm:"type:varchar(500)"`
	VendaBalcao bool    `gorm:"not null;default:true"`

	CriadoEm     time.Time `gorm:"autoCreateTime"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime"`

	Cliente    *Cliente        `gorm:"foreignKey:ClienteID"`
	Comanda    *Comanda        `gorm:"foreignKey:ComandaID"`
	Itens      []ItemVenda     `gorm:"foreignKey:VendaID"`
	Pagamentos []PagamentoVenda `gorm:"foreignKey:VendaID"`
}

func (Venda) TableName() string { return "vendas" }

// ItemVenda is one sale line. For comanda checkouts the line is a 1:1 copy of
// the comanda item (same product, quantity, unit price, line total).
type ItemVenda struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantidade    decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Desconto      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ValorTotal    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Observacoes   *string         `gorm:"type:varchar(500)"`
	Adicionais    *string         `gorm:"type:varchar(500)"`
	CriadoEm      time.Time       `gorm:"autoCreateTime"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ItemVenda) TableName() string { return "itens_venda" }

// PagamentoVenda is one tendered payment attached to a sale. Multiple methods
// may be combined; the sum must cover the sale total at finalize time.
type PagamentoVenda struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	FormaPagamento string          `gorm:"type:varchar(20);not null"`
	Valor          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// ValorRecebido is the physical cash handed over (dinheiro only).
	ValorRecebido   *decimal.Decimal `gorm:"type:decimal(10,2)"`
	NumeroDocumento *string          `gorm:"type:varchar(100)"`
	Observacoes     *string          `gorm:"type:varchar(200)"`
	DataPagamento   time.Time        `gorm:"not null"`
	CriadoEm        time.Time        `gorm:"autoCreateTime"`
}

func (PagamentoVenda) TableName() string { return "pagamentos_venda" }

// Troco returns the change owed for this single payment entry:
// max(0, recebido − valor). Zero when no cash was received.
func (p *PagamentoVenda) TrocoPagamento() decimal.Decimal {
	if p.ValorRecebido == nil {
		return decimal.Zero
	}
	troco := p.ValorRecebido.Sub(p.Valor)
	if troco.IsNegative() {
		return decimal.Zero
	}
	return troco
}
