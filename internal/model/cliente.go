package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Restriction motives.
const (
	RestricaoInadimplencia           = "inadimplencia"
	RestricaoComportamentoInadequado = "comportamento_inadequado"
	RestricaoFraudeIdentificada      = "fraude_identificada"
	RestricaoSolicitacaoCliente      = "solicitacao_cliente"
	RestricaoOutros                  = "outros"
)

// Cliente is a customer master-data record (soft-deleted via Ativo).
type Cliente struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome     string    `gorm:"type:varchar(100);index;not null"`
	CpfCnpj  *string   `gorm:"type:varchar(14);uniqueIndex"`
	Telefone *string   `gorm:"type:varchar(20)"`
	Email    *string   `gorm:"type:varchar(100)"`

	Endereco       *string `gorm:"type:varchar(200)"`
	Cidade         *string `gorm:"type:varchar(50)"`
	Estado         *string `gorm:"type:varchar(2)"`
	Cep            *string `gorm:"type:varchar(9)"`
	DataNascimento *time.Time

	LimiteCredito decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Observacoes   *string         `gorm:"type:varchar(500)"`

	Ativo        bool      `gorm:"not null;default:true"`
	CriadoEm     time.Time `gorm:"autoCreateTime"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime"`

	Restricoes []ClienteRestricao `gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }

// TemRestricaoAtiva reports whether any restriction is still in force.
func (c *Cliente) TemRestricaoAtiva() bool {
	for _, r := range c.Restricoes {
		if r.Ativa {
			return true
		}
	}
	return false
}

// ClienteRestricao flags a customer (bad debt, fraud, own request…).
// Removal keeps the row for audit and records who lifted it.
type ClienteRestricao struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID uuid.UUID `gorm:"type:uuid;not null;index"`
	Motivo    string    `gorm:"type:varchar(30);not null"`
	Descricao string    `gorm:"type:varchar(500);not null"`

	DataInclusao time.Time `gorm:"not null"`
	DataRemocao  *time.Time

	ResponsavelInclusaoID uuid.UUID  `gorm:"type:uuid;not null"`
	ResponsavelRemocaoID  *uuid.UUID `gorm:"type:uuid"`
	ObservacoesRemocao    *string    `gorm:"type:varchar(500)"`

	Ativa    bool      `gorm:"not null;default:true"`
	CriadoEm time.Time `gorm:"autoCreateTime"`

	ResponsavelInclusao *Funcionario `gorm:"foreignKey:ResponsavelInclusaoID"`
	ResponsavelRemocao  *Funcionario `gorm:"foreignKey:ResponsavelRemocaoID"`
}

func (ClienteRestricao) TableName() string { return "clientes_restricoes" }
