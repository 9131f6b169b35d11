package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Access levels, embedded in JWT claims.
const (
	NivelComum   = "comum"
	NivelGerente = "gerente"
	NivelAdmin   = "admin"
)

// Employment status values.
const (
	FuncionarioAtivo    = "ativo"
	FuncionarioInativo  = "inativo"
	FuncionarioFerias   = "ferias"
	FuncionarioAfastado = "afastado"
)

// Funcionario is an employee record and, when Email/SenhaHash are set, a
// system login. Every caixa/ledger operation references a funcionário as its
// operator.
type Funcionario struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome     string    `gorm:"type:varchar(100);not null"`
	Cpf      string    `gorm:"type:varchar(14);uniqueIndex;not null"`
	Rg       *string   `gorm:"type:varchar(15)"`
	Telefone *string   `gorm:"type:varchar(20)"`
	Email    *string   `gorm:"type:varchar(100);uniqueIndex"`

	Cargo       string `gorm:"type:varchar(100);not null"`
	Setor       string `gorm:"type:varchar(100);not null"`
	NivelAcesso string `gorm:"type:varchar(20);not null;default:'comum'"`
	Status      string `gorm:"type:varchar(20);not null;default:'ativo'"`

	SenhaHash *string `gorm:"type:varchar(100)"`

	DataAdmissao   *time.Time
	DataDemissao   *time.Time
	DataNascimento *time.Time
	Salario        *decimal.Decimal `gorm:"type:decimal(10,2)"`

	Endereco    *string `gorm:"type:varchar(200)"`
	Cidade      *string `gorm:"type:varchar(50)"`
	Estado      *string `gorm:"type:varchar(2)"`
	Cep         *string `gorm:"type:varchar(9)"`
	Observacoes *string `gorm:"type:varchar(500)"`

	Ativo        bool      `gorm:"not null;default:true"`
	CriadoEm     time.Time `gorm:"autoCreateTime"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime"`
}

func (Funcionario) TableName() string { return "funcionarios" }
