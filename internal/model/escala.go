package model

import (
	"time"

	"github.com/google/uuid"
)

// Work shifts.
const (
	TurnoManha    = "manha"
	TurnoTarde    = "tarde"
	TurnoNoite    = "noite"
	TurnoIntegral = "integral"
)

// EscalaTrabalho is one scheduled shift for an employee.
type EscalaTrabalho struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FuncionarioID uuid.UUID `gorm:"type:uuid;not null;index"`
	DataEscala    time.Time `gorm:"type:date;not null;index"`
	Turno         string    `gorm:"type:varchar(20);not null"`
	// HoraInicio/HoraFim as "HH:MM" wall-clock strings; date lives in DataEscala.
	HoraInicio  string  `gorm:"type:varchar(5);not null"`
	HoraFim     string  `gorm:"type:varchar(5);not null"`
	Observacoes *string `gorm:"type:varchar(200)"`

	Ativo        bool      `gorm:"not null;default:true"`
	CriadoEm     time.Time `gorm:"autoCreateTime"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime"`

	Funcionario *Funcionario `gorm:"foreignKey:FuncionarioID"`
}

// TableName overrides GORM's pluralization (escalas_trabalho).
func (EscalaTrabalho) TableName() string { return "escalas_trabalho" }
