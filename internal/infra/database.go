package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (partial unique indexes, sequences).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates/updates the schema. Also used by integration tests.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Funcionario{},
		&model.Cliente{},
		&model.ClienteRestricao{},
		&model.Produto{},
		&model.MovimentoEstoque{},
		&model.Comanda{},
		&model.ItemComanda{},
		&model.Venda{},
		&model.ItemVenda{},
		&model.PagamentoVenda{},
		&model.Caixa{},
		&model.MovimentoCaixa{},
		&model.EscalaTrabalho{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// The partial unique indexes are the hard guarantees behind the service-level
// checks: one open caixa, one drawer posting per sale, one finalized sale per
// comanda.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"single open caixa",
			`CREATE UNIQUE INDEX IF NOT EXISTS uni_caixa_aberto
			   ON caixas ((status)) WHERE status = 'aberto'`},
		{"one venda posting per caixa",
			`CREATE UNIQUE INDEX IF NOT EXISTS uni_movimento_venda
			   ON movimentos_caixa (caixa_id, venda_id) WHERE tipo_movimento = 'venda'`},
		{"one finalized venda per comanda",
			`CREATE UNIQUE INDEX IF NOT EXISTS uni_venda_comanda_finalizada
			   ON vendas (comanda_id) WHERE status = 'finalizada' AND comanda_id IS NOT NULL`},
		{"comanda number sequence",
			`CREATE SEQUENCE IF NOT EXISTS comandas_numero_seq`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
