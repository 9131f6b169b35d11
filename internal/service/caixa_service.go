package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/repository"
)

// toleranciaFechamento is the maximum |declarado − teórico| difference that
// closes silently. Anything above it generates a variance movement.
var toleranciaFechamento = decimal.NewFromFloat(0.01)

type CaixaService interface {
	Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error)
	Fechar(ctx context.Context, caixaID uuid.UUID, req dto.FecharCaixaRequest) (*dto.CaixaResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CaixaResponse, error)
	GetCaixaAberto(ctx context.Context) (*dto.CaixaResponse, error)
	TemCaixaAberto(ctx context.Context) (bool, error)
	List(ctx context.Context, limit, offset int) ([]dto.CaixaResponse, int64, error)
	Relatorio(ctx context.Context, caixaID uuid.UUID) (*dto.RelatorioCaixaResponse, error)
	RelatorioFinanceiro(ctx context.Context, inicio, fim time.Time) (*dto.RelatorioFinanceiroResponse, error)
}

type caixaService struct {
	repo            repository.CaixaRepository
	movimentoRepo   repository.MovimentoCaixaRepository
	vendaRepo       repository.VendaRepository
	funcionarioRepo repository.FuncionarioRepository
}

func NewCaixaService(
	repo repository.CaixaRepository,
	movimentoRepo repository.MovimentoCaixaRepository,
	vendaRepo repository.VendaRepository,
	funcionarioRepo repository.FuncionarioRepository,
) CaixaService {
	return &caixaService{
		repo:            repo,
		movimentoRepo:   movimentoRepo,
		vendaRepo:       vendaRepo,
		funcionarioRepo: funcionarioRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *caixaService) Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error) {
	aberto, err := s.repo.TemCaixaAberto(ctx)
	if err != nil {
		return nil, err
	}
	if aberto {
		return nil, apierror.Conflict("Já existe um caixa aberto")
	}
	if _, err := s.funcionarioRepo.FindByID(ctx, req.OperadorID); err != nil {
		return nil, apierror.NotFound("Operador não encontrado")
	}

	caixa := &model.Caixa{
		DataAbertura:        time.Now(),
		Status:              model.CaixaAberto,
		ValorAbertura:       req.ValorAbertura,
		ObservacoesAbertura: req.Observacoes,
		OperadorAberturaID:  req.OperadorID,
	}

	// The abertura movement is written in the same transaction as the session
	// row. The partial unique index on status='aberto' catches concurrent opens.
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if tx == nil {
			if err := s.repo.Create(ctx, caixa); err != nil {
				return err
			}
		} else if err := tx.WithContext(ctx).Create(caixa).Error; err != nil {
			return err
		}
		// Movement amounts are always positive; a zero float opens the
		// session with an empty ledger.
		if !req.ValorAbertura.IsPositive() {
			return nil
		}
		mov := &model.MovimentoCaixa{
			CaixaID:       caixa.ID,
			DataMovimento: caixa.DataAbertura,
			TipoMovimento: model.MovimentoAbertura,
			Valor:         req.ValorAbertura,
			Descricao:     "Abertura de caixa",
			OperadorID:    req.OperadorID,
		}
		return s.movimentoRepo.Create(ctx, tx, mov)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Já existe um caixa aberto")
		}
		return nil, err
	}
	return caixaToResponse(caixa), nil
}

func (s *caixaService) Fechar(ctx context.Context, caixaID uuid.UUID, req dto.FecharCaixaRequest) (*dto.CaixaResponse, error) {
	caixa, err := s.repo.FindByID(ctx, caixaID)
	if err != nil {
		return nil, apierror.NotFound("Caixa não encontrado")
	}
	if caixa.Status != model.CaixaAberto {
		return nil, apierror.Conflict("Caixa já está fechado")
	}
	if _, err := s.funcionarioRepo.FindByID(ctx, req.OperadorID); err != nil {
		return nil, apierror.NotFound("Operador não encontrado")
	}

	agora := time.Now()
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Totals are recomputed from the ledger before the variance check so a
		// stale denormalized aggregate can never fabricate a difference.
		if err := s.repo.AtualizarTotais(ctx, tx, caixa.ID); err != nil {
			return err
		}
		if err := s.recarregarTotais(ctx, tx, caixa); err != nil {
			return err
		}

		saldoTeorico := caixa.SaldoTeorico()
		diferenca := req.ValorFechamento.Sub(saldoTeorico)

		if diferenca.Abs().GreaterThan(toleranciaFechamento) {
			descricao := "Sobra de caixa"
			if diferenca.IsNegative() {
				descricao = "Falta de caixa"
			}
			mov := &model.MovimentoCaixa{
				CaixaID:       caixa.ID,
				DataMovimento: agora,
				TipoMovimento: model.MovimentoFechamento,
				Valor:         diferenca.Abs(),
				Descricao:     descricao,
				Observacoes:   req.Observacoes,
				OperadorID:    req.OperadorID,
			}
			if err := s.movimentoRepo.Create(ctx, tx, mov); err != nil {
				return err
			}
		}

		caixa.Status = model.CaixaFechado
		caixa.DataFechamento = &agora
		caixa.ValorFechamento = req.ValorFechamento
		caixa.ObservacoesFechamento = req.Observacoes
		caixa.OperadorFechamentoID = &req.OperadorID
		return s.repo.Update(ctx, tx, caixa)
	})
	if err != nil {
		return nil, err
	}
	return caixaToResponse(caixa), nil
}

// recarregarTotais refreshes the denormalized totals from the ledger via SUM,
// inside tx when given so the sums and the row write see one snapshot. Used
// instead of re-reading the row so the fake repository in unit tests behaves
// the same as Postgres.
func (s *caixaService) recarregarTotais(ctx context.Context, tx *gorm.DB, caixa *model.Caixa) error {
	vendas, err := s.movimentoRepo.TotalPorTipo(ctx, tx, caixa.ID, model.MovimentoVenda)
	if err != nil {
		return err
	}
	sangrias, err := s.movimentoRepo.TotalPorTipo(ctx, tx, caixa.ID, model.MovimentoSangria)
	if err != nil {
		return err
	}
	suprimentos, err := s.movimentoRepo.TotalPorTipo(ctx, tx, caixa.ID, model.MovimentoSuprimento)
	if err != nil {
		return err
	}
	caixa.TotalVendas = vendas
	caixa.TotalSangrias = sangrias
	caixa.TotalSuprimentos = suprimentos
	return nil
}

func (s *caixaService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CaixaResponse, error) {
	caixa, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Caixa não encontrado")
	}
	return caixaToResponse(caixa), nil
}

func (s *caixaService) GetCaixaAberto(ctx context.Context) (*dto.CaixaResponse, error) {
	caixa, err := s.repo.FindAberto(ctx)
	if err != nil {
		return nil, apierror.NotFound("Nenhum caixa aberto")
	}
	return caixaToResponse(caixa), nil
}

func (s *caixaService) TemCaixaAberto(ctx context.Context) (bool, error) {
	return s.repo.TemCaixaAberto(ctx)
}

func (s *caixaService) List(ctx context.Context, limit, offset int) ([]dto.CaixaResponse, int64, error) {
	if limit < 1 {
		limit = 50
	}
	caixas, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.CaixaResponse, 0, len(caixas))
	for i := range caixas {
		out = append(out, *caixaToResponse(&caixas[i]))
	}
	return out, total, nil
}

func (s *caixaService) Relatorio(ctx context.Context, caixaID uuid.UUID) (*dto.RelatorioCaixaResponse, error) {
	caixa, err := s.repo.FindByID(ctx, caixaID)
	if err != nil {
		return nil, apierror.NotFound("Caixa não encontrado")
	}
	if err := s.recarregarTotais(ctx, nil, caixa); err != nil {
		return nil, err
	}

	movimentos, err := s.movimentoRepo.ListByCaixa(ctx, caixaID)
	if err != nil {
		return nil, err
	}
	porPagamento, err := s.movimentoRepo.SumVendasPorFormaPagamento(ctx, caixaID)
	if err != nil {
		return nil, err
	}

	rel := &dto.RelatorioCaixaResponse{
		Caixa:              *caixaToResponse(caixa),
		SaldoTeorico:       caixa.SaldoTeorico(),
		VendasPorPagamento: porPagamento,
		Movimentos:         make([]dto.MovimentoCaixaResponse, 0, len(movimentos)),
	}
	for i := range movimentos {
		rel.Movimentos = append(rel.Movimentos, *movimentoToResponse(&movimentos[i]))
		switch movimentos[i].TipoMovimento {
		case model.MovimentoVenda:
			rel.QuantidadeVendas++
		case model.MovimentoSangria:
			rel.QuantidadeSangrias++
		case model.MovimentoSuprimento:
			rel.QuantidadeSuprimentos++
		}
	}
	if caixa.Status == model.CaixaFechado {
		diff := caixa.ValorFechamento.Sub(caixa.SaldoTeorico())
		rel.Diferenca = &diff
	}
	return rel, nil
}

func (s *caixaService) RelatorioFinanceiro(ctx context.Context, inicio, fim time.Time) (*dto.RelatorioFinanceiroResponse, error) {
	if fim.Before(inicio) {
		return nil, apierror.Invalid("Data final anterior à data inicial")
	}
	vendas, err := s.vendaRepo.ListPorPeriodo(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}

	rel := &dto.RelatorioFinanceiroResponse{
		DataInicio:         inicio,
		DataFim:            fim,
		VendasPorPagamento: map[string]decimal.Decimal{},
	}
	for i := range vendas {
		v := &vendas[i]
		if v.Status != model.VendaFinalizada {
			continue
		}
		rel.QuantidadeVendas++
		rel.TotalVendas = rel.TotalVendas.Add(v.ValorTotal)
		rel.TotalDescontos = rel.TotalDescontos.Add(v.Desconto)
		rel.TotalAcrescimos = rel.TotalAcrescimos.Add(v.Acrescimo)
		for _, p := range v.Pagamentos {
			rel.VendasPorPagamento[p.FormaPagamento] = rel.VendasPorPagamento[p.FormaPagamento].Add(p.Valor)
		}
	}
	if rel.QuantidadeVendas > 0 {
		rel.TicketMedio = rel.TotalVendas.Div(decimal.NewFromInt(rel.QuantidadeVendas)).Round(2)
	}
	return rel, nil
}

func caixaToResponse(c *model.Caixa) *dto.CaixaResponse {
	return &dto.CaixaResponse{
		ID:                    c.ID,
		DataAbertura:          c.DataAbertura,
		DataFechamento:        c.DataFechamento,
		Status:                c.Status,
		ValorAbertura:         c.ValorAbertura,
		ValorFechamento:       c.ValorFechamento,
		TotalVendas:           c.TotalVendas,
		TotalSangrias:         c.TotalSangrias,
		TotalSuprimentos:      c.TotalSuprimentos,
		SaldoTeorico:          c.SaldoTeorico(),
		ObservacoesAbertura:   c.ObservacoesAbertura,
		ObservacoesFechamento: c.ObservacoesFechamento,
		OperadorAberturaID:    c.OperadorAberturaID,
		OperadorFechamentoID:  c.OperadorFechamentoID,
	}
}

func movimentoToResponse(m *model.MovimentoCaixa) *dto.MovimentoCaixaResponse {
	return &dto.MovimentoCaixaResponse{
		ID:              m.ID,
		CaixaID:         m.CaixaID,
		DataMovimento:   m.DataMovimento,
		TipoMovimento:   m.TipoMovimento,
		Valor:           m.Valor,
		Descricao:       m.Descricao,
		Observacoes:     m.Observacoes,
		FormaPagamento:  m.FormaPagamento,
		VendaID:         m.VendaID,
		OperadorID:      m.OperadorID,
		NumeroDocumento: m.NumeroDocumento,
	}
}
