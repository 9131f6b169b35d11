package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/repository"
	"github.com/lobatoremulo/Restaurante-PDV/internal/worker"
)

type VendaService interface {
	CriarVenda(ctx context.Context, req dto.CriarVendaRequest) (*dto.VendaResponse, error)
	FinalizarVenda(ctx context.Context, vendaID uuid.UUID, req dto.FinalizarVendaRequest) (*dto.VendaResponse, error)
	CancelarVenda(ctx context.Context, vendaID uuid.UUID, operadorID uuid.UUID, motivo string) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.VendaResponse, error)
	GetByNumero(ctx context.Context, numero string) (*dto.VendaResponse, error)

	// Comanda checkout pipeline.
	ProcessarPagamentoComanda(ctx context.Context, req dto.PagamentoComandaRequest) (*dto.VendaResponse, error)
	ValidarPagamento(ctx context.Context, req dto.ValidarPagamentoRequest) (*dto.ValidarPagamentoResponse, error)
	PrepararPagamento(ctx context.Context, comandaID uuid.UUID) (*dto.PrepararPagamentoResponse, error)
	GetComandasPendentes(ctx context.Context) ([]dto.ComandaResponse, error)
	ReprocessarPagamento(ctx context.Context, req dto.PagamentoComandaRequest) (*dto.VendaResponse, error)

	RelatorioVendas(ctx context.Context, inicio, fim time.Time) (*dto.RelatorioVendasResponse, error)
}

type vendaService struct {
	repo          repository.VendaRepository
	comandaRepo   repository.ComandaRepository
	caixaRepo     repository.CaixaRepository
	movimentoRepo repository.MovimentoCaixaRepository
	produtoRepo   repository.ProdutoRepository
	clienteRepo   repository.ClienteRepository
	dispatcher    *worker.Dispatcher
}

func NewVendaService(
	repo repository.VendaRepository,
	comandaRepo repository.ComandaRepository,
	caixaRepo repository.CaixaRepository,
	movimentoRepo repository.MovimentoCaixaRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
	dispatcher *worker.Dispatcher,
) VendaService {
	return &vendaService{
		repo:          repo,
		comandaRepo:   comandaRepo,
		caixaRepo:     caixaRepo,
		movimentoRepo: movimentoRepo,
		produtoRepo:   produtoRepo,
		clienteRepo:   clienteRepo,
		dispatcher:    dispatcher,
	}
}

// ── CriarVenda ────────────────────────────────────────────────────────────────
// Balcão sale: created aberta, finalized later with FinalizarVenda.

func (s *vendaService) CriarVenda(ctx context.Context, req dto.CriarVendaRequest) (*dto.VendaResponse, error) {
	subTotal := decimal.Zero
	itens := make([]model.ItemVenda, 0, len(req.Itens))
	for _, item := range req.Itens {
		p, err := s.produtoRepo.FindByID(ctx, item.ProdutoID)
		if err != nil {
			return nil, apierror.NotFound(fmt.Sprintf("Produto %s não encontrado", item.ProdutoID))
		}
		if !p.Ativo {
			return nil, apierror.Invalid(fmt.Sprintf("Produto %s está inativo", p.Nome))
		}
		valorUnitario := p.PrecoVenda
		if item.ValorUnitario != nil {
			valorUnitario = *item.ValorUnitario
		}
		valorTotal := valorUnitario.Mul(item.Quantidade).Sub(item.Desconto)
		subTotal = subTotal.Add(valorTotal)
		itens = append(itens, model.ItemVenda{
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			ValorUnitario: valorUnitario,
			Desconto:      item.Desconto,
			ValorTotal:    valorTotal,
			Observacoes:   item.Observacoes,
		})
	}

	valorTotal := subTotal.Sub(req.Desconto).Add(req.Acrescimo)
	if valorTotal.IsNegative() {
		return nil, apierror.Invalid("Desconto maior que o valor da venda")
	}

	var venda model.Venda
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		numero, err := s.repo.NextNumero(ctx, tx, time.Now())
		if err != nil {
			return err
		}
		venda = model.Venda{
			NumeroVenda: numero,
			ClienteID:   req.ClienteID,
			ComandaID:   req.ComandaID,
			DataVenda:   time.Now(),
			Status:      model.VendaAberta,
			SubTotal:    subTotal,
			Desconto:    req.Desconto,
			Acrescimo:   req.Acrescimo,
			ValorTotal:  valorTotal,
			Observacoes: req.Observacoes,
			VendaBalcao: req.VendaBalcao,
			Itens:       itens,
		}
		return s.repo.Create(ctx, tx, &venda)
	})
	if err != nil {
		return nil, err
	}
	return vendaToResponse(&venda), nil
}

// ── FinalizarVenda ────────────────────────────────────────────────────────────
// Takes an aberta sale to finalizada: payments, strict stock decrement, cash
// ledger posting and totals update, all in one transaction.

func (s *vendaService) FinalizarVenda(ctx context.Context, vendaID uuid.UUID, req dto.FinalizarVendaRequest) (*dto.VendaResponse, error) {
	venda, err := s.repo.FindByID(ctx, vendaID)
	if err != nil {
		return nil, apierror.NotFound("Venda não encontrada")
	}
	if venda.Status != model.VendaAberta {
		return nil, apierror.Conflict("Venda não está aberta")
	}

	caixa, err := s.caixaRepo.FindAberto(ctx)
	if err != nil {
		return nil, apierror.Conflict("Nenhum caixa aberto")
	}

	pagamentos, valorPago, troco, err := s.montarPagamentos(req.Pagamentos, venda.ValorTotal)
	if err != nil {
		return nil, err
	}
	if err := s.validarFiado(ctx, req.Pagamentos, venda.ClienteID); err != nil {
		return nil, err
	}

	agora := time.Now()
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.baixarEstoque(ctx, tx, venda.Itens, venda.ID, venda.NumeroVenda); err != nil {
			return err
		}
		venda.Status = model.VendaFinalizada
		venda.ValorPago = valorPago
		venda.Troco = troco
		venda.Pagamentos = pagamentos
		if err := s.repo.Update(ctx, tx, venda); err != nil {
			return err
		}
		if err := s.registrarVendaNoCaixa(ctx, tx, caixa.ID, venda, req.OperadorID, agora); err != nil {
			return err
		}
		return s.caixaRepo.AtualizarTotais(ctx, tx, caixa.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Venda já registrada no caixa")
		}
		return nil, err
	}

	s.notificarEstoqueBaixo(ctx, venda.Itens)
	return vendaToResponse(venda), nil
}

// ── ProcessarPagamentoComanda ─────────────────────────────────────────────────
// The core checkout pipeline. Everything between the first write and the last
// commits or rolls back together:
//   1. open caixa required
//   2. comanda must be fechada and not yet paid
//   3. totals computed from the comanda items
//   4. payments must cover the final amount (fiado needs an unrestricted client)
//   5. TX: sale number, venda finalizada with copied items, strict stock
//      decrement + stock movements, one venda movement in the cash ledger,
//      caixa totals recomputed
//   6. post-commit: low-stock alerts

func (s *vendaService) ProcessarPagamentoComanda(ctx context.Context, req dto.PagamentoComandaRequest) (*dto.VendaResponse, error) {
	caixa, err := s.caixaRepo.FindAberto(ctx)
	if err != nil {
		return nil, apierror.Conflict("Nenhum caixa aberto")
	}

	comanda, err := s.comandaRepo.FindByIDComItens(ctx, req.ComandaID)
	if err != nil {
		return nil, apierror.NotFound("Comanda não encontrada")
	}
	if comanda.Status != model.ComandaFechada {
		return nil, apierror.Conflict("Comanda deve estar fechada antes do pagamento")
	}
	jaPaga, err := s.repo.ExisteVendaFinalizadaParaComanda(ctx, comanda.ID)
	if err != nil {
		return nil, err
	}
	if jaPaga {
		return nil, apierror.Conflict("Comanda já possui venda finalizada")
	}
	if len(comanda.Itens) == 0 {
		return nil, apierror.Invalid("Comanda sem itens")
	}

	subTotal, desconto, acrescimo, valorFinal := s.totaisComanda(comanda, req.Desconto, req.Acrescimo)
	pagamentos, valorPago, troco, err := s.montarPagamentos(req.Pagamentos, valorFinal)
	if err != nil {
		return nil, err
	}
	if err := s.validarFiado(ctx, req.Pagamentos, comanda.ClienteID); err != nil {
		return nil, err
	}

	agora := time.Now()
	var venda model.Venda
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		numero, err := s.repo.NextNumero(ctx, tx, agora)
		if err != nil {
			return err
		}

		itens := make([]model.ItemVenda, 0, len(comanda.Itens))
		for _, item := range comanda.Itens {
			itens = append(itens, model.ItemVenda{
				ProdutoID:     item.ProdutoID,
				Quantidade:    item.Quantidade,
				ValorUnitario: item.ValorUnitario,
				ValorTotal:    item.ValorTotal,
				Observacoes:   item.Observacoes,
				Adicionais:    item.Adicionais,
			})
		}

		comandaID := comanda.ID
		venda = model.Venda{
			NumeroVenda: numero,
			ClienteID:   comanda.ClienteID,
			ComandaID:   &comandaID,
			DataVenda:   agora,
			Status:      model.VendaFinalizada,
			SubTotal:    subTotal,
			Desconto:    desconto,
			Acrescimo:   acrescimo,
			ValorTotal:  valorFinal,
			ValorPago:   valorPago,
			Troco:       troco,
			Observacoes: req.Observacoes,
			VendaBalcao: false,
			Itens:       itens,
			Pagamentos:  pagamentos,
		}
		if err := s.repo.Create(ctx, tx, &venda); err != nil {
			return err
		}
		if err := s.baixarEstoque(ctx, tx, venda.Itens, venda.ID, venda.NumeroVenda); err != nil {
			return err
		}
		if err := s.registrarVendaNoCaixa(ctx, tx, caixa.ID, &venda, req.OperadorID, agora); err != nil {
			return err
		}
		return s.caixaRepo.AtualizarTotais(ctx, tx, caixa.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Comanda já possui venda finalizada")
		}
		return nil, err
	}

	log.Info().
		Str("venda", venda.NumeroVenda).
		Str("comanda", comanda.NumeroComanda).
		Str("valor", valorFinal.String()).
		Msg("pagamento de comanda processado")

	s.notificarEstoqueBaixo(ctx, venda.Itens)
	return vendaToResponse(&venda), nil
}

// ── ValidarPagamento ──────────────────────────────────────────────────────────
// Dry run of the checkout checks. Never writes.

func (s *vendaService) ValidarPagamento(ctx context.Context, req dto.ValidarPagamentoRequest) (*dto.ValidarPagamentoResponse, error) {
	comanda, err := s.comandaRepo.FindByIDComItens(ctx, req.ComandaID)
	if err != nil {
		return nil, apierror.NotFound("Comanda não encontrada")
	}

	resp := &dto.ValidarPagamentoResponse{Valido: true}
	adicionarErro := func(msg string) {
		resp.Valido = false
		resp.Erros = append(resp.Erros, msg)
	}

	if aberto, err := s.caixaRepo.TemCaixaAberto(ctx); err != nil {
		return nil, err
	} else if !aberto {
		adicionarErro("Nenhum caixa aberto")
	}
	if comanda.Status != model.ComandaFechada {
		adicionarErro("Comanda deve estar fechada antes do pagamento")
	}
	if jaPaga, err := s.repo.ExisteVendaFinalizadaParaComanda(ctx, comanda.ID); err != nil {
		return nil, err
	} else if jaPaga {
		adicionarErro("Comanda já possui venda finalizada")
	}

	_, _, _, valorFinal := s.totaisComanda(comanda, req.Desconto, req.Acrescimo)
	valorPago := decimal.Zero
	for _, p := range req.Pagamentos {
		valorPago = valorPago.Add(p.Valor)
	}
	if valorPago.LessThan(valorFinal) {
		adicionarErro("Valor pago insuficiente")
	}
	if err := s.validarFiado(ctx, req.Pagamentos, comanda.ClienteID); err != nil {
		adicionarErro(err.Error())
	}

	resp.ValorComanda = comanda.ValorTotal
	resp.ValorFinal = valorFinal
	resp.ValorPago = valorPago
	if valorPago.GreaterThan(valorFinal) {
		resp.Troco = valorPago.Sub(valorFinal)
	}
	return resp, nil
}

func (s *vendaService) PrepararPagamento(ctx context.Context, comandaID uuid.UUID) (*dto.PrepararPagamentoResponse, error) {
	comanda, err := s.comandaRepo.FindByIDComItens(ctx, comandaID)
	if err != nil {
		return nil, apierror.NotFound("Comanda não encontrada")
	}
	if comanda.Status != model.ComandaFechada {
		return nil, apierror.Conflict("Comanda deve estar fechada antes do pagamento")
	}
	aberto, err := s.caixaRepo.TemCaixaAberto(ctx)
	if err != nil {
		return nil, err
	}
	_, _, _, valorFinal := s.totaisComanda(comanda, decimal.Zero, decimal.Zero)
	return &dto.PrepararPagamentoResponse{
		Comanda:    *comandaToResponse(comanda),
		ValorTotal: valorFinal,
		FormasPagamento: []string{
			model.PagamentoDinheiro,
			model.PagamentoCartaoCredito,
			model.PagamentoCartaoDebito,
			model.PagamentoPix,
			model.PagamentoFiado,
		},
		CaixaAberto: aberto,
	}, nil
}

func (s *vendaService) GetComandasPendentes(ctx context.Context) ([]dto.ComandaResponse, error) {
	comandas, err := s.comandaRepo.ListPendentesPagamento(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComandaResponse, 0, len(comandas))
	for i := range comandas {
		out = append(out, *comandaToResponse(&comandas[i]))
	}
	return out, nil
}

// ── ReprocessarPagamento ──────────────────────────────────────────────────────
// Undo-then-redo for a wrongly paid comanda: the original venda is cancelled
// with full compensation (stock restored, reversal posted to the cash ledger),
// then the checkout pipeline runs again with the corrected payments.

func (s *vendaService) ReprocessarPagamento(ctx context.Context, req dto.PagamentoComandaRequest) (*dto.VendaResponse, error) {
	original, err := s.repo.FindFinalizadaPorComanda(ctx, req.ComandaID)
	if err != nil {
		return nil, apierror.NotFound("Comanda não possui venda finalizada para reprocessar")
	}
	if err := s.CancelarVenda(ctx, original.ID, req.OperadorID, "Reprocessamento de pagamento"); err != nil {
		return nil, err
	}
	return s.ProcessarPagamentoComanda(ctx, req)
}

// ── CancelarVenda ─────────────────────────────────────────────────────────────
// Compensation: restore stock, post a sangria reversing the drawer entry, mark
// the sale cancelada. Movements are immutable, so the reversal is a new entry.

func (s *vendaService) CancelarVenda(ctx context.Context, vendaID uuid.UUID, operadorID uuid.UUID, motivo string) error {
	venda, err := s.repo.FindByID(ctx, vendaID)
	if err != nil {
		return apierror.NotFound("Venda não encontrada")
	}
	if venda.Status == model.VendaCancelada {
		return apierror.Conflict("Venda já está cancelada")
	}

	// An aberta sale never touched stock or the drawer, so there is nothing
	// to compensate: just mark it cancelada.
	if venda.Status != model.VendaFinalizada {
		if err := s.repo.UpdateStatus(ctx, nil, venda.ID, model.VendaCancelada); err != nil {
			return err
		}
		log.Info().Str("venda", venda.NumeroVenda).Str("motivo", motivo).Msg("venda cancelada")
		return nil
	}

	caixa, err := s.caixaRepo.FindAberto(ctx)
	if err != nil {
		return apierror.Conflict("Nenhum caixa aberto para registrar o estorno")
	}

	agora := time.Now()
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range venda.Itens {
			if err := s.produtoRepo.ReporEstoque(ctx, tx, item.ProdutoID, item.Quantidade); err != nil {
				return err
			}
			vendaRef := venda.ID
			movEstoque := &model.MovimentoEstoque{
				ProdutoID:     item.ProdutoID,
				TipoMovimento: model.EstoqueEntrada,
				Quantidade:    item.Quantidade,
				ValorUnitario: item.ValorUnitario,
				VendaID:       &vendaRef,
				Observacoes:   &motivo,
			}
			if err := s.produtoRepo.CreateMovimentoEstoque(ctx, tx, movEstoque); err != nil {
				return err
			}
		}

		vendaRef := venda.ID
		mov := &model.MovimentoCaixa{
			CaixaID:       caixa.ID,
			DataMovimento: agora,
			TipoMovimento: model.MovimentoSangria,
			Valor:         venda.ValorTotal,
			Descricao:     fmt.Sprintf("Estorno venda %s", venda.NumeroVenda),
			Observacoes:   &motivo,
			VendaID:       &vendaRef,
			OperadorID:    operadorID,
		}
		if err := s.movimentoRepo.Create(ctx, tx, mov); err != nil {
			return err
		}

		if err := s.repo.UpdateStatus(ctx, tx, venda.ID, model.VendaCancelada); err != nil {
			return err
		}
		return s.caixaRepo.AtualizarTotais(ctx, tx, caixa.ID)
	})
	if err != nil {
		return err
	}

	log.Info().Str("venda", venda.NumeroVenda).Str("motivo", motivo).Msg("venda cancelada")
	return nil
}

func (s *vendaService) GetByID(ctx context.Context, id uuid.UUID) (*dto.VendaResponse, error) {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Venda não encontrada")
	}
	return vendaToResponse(venda), nil
}

func (s *vendaService) GetByNumero(ctx context.Context, numero string) (*dto.VendaResponse, error) {
	venda, err := s.repo.FindByNumero(ctx, numero)
	if err != nil {
		return nil, apierror.NotFound("Venda não encontrada")
	}
	return vendaToResponse(venda), nil
}

func (s *vendaService) RelatorioVendas(ctx context.Context, inicio, fim time.Time) (*dto.RelatorioVendasResponse, error) {
	if fim.Before(inicio) {
		return nil, apierror.Invalid("Data final anterior à data inicial")
	}
	vendas, err := s.repo.ListPorPeriodo(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	rel := &dto.RelatorioVendasResponse{
		DataInicio: inicio,
		DataFim:    fim,
		Vendas:     make([]dto.VendaResponse, 0, len(vendas)),
	}
	for i := range vendas {
		v := &vendas[i]
		if v.Status != model.VendaFinalizada {
			continue
		}
		rel.QuantidadeVendas++
		rel.TotalVendido = rel.TotalVendido.Add(v.ValorTotal)
		rel.Vendas = append(rel.Vendas, *vendaToResponse(v))
	}
	if rel.QuantidadeVendas > 0 {
		rel.TicketMedio = rel.TotalVendido.Div(decimal.NewFromInt(rel.QuantidadeVendas)).Round(2)
	}
	return rel, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// totaisComanda resolves the effective discount/surcharge: the request values
// override the ones stored on the comanda when non-zero.
func (s *vendaService) totaisComanda(comanda *model.Comanda, desconto, acrescimo decimal.Decimal) (subTotal, d, a, valorFinal decimal.Decimal) {
	subTotal = comanda.ValorTotal
	d = comanda.Desconto
	if !desconto.IsZero() {
		d = desconto
	}
	a = comanda.Acrescimo
	if !acrescimo.IsZero() {
		a = acrescimo
	}
	valorFinal = subTotal.Sub(d).Add(a)
	return
}

// montarPagamentos validates payment coverage and builds the payment rows.
// Change is only computed over cash (dinheiro) entries that declare the
// amount physically received.
func (s *vendaService) montarPagamentos(reqs []dto.PagamentoRequest, valorDevido decimal.Decimal) ([]model.PagamentoVenda, decimal.Decimal, decimal.Decimal, error) {
	valorPago := decimal.Zero
	troco := decimal.Zero
	agora := time.Now()
	pagamentos := make([]model.PagamentoVenda, 0, len(reqs))
	for _, p := range reqs {
		valorPago = valorPago.Add(p.Valor)
		pag := model.PagamentoVenda{
			FormaPagamento:  p.FormaPagamento,
			Valor:           p.Valor,
			ValorRecebido:   p.ValorRecebido,
			NumeroDocumento: p.NumeroDocumento,
			DataPagamento:   agora,
		}
		if p.FormaPagamento == model.PagamentoDinheiro {
			troco = troco.Add(pag.TrocoPagamento())
		}
		pagamentos = append(pagamentos, pag)
	}
	if valorPago.LessThan(valorDevido) {
		return nil, decimal.Zero, decimal.Zero, apierror.Invalid("Valor pago insuficiente")
	}
	return pagamentos, valorPago, troco, nil
}

// validarFiado rejects store-credit payments without an identified,
// unrestricted client.
func (s *vendaService) validarFiado(ctx context.Context, reqs []dto.PagamentoRequest, clienteID *uuid.UUID) error {
	temFiado := false
	for _, p := range reqs {
		if p.FormaPagamento == model.PagamentoFiado {
			temFiado = true
			break
		}
	}
	if !temFiado {
		return nil
	}
	if clienteID == nil {
		return apierror.Invalid("Pagamento fiado exige cliente identificado")
	}
	cliente, err := s.clienteRepo.FindByID(ctx, *clienteID)
	if err != nil {
		return apierror.NotFound("Cliente não encontrado")
	}
	if cliente.TemRestricaoAtiva() {
		return apierror.Invalid("Cliente possui restrição ativa e não pode comprar fiado")
	}
	return nil
}

// baixarEstoque decrements stock for every sale item, aborting the whole
// transaction on the first product without enough on hand.
func (s *vendaService) baixarEstoque(ctx context.Context, tx *gorm.DB, itens []model.ItemVenda, vendaID uuid.UUID, numeroVenda string) error {
	for _, item := range itens {
		ok, err := s.produtoRepo.DescontarEstoque(ctx, tx, item.ProdutoID, item.Quantidade)
		if err != nil {
			return err
		}
		if !ok {
			return apierror.Invalid(fmt.Sprintf("Estoque insuficiente para o produto %s", item.ProdutoID))
		}
		vendaRef := vendaID
		motivo := fmt.Sprintf("Venda %s", numeroVenda)
		mov := &model.MovimentoEstoque{
			ProdutoID:     item.ProdutoID,
			TipoMovimento: model.EstoqueSaida,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			VendaID:       &vendaRef,
			Observacoes:   &motivo,
		}
		if err := s.produtoRepo.CreateMovimentoEstoque(ctx, tx, mov); err != nil {
			return err
		}
	}
	return nil
}

// registrarVendaNoCaixa posts the single venda movement for a finalized sale.
// One movement per sale keeps the (caixa_id, venda_id) uniqueness meaningful;
// the per-method breakdown lives in pagamentos_venda.
func (s *vendaService) registrarVendaNoCaixa(ctx context.Context, tx *gorm.DB, caixaID uuid.UUID, venda *model.Venda, operadorID uuid.UUID, quando time.Time) error {
	forma := formaPrincipal(venda.Pagamentos)
	vendaRef := venda.ID
	mov := &model.MovimentoCaixa{
		CaixaID:        caixaID,
		DataMovimento:  quando,
		TipoMovimento:  model.MovimentoVenda,
		Valor:          venda.ValorTotal,
		Descricao:      fmt.Sprintf("Venda %s", venda.NumeroVenda),
		FormaPagamento: &forma,
		VendaID:        &vendaRef,
		OperadorID:     operadorID,
	}
	return s.movimentoRepo.Create(ctx, tx, mov)
}

// formaPrincipal is the highest-value payment method of the sale.
func formaPrincipal(pagamentos []model.PagamentoVenda) string {
	forma := model.PagamentoDinheiro
	maior := decimal.Zero
	for _, p := range pagamentos {
		if p.Valor.GreaterThan(maior) {
			maior = p.Valor
			forma = p.FormaPagamento
		}
	}
	return forma
}

// notificarEstoqueBaixo runs after commit: never blocks or fails the sale.
func (s *vendaService) notificarEstoqueBaixo(ctx context.Context, itens []model.ItemVenda) {
	if s.dispatcher == nil {
		return
	}
	for _, item := range itens {
		p, err := s.produtoRepo.FindByID(ctx, item.ProdutoID)
		if err != nil || p.ControlaNaoEstoque {
			continue
		}
		if p.EstoqueAtual.LessThanOrEqual(p.EstoqueMinimo) {
			payload := worker.AlertaEstoquePayload{
				ProdutoID:     p.ID.String(),
				ProdutoNome:   p.Nome,
				EstoqueAtual:  p.EstoqueAtual.String(),
				EstoqueMinimo: p.EstoqueMinimo.String(),
			}
			if err := s.dispatcher.EnqueueAlertaEstoque(ctx, payload); err != nil {
				log.Warn().Err(err).Str("produto", p.Nome).Msg("falha ao enfileirar alerta de estoque")
			}
		}
	}
}

func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	itens := make([]dto.ItemVendaResponse, 0, len(v.Itens))
	for _, item := range v.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		itens = append(itens, dto.ItemVendaResponse{
			ID:            item.ID,
			ProdutoID:     item.ProdutoID,
			ProdutoNome:   nome,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			Desconto:      item.Desconto,
			ValorTotal:    item.ValorTotal,
		})
	}
	pagamentos := make([]dto.PagamentoVendaResponse, 0, len(v.Pagamentos))
	for _, p := range v.Pagamentos {
		pagamentos = append(pagamentos, dto.PagamentoVendaResponse{
			ID:              p.ID,
			FormaPagamento:  p.FormaPagamento,
			Valor:           p.Valor,
			ValorRecebido:   p.ValorRecebido,
			NumeroDocumento: p.NumeroDocumento,
			DataPagamento:   p.DataPagamento,
		})
	}
	return &dto.VendaResponse{
		ID:          v.ID,
		NumeroVenda: v.NumeroVenda,
		DataVenda:   v.DataVenda,
		Status:      v.Status,
		ClienteID:   v.ClienteID,
		ComandaID:   v.ComandaID,
		VendaBalcao: v.VendaBalcao,
		SubTotal:    v.SubTotal,
		Desconto:    v.Desconto,
		Acrescimo:   v.Acrescimo,
		ValorTotal:  v.ValorTotal,
		ValorPago:   v.ValorPago,
		Troco:       v.Troco,
		Observacoes: v.Observacoes,
		Itens:       itens,
		Pagamentos:  pagamentos,
	}
}
