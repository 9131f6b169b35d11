package service_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/repository"
)

var errNotFound = errors.New("not found")

// ── Caixa ─────────────────────────────────────────────────────────────────────

// fakeCaixaRepo keeps sessions in memory and recomputes totals from the
// movement fake, mirroring what the SQL AtualizarTotais does.
type fakeCaixaRepo struct {
	caixas     map[uuid.UUID]*model.Caixa
	movimentos *fakeMovimentoRepo
}

func newFakeCaixaRepo(movs *fakeMovimentoRepo) *fakeCaixaRepo {
	return &fakeCaixaRepo{caixas: map[uuid.UUID]*model.Caixa{}, movimentos: movs}
}

func (r *fakeCaixaRepo) Create(_ context.Context, c *model.Caixa) error {
	for _, existente := range r.caixas {
		if existente.Status == model.CaixaAberto {
			return gorm.ErrDuplicatedKey
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.caixas[c.ID] = c
	return nil
}

func (r *fakeCaixaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Caixa, error) {
	c, ok := r.caixas[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *fakeCaixaRepo) FindAberto(_ context.Context) (*model.Caixa, error) {
	for _, c := range r.caixas {
		if c.Status == model.CaixaAberto {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeCaixaRepo) TemCaixaAberto(ctx context.Context) (bool, error) {
	_, err := r.FindAberto(ctx)
	return err == nil, nil
}

func (r *fakeCaixaRepo) Update(_ context.Context, _ *gorm.DB, c *model.Caixa) error {
	r.caixas[c.ID] = c
	return nil
}

func (r *fakeCaixaRepo) List(_ context.Context, limit, offset int) ([]model.Caixa, int64, error) {
	all := make([]model.Caixa, 0, len(r.caixas))
	for _, c := range r.caixas {
		all = append(all, *c)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeCaixaRepo) AtualizarTotais(ctx context.Context, _ *gorm.DB, caixaID uuid.UUID) error {
	c, ok := r.caixas[caixaID]
	if !ok {
		return errNotFound
	}
	vendas, _ := r.movimentos.TotalPorTipo(ctx, nil, caixaID, model.MovimentoVenda)
	sangrias, _ := r.movimentos.TotalPorTipo(ctx, nil, caixaID, model.MovimentoSangria)
	suprimentos, _ := r.movimentos.TotalPorTipo(ctx, nil, caixaID, model.MovimentoSuprimento)
	c.TotalVendas = vendas
	c.TotalSangrias = sangrias
	c.TotalSuprimentos = suprimentos
	return nil
}

func (r *fakeCaixaRepo) DB() *gorm.DB { return nil }

var _ repository.CaixaRepository = (*fakeCaixaRepo)(nil)

// ── MovimentoCaixa ────────────────────────────────────────────────────────────

type fakeMovimentoRepo struct {
	movimentos []model.MovimentoCaixa
}

func newFakeMovimentoRepo() *fakeMovimentoRepo { return &fakeMovimentoRepo{} }

func (r *fakeMovimentoRepo) Create(_ context.Context, _ *gorm.DB, m *model.MovimentoCaixa) error {
	// Mirrors the partial unique index on (caixa_id, venda_id) for venda rows.
	if m.TipoMovimento == model.MovimentoVenda && m.VendaID != nil {
		for _, existente := range r.movimentos {
			if existente.TipoMovimento == model.MovimentoVenda &&
				existente.CaixaID == m.CaixaID &&
				existente.VendaID != nil && *existente.VendaID == *m.VendaID {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimentos = append(r.movimentos, *m)
	return nil
}

func (r *fakeMovimentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MovimentoCaixa, error) {
	for i := range r.movimentos {
		if r.movimentos[i].ID == id {
			return &r.movimentos[i], nil
		}
	}
	return nil, errNotFound
}

func (r *fakeMovimentoRepo) ListByCaixa(_ context.Context, caixaID uuid.UUID) ([]model.MovimentoCaixa, error) {
	var out []model.MovimentoCaixa
	for _, m := range r.movimentos {
		if m.CaixaID == caixaID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovimentoRepo) ListByCaixaETipo(_ context.Context, caixaID uuid.UUID, tipo string) ([]model.MovimentoCaixa, error) {
	var out []model.MovimentoCaixa
	for _, m := range r.movimentos {
		if m.CaixaID == caixaID && m.TipoMovimento == tipo {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovimentoRepo) ListPorPeriodo(_ context.Context, inicio, fim time.Time) ([]model.MovimentoCaixa, error) {
	var out []model.MovimentoCaixa
	for _, m := range r.movimentos {
		if !m.DataMovimento.Before(inicio) && !m.DataMovimento.After(fim) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovimentoRepo) TotalPorTipo(_ context.Context, _ *gorm.DB, caixaID uuid.UUID, tipo string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movimentos {
		if m.CaixaID == caixaID && m.TipoMovimento == tipo {
			total = total.Add(m.Valor)
		}
	}
	return total, nil
}

func (r *fakeMovimentoRepo) ExisteMovimentoVenda(_ context.Context, caixaID, vendaID uuid.UUID) (bool, error) {
	for _, m := range r.movimentos {
		if m.TipoMovimento == model.MovimentoVenda && m.CaixaID == caixaID &&
			m.VendaID != nil && *m.VendaID == vendaID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMovimentoRepo) SumVendasPorFormaPagamento(_ context.Context, caixaID uuid.UUID) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, m := range r.movimentos {
		if m.TipoMovimento == model.MovimentoVenda && m.CaixaID == caixaID && m.FormaPagamento != nil {
			out[*m.FormaPagamento] = out[*m.FormaPagamento].Add(m.Valor)
		}
	}
	return out, nil
}

var _ repository.MovimentoCaixaRepository = (*fakeMovimentoRepo)(nil)

// ── Venda ─────────────────────────────────────────────────────────────────────

type fakeVendaRepo struct {
	vendas map[uuid.UUID]*model.Venda
	seq    int
}

func newFakeVendaRepo() *fakeVendaRepo {
	return &fakeVendaRepo{vendas: map[uuid.UUID]*model.Venda{}}
}

func (r *fakeVendaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venda) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Itens {
		if v.Itens[i].ID == uuid.Nil {
			v.Itens[i].ID = uuid.New()
		}
		v.Itens[i].VendaID = v.ID
	}
	for i := range v.Pagamentos {
		if v.Pagamentos[i].ID == uuid.Nil {
			v.Pagamentos[i].ID = uuid.New()
		}
		v.Pagamentos[i].VendaID = v.ID
	}
	r.vendas[v.ID] = v
	return nil
}

func (r *fakeVendaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, errNotFound
	}
	return v, nil
}

func (r *fakeVendaRepo) FindByNumero(_ context.Context, numero string) (*model.Venda, error) {
	for _, v := range r.vendas {
		if v.NumeroVenda == numero {
			return v, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeVendaRepo) Update(_ context.Context, _ *gorm.DB, v *model.Venda) error {
	r.vendas[v.ID] = v
	return nil
}

func (r *fakeVendaRepo) UpdateStatus(_ context.Context, _ *gorm.DB, id uuid.UUID, status string) error {
	v, ok := r.vendas[id]
	if !ok {
		return errNotFound
	}
	v.Status = status
	return nil
}

func (r *fakeVendaRepo) ExisteVendaFinalizadaParaComanda(_ context.Context, comandaID uuid.UUID) (bool, error) {
	for _, v := range r.vendas {
		if v.Status == model.VendaFinalizada && v.ComandaID != nil && *v.ComandaID == comandaID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVendaRepo) FindFinalizadaPorComanda(_ context.Context, comandaID uuid.UUID) (*model.Venda, error) {
	for _, v := range r.vendas {
		if v.Status == model.VendaFinalizada && v.ComandaID != nil && *v.ComandaID == comandaID {
			return v, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeVendaRepo) NextNumero(_ context.Context, _ *gorm.DB, dia time.Time) (string, error) {
	r.seq++
	return fmt.Sprintf("VND%s%03d", dia.Format("20060102"), r.seq), nil
}

func (r *fakeVendaRepo) ListPorPeriodo(_ context.Context, inicio, fim time.Time) ([]model.Venda, error) {
	var out []model.Venda
	for _, v := range r.vendas {
		if !v.DataVenda.Before(inicio) && !v.DataVenda.After(fim) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVendaRepo) DB() *gorm.DB { return nil }

var _ repository.VendaRepository = (*fakeVendaRepo)(nil)

// ── Comanda ───────────────────────────────────────────────────────────────────

type fakeComandaRepo struct {
	comandas map[uuid.UUID]*model.Comanda
	vendas   *fakeVendaRepo
	seq      int
}

func newFakeComandaRepo(vendas *fakeVendaRepo) *fakeComandaRepo {
	return &fakeComandaRepo{comandas: map[uuid.UUID]*model.Comanda{}, vendas: vendas}
}

func (r *fakeComandaRepo) Create(_ context.Context, c *model.Comanda) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for i := range c.Itens {
		if c.Itens[i].ID == uuid.Nil {
			c.Itens[i].ID = uuid.New()
		}
		c.Itens[i].ComandaID = c.ID
	}
	r.comandas[c.ID] = c
	return nil
}

func (r *fakeComandaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Comanda, error) {
	c, ok := r.comandas[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *fakeComandaRepo) FindByIDComItens(ctx context.Context, id uuid.UUID) (*model.Comanda, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeComandaRepo) FindByNumero(_ context.Context, numero string) (*model.Comanda, error) {
	for _, c := range r.comandas {
		if c.NumeroComanda == numero {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeComandaRepo) Update(_ context.Context, _ *gorm.DB, c *model.Comanda) error {
	r.comandas[c.ID] = c
	return nil
}

func (r *fakeComandaRepo) UpdateStatus(_ context.Context, _ *gorm.DB, id uuid.UUID, status string) error {
	c, ok := r.comandas[id]
	if !ok {
		return errNotFound
	}
	c.Status = status
	return nil
}

func (r *fakeComandaRepo) ListAbertas(_ context.Context) ([]model.Comanda, error) {
	var out []model.Comanda
	for _, c := range r.comandas {
		if c.Status == model.ComandaAberta {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeComandaRepo) ListPendentesPagamento(ctx context.Context) ([]model.Comanda, error) {
	var out []model.Comanda
	for _, c := range r.comandas {
		if c.Status != model.ComandaFechada {
			continue
		}
		paga, _ := r.vendas.ExisteVendaFinalizadaParaComanda(ctx, c.ID)
		if !paga {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeComandaRepo) CreateItem(_ context.Context, item *model.ItemComanda) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return nil
}

func (r *fakeComandaRepo) FindItem(_ context.Context, itemID uuid.UUID) (*model.ItemComanda, error) {
	for _, c := range r.comandas {
		for i := range c.Itens {
			if c.Itens[i].ID == itemID {
				copia := c.Itens[i]
				return &copia, nil
			}
		}
	}
	return nil, errNotFound
}

func (r *fakeComandaRepo) UpdateItem(_ context.Context, item *model.ItemComanda) error {
	for _, c := range r.comandas {
		for i := range c.Itens {
			if c.Itens[i].ID == item.ID {
				c.Itens[i] = *item
				return nil
			}
		}
	}
	return errNotFound
}

// DeleteItem only checks the row exists. The service edits the Itens slice of
// the comanda it loaded, and since FindByIDComItens hands out the stored
// pointer that edit is already visible here; mutating the slice again would
// drop a second item.
func (r *fakeComandaRepo) DeleteItem(_ context.Context, itemID uuid.UUID) error {
	for _, c := range r.comandas {
		for i := range c.Itens {
			if c.Itens[i].ID == itemID {
				return nil
			}
		}
	}
	return nil
}

func (r *fakeComandaRepo) NextNumero(_ context.Context) (string, error) {
	r.seq++
	return fmt.Sprintf("CMD%06d", r.seq), nil
}

var _ repository.ComandaRepository = (*fakeComandaRepo)(nil)

// ── Produto ───────────────────────────────────────────────────────────────────

type fakeProdutoRepo struct {
	produtos   map[uuid.UUID]*model.Produto
	movimentos []model.MovimentoEstoque
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: map[uuid.UUID]*model.Produto{}}
}

func (r *fakeProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *fakeProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *fakeProdutoRepo) FindByCodigoBarras(_ context.Context, codigo string) (*model.Produto, error) {
	for _, p := range r.produtos {
		if p.CodigoBarras != nil && *p.CodigoBarras == codigo {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *fakeProdutoRepo) List(_ context.Context, tipo string, apenasAtivos bool) ([]model.Produto, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if tipo != "" && p.Tipo != tipo {
			continue
		}
		if apenasAtivos && !p.Ativo {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProdutoRepo) ListEstoqueBaixo(_ context.Context) ([]model.Produto, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if p.Ativo && !p.ControlaNaoEstoque && p.EstoqueAtual.LessThanOrEqual(p.EstoqueMinimo) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProdutoRepo) DescontarEstoque(_ context.Context, _ *gorm.DB, produtoID uuid.UUID, qtd decimal.Decimal) (bool, error) {
	p, ok := r.produtos[produtoID]
	if !ok {
		return false, errNotFound
	}
	if p.ControlaNaoEstoque {
		return true, nil
	}
	if p.EstoqueAtual.LessThan(qtd) {
		return false, nil
	}
	p.EstoqueAtual = p.EstoqueAtual.Sub(qtd)
	return true, nil
}

func (r *fakeProdutoRepo) ReporEstoque(_ context.Context, _ *gorm.DB, produtoID uuid.UUID, qtd decimal.Decimal) error {
	p, ok := r.produtos[produtoID]
	if !ok {
		return errNotFound
	}
	if !p.ControlaNaoEstoque {
		p.EstoqueAtual = p.EstoqueAtual.Add(qtd)
	}
	return nil
}

func (r *fakeProdutoRepo) CreateMovimentoEstoque(_ context.Context, _ *gorm.DB, m *model.MovimentoEstoque) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimentos = append(r.movimentos, *m)
	return nil
}

func (r *fakeProdutoRepo) ListMovimentosEstoque(_ context.Context, produtoID uuid.UUID) ([]model.MovimentoEstoque, error) {
	var out []model.MovimentoEstoque
	for _, m := range r.movimentos {
		if m.ProdutoID == produtoID {
			out = append(out, m)
		}
	}
	return out, nil
}

var _ repository.ProdutoRepository = (*fakeProdutoRepo)(nil)

// ── Cliente ───────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: map[uuid.UUID]*model.Cliente{}}
}

func (r *fakeClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *fakeClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *fakeClienteRepo) FindByCpfCnpj(_ context.Context, cpfCnpj string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.CpfCnpj != nil && *c.CpfCnpj == cpfCnpj {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *fakeClienteRepo) List(_ context.Context, apenasAtivos bool) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if apenasAtivos && !c.Ativo {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeClienteRepo) ListComRestricaoAtiva(_ context.Context) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if c.TemRestricaoAtiva() {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeClienteRepo) CreateRestricao(_ context.Context, restricao *model.ClienteRestricao) error {
	c, ok := r.clientes[restricao.ClienteID]
	if !ok {
		return errNotFound
	}
	if restricao.ID == uuid.Nil {
		restricao.ID = uuid.New()
	}
	c.Restricoes = append(c.Restricoes, *restricao)
	return nil
}

func (r *fakeClienteRepo) FindRestricao(_ context.Context, id uuid.UUID) (*model.ClienteRestricao, error) {
	for _, c := range r.clientes {
		for i := range c.Restricoes {
			if c.Restricoes[i].ID == id {
				copia := c.Restricoes[i]
				return &copia, nil
			}
		}
	}
	return nil, errNotFound
}

func (r *fakeClienteRepo) UpdateRestricao(_ context.Context, restricao *model.ClienteRestricao) error {
	for _, c := range r.clientes {
		for i := range c.Restricoes {
			if c.Restricoes[i].ID == restricao.ID {
				c.Restricoes[i] = *restricao
				return nil
			}
		}
	}
	return errNotFound
}

var _ repository.ClienteRepository = (*fakeClienteRepo)(nil)

// ── Funcionario ───────────────────────────────────────────────────────────────

type fakeFuncionarioRepo struct {
	funcionarios map[uuid.UUID]*model.Funcionario
}

func newFakeFuncionarioRepo() *fakeFuncionarioRepo {
	return &fakeFuncionarioRepo{funcionarios: map[uuid.UUID]*model.Funcionario{}}
}

func (r *fakeFuncionarioRepo) Create(_ context.Context, f *model.Funcionario) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	for _, existente := range r.funcionarios {
		if existente.Cpf == f.Cpf {
			return gorm.ErrDuplicatedKey
		}
	}
	r.funcionarios[f.ID] = f
	return nil
}

func (r *fakeFuncionarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Funcionario, error) {
	f, ok := r.funcionarios[id]
	if !ok {
		return nil, errNotFound
	}
	return f, nil
}

func (r *fakeFuncionarioRepo) FindByEmail(_ context.Context, email string) (*model.Funcionario, error) {
	for _, f := range r.funcionarios {
		if f.Email != nil && *f.Email == email {
			return f, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeFuncionarioRepo) FindByCpf(_ context.Context, cpf string) (*model.Funcionario, error) {
	for _, f := range r.funcionarios {
		if f.Cpf == cpf {
			return f, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeFuncionarioRepo) Update(_ context.Context, f *model.Funcionario) error {
	r.funcionarios[f.ID] = f
	return nil
}

func (r *fakeFuncionarioRepo) List(_ context.Context, apenasAtivos bool) ([]model.Funcionario, error) {
	var out []model.Funcionario
	for _, f := range r.funcionarios {
		if apenasAtivos && !f.Ativo {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

var _ repository.FuncionarioRepository = (*fakeFuncionarioRepo)(nil)

// ── Escala ────────────────────────────────────────────────────────────────────

type fakeEscalaRepo struct {
	escalas map[uuid.UUID]*model.EscalaTrabalho
}

func newFakeEscalaRepo() *fakeEscalaRepo {
	return &fakeEscalaRepo{escalas: map[uuid.UUID]*model.EscalaTrabalho{}}
}

func (r *fakeEscalaRepo) Create(_ context.Context, e *model.EscalaTrabalho) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.escalas[e.ID] = e
	return nil
}

func (r *fakeEscalaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.EscalaTrabalho, error) {
	e, ok := r.escalas[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *fakeEscalaRepo) Update(_ context.Context, e *model.EscalaTrabalho) error {
	r.escalas[e.ID] = e
	return nil
}

func (r *fakeEscalaRepo) ListPorFuncionario(_ context.Context, funcionarioID uuid.UUID, inicio, fim time.Time) ([]model.EscalaTrabalho, error) {
	var out []model.EscalaTrabalho
	for _, e := range r.escalas {
		if e.FuncionarioID == funcionarioID && !e.DataEscala.Before(inicio) && !e.DataEscala.After(fim) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEscalaRepo) ListPorData(_ context.Context, dia time.Time) ([]model.EscalaTrabalho, error) {
	var out []model.EscalaTrabalho
	for _, e := range r.escalas {
		if mesmoDia(e.DataEscala, dia) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEscalaRepo) ExisteConflito(_ context.Context, funcionarioID uuid.UUID, dia time.Time, horaInicio, horaFim string, ignorarID *uuid.UUID) (bool, error) {
	for _, e := range r.escalas {
		if ignorarID != nil && e.ID == *ignorarID {
			continue
		}
		if !e.Ativo || e.FuncionarioID != funcionarioID || !mesmoDia(e.DataEscala, dia) {
			continue
		}
		if e.HoraInicio < horaFim && e.HoraFim > horaInicio {
			return true, nil
		}
	}
	return false, nil
}

func mesmoDia(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

var _ repository.EscalaRepository = (*fakeEscalaRepo)(nil)
