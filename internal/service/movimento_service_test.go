package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/service"
)

func newMovimentoFixture(t *testing.T) (*caixaFixture, service.MovimentoCaixaService) {
	t.Helper()
	f := newCaixaFixture(t)
	return f, service.NewMovimentoCaixaService(f.movs, f.caixas, f.vendas, f.funcionarios)
}

func TestAdicionarMovimentoSemCaixaAberto(t *testing.T) {
	f, svc := newMovimentoFixture(t)

	_, err := svc.Adicionar(context.Background(), dto.MovimentoCaixaRequest{
		TipoMovimento: model.MovimentoSuprimento,
		Valor:         decimal.RequireFromString("10.00"),
		Descricao:     "Troco inicial",
		OperadorID:    f.operador.ID,
	})
	assert.ErrorContains(t, err, "Nenhum caixa aberto")
}

func TestAdicionarMovimentoVendaExigeVendaID(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	f.abrir(t, "100.00")
	forma := model.PagamentoDinheiro

	_, err := svc.Adicionar(context.Background(), dto.MovimentoCaixaRequest{
		TipoMovimento:  model.MovimentoVenda,
		Valor:          decimal.RequireFromString("10.00"),
		Descricao:      "Venda avulsa",
		FormaPagamento: &forma,
		OperadorID:     f.operador.ID,
	})
	assert.ErrorContains(t, err, "venda_id")
}

// novaVendaFinalizada seeds a finalized sale so movement tests can reference a
// resolvable venda_id.
func (f *caixaFixture) novaVendaFinalizada(t *testing.T, valor string) *model.Venda {
	t.Helper()
	venda := &model.Venda{
		NumeroVenda: fmt.Sprintf("VND20240101%03d", len(f.vendas.vendas)+1),
		DataVenda:   time.Now(),
		Status:      model.VendaFinalizada,
		SubTotal:    decimal.RequireFromString(valor),
		ValorTotal:  decimal.RequireFromString(valor),
	}
	require.NoError(t, f.vendas.Create(context.Background(), nil, venda))
	return venda
}

func TestAdicionarMovimentoVendaExigeFormaPagamento(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	f.abrir(t, "100.00")
	venda := f.novaVendaFinalizada(t, "10.00")

	_, err := svc.Adicionar(context.Background(), dto.MovimentoCaixaRequest{
		TipoMovimento: model.MovimentoVenda,
		Valor:         decimal.RequireFromString("10.00"),
		Descricao:     "Venda avulsa",
		VendaID:       &venda.ID,
		OperadorID:    f.operador.ID,
	})
	assert.ErrorContains(t, err, "forma_pagamento")
}

func TestAdicionarMovimentoOperadorInexistente(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	f.abrir(t, "100.00")

	_, err := svc.Adicionar(context.Background(), dto.MovimentoCaixaRequest{
		TipoMovimento: model.MovimentoSuprimento,
		Valor:         decimal.RequireFromString("10.00"),
		Descricao:     "Troco",
		OperadorID:    uuid.New(),
	})
	assert.ErrorContains(t, err, "Operador não encontrado")
}

func TestAdicionarMovimentoVendaInexistente(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	f.abrir(t, "100.00")
	vendaID := uuid.New()
	forma := model.PagamentoPix

	_, err := svc.Adicionar(context.Background(), dto.MovimentoCaixaRequest{
		TipoMovimento:  model.MovimentoVenda,
		Valor:          decimal.RequireFromString("10.00"),
		Descricao:      "Venda avulsa",
		FormaPagamento: &forma,
		VendaID:        &vendaID,
		OperadorID:     f.operador.ID,
	})
	assert.ErrorContains(t, err, "Venda não encontrada")
}

func TestAdicionarMovimentoVendaDuplicada(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	f.abrir(t, "100.00")
	venda := f.novaVendaFinalizada(t, "35.00")
	forma := model.PagamentoPix

	req := dto.MovimentoCaixaRequest{
		TipoMovimento:  model.MovimentoVenda,
		Valor:          decimal.RequireFromString("35.00"),
		Descricao:      "Venda VND001",
		FormaPagamento: &forma,
		VendaID:        &venda.ID,
		OperadorID:     f.operador.ID,
	}
	_, err := svc.Adicionar(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Adicionar(context.Background(), req)
	assert.ErrorContains(t, err, "Venda já registrada neste caixa")
}

func TestSangriaAtualizaTotais(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	aberto := f.abrir(t, "200.00")

	resp, err := svc.RegistrarSangria(context.Background(), dto.SangriaRequest{
		Valor:      decimal.RequireFromString("50.00"),
		Descricao:  "Depósito no cofre",
		OperadorID: f.operador.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.MovimentoSangria, resp.TipoMovimento)
	assert.Equal(t, aberto.ID, resp.CaixaID)

	caixa, err := f.caixas.FindByID(context.Background(), aberto.ID)
	require.NoError(t, err)
	assert.True(t, caixa.TotalSangrias.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, caixa.SaldoTeorico().Equal(decimal.RequireFromString("150.00")))
}

func TestSuprimentoAtualizaTotais(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	aberto := f.abrir(t, "100.00")

	_, err := svc.RegistrarSuprimento(context.Background(), dto.SuprimentoRequest{
		Valor:      decimal.RequireFromString("30.00"),
		Descricao:  "Reforço de troco",
		OperadorID: f.operador.ID,
	})
	require.NoError(t, err)

	caixa, err := f.caixas.FindByID(context.Background(), aberto.ID)
	require.NoError(t, err)
	assert.True(t, caixa.TotalSuprimentos.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, caixa.SaldoTeorico().Equal(decimal.RequireFromString("130.00")))
}

func TestTotalPorTipo(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	aberto := f.abrir(t, "100.00")
	f.registrarMovimento(t, aberto.ID, model.MovimentoSangria, "10.00")
	f.registrarMovimento(t, aberto.ID, model.MovimentoSangria, "15.00")

	total, err := svc.TotalPorTipo(context.Background(), aberto.ID, model.MovimentoSangria)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("25.00")))
}

func TestListByCaixaETipo(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	aberto := f.abrir(t, "100.00")
	f.registrarMovimento(t, aberto.ID, model.MovimentoSuprimento, "5.00")

	movs, err := svc.ListByCaixaETipo(context.Background(), aberto.ID, model.MovimentoSuprimento)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovimentoSuprimento, movs[0].TipoMovimento)

	todos, err := svc.ListByCaixa(context.Background(), aberto.ID)
	require.NoError(t, err)
	assert.Len(t, todos, 2) // abertura + suprimento
}

func TestListByPeriodo(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	aberto := f.abrir(t, "100.00")
	f.registrarMovimento(t, aberto.ID, model.MovimentoSangria, "30.00")

	agora := time.Now()
	movs, err := svc.ListByPeriodo(context.Background(), agora.Add(-time.Hour), agora.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, movs, 2) // abertura + sangria

	vazio, err := svc.ListByPeriodo(context.Background(), agora.Add(time.Hour), agora.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, vazio)

	_, err = svc.ListByPeriodo(context.Background(), agora, agora.Add(-time.Hour))
	assert.ErrorContains(t, err, "Data final anterior à data inicial")
}

func TestGetMovimentoPorID(t *testing.T) {
	f, svc := newMovimentoFixture(t)
	aberto := f.abrir(t, "50.00")

	criado, err := svc.RegistrarSuprimento(context.Background(), dto.SuprimentoRequest{
		Valor:      decimal.RequireFromString("5.00"),
		Descricao:  "Troco",
		OperadorID: f.operador.ID,
	})
	require.NoError(t, err)

	resp, err := svc.GetByID(context.Background(), criado.ID)
	require.NoError(t, err)
	assert.Equal(t, aberto.ID, resp.CaixaID)
	assert.Equal(t, model.MovimentoSuprimento, resp.TipoMovimento)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "Movimento não encontrado")
}
