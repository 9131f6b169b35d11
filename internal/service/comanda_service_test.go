package service_test

import (
	"context"
	"strings"
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

type comandaFixture struct {
	comandas *fakeComandaRepo
	produtos *fakeProdutoRepo
	clientes *fakeClienteRepo
	vendas   *fakeVendaRepo
	svc      service.ComandaService
}

func newComandaFixture(t *testing.T) *comandaFixture {
	t.Helper()
	vendas := newFakeVendaRepo()
	f := &comandaFixture{
		comandas: newFakeComandaRepo(vendas),
		produtos: newFakeProdutoRepo(),
		clientes: newFakeClienteRepo(),
		vendas:   vendas,
	}
	f.svc = service.NewComandaService(f.comandas, f.produtos, f.clientes, f.vendas)
	return f
}

func (f *comandaFixture) novoProduto(t *testing.T, nome, preco string) *model.Produto {
	t.Helper()
	p := &model.Produto{
		Nome:       nome,
		Tipo:       model.ProdutoBebida,
		Unidade:    "UN",
		PrecoVenda: decimal.RequireFromString(preco),
		Ativo:      true,
	}
	require.NoError(t, f.produtos.Create(context.Background(), p))
	return p
}

func TestCriarComandaComItens(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	porcao := f.novoProduto(t, "Porção de fritas", "28.00")
	mesa := "12"

	resp, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Mesa: &mesa,
		Itens: []dto.ItemComandaRequest{
			{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("2")},
			{ProdutoID: porcao.ID, Quantidade: decimal.RequireFromString("1")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.ComandaAberta, resp.Status)
	assert.True(t, strings.HasPrefix(resp.NumeroComanda, "CMD"))
	assert.Len(t, resp.Itens, 2)
	// 2×12 + 28 = 52
	assert.True(t, resp.ValorTotal.Equal(decimal.RequireFromString("52.00")))
	assert.True(t, resp.ValorFinal.Equal(decimal.RequireFromString("52.00")))
	assert.Equal(t, "Chopp", resp.Itens[0].ProdutoNome)
}

func TestCriarComandaClienteRestrito(t *testing.T) {
	f := newComandaFixture(t)
	cliente := &model.Cliente{
		Nome:  "Restrito",
		Ativo: true,
		Restricoes: []model.ClienteRestricao{{
			ID:           uuid.New(),
			Motivo:       model.RestricaoFraudeIdentificada,
			Descricao:    "Cartão clonado",
			DataInclusao: time.Now(),
			Ativa:        true,
		}},
	}
	require.NoError(t, f.clientes.Create(context.Background(), cliente))

	_, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{ClienteID: &cliente.ID})
	assert.ErrorContains(t, err, "Cliente possui restrição ativa")
}

func TestAdicionarItemRecalculaTotais(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{})
	require.NoError(t, err)

	resp, err := f.svc.AdicionarItem(context.Background(), comanda.ID, dto.AdicionarItemComandaRequest{
		ProdutoID:  chopp.ID,
		Quantidade: decimal.RequireFromString("3"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Itens, 1)
	assert.True(t, resp.ValorTotal.Equal(decimal.RequireFromString("36.00")))
}

func TestAdicionarItemComandaFechada(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Itens: []dto.ItemComandaRequest{{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("1")}},
	})
	require.NoError(t, err)
	_, err = f.svc.Fechar(context.Background(), comanda.ID)
	require.NoError(t, err)

	_, err = f.svc.AdicionarItem(context.Background(), comanda.ID, dto.AdicionarItemComandaRequest{
		ProdutoID:  chopp.ID,
		Quantidade: decimal.RequireFromString("1"),
	})
	assert.ErrorContains(t, err, "Comanda não está aberta")
}

func TestRemoverItem(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	porcao := f.novoProduto(t, "Porção", "28.00")
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Itens: []dto.ItemComandaRequest{
			{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("1")},
			{ProdutoID: porcao.ID, Quantidade: decimal.RequireFromString("1")},
		},
	})
	require.NoError(t, err)

	resp, err := f.svc.RemoverItem(context.Background(), comanda.ID, comanda.Itens[0].ID)
	require.NoError(t, err)
	assert.Len(t, resp.Itens, 1)
	assert.True(t, resp.ValorTotal.Equal(decimal.RequireFromString("28.00")))
}

func TestRemoverItemEntregue(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Itens: []dto.ItemComandaRequest{{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("1")}},
	})
	require.NoError(t, err)
	itemID := comanda.Itens[0].ID

	require.NoError(t, f.svc.MarcarItemPreparado(context.Background(), comanda.ID, itemID))
	require.NoError(t, f.svc.MarcarItemEntregue(context.Background(), comanda.ID, itemID))

	_, err = f.svc.RemoverItem(context.Background(), comanda.ID, itemID)
	assert.ErrorContains(t, err, "Item já entregue não pode ser removido")
}

func TestCicloPreparoEntrega(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Itens: []dto.ItemComandaRequest{{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("1")}},
	})
	require.NoError(t, err)
	itemID := comanda.Itens[0].ID

	// Entrega antes do preparo é bloqueada.
	err = f.svc.MarcarItemEntregue(context.Background(), comanda.ID, itemID)
	assert.ErrorContains(t, err, "Item ainda não foi preparado")

	require.NoError(t, f.svc.MarcarItemPreparado(context.Background(), comanda.ID, itemID))
	err = f.svc.MarcarItemPreparado(context.Background(), comanda.ID, itemID)
	assert.ErrorContains(t, err, "Item já está preparado")

	require.NoError(t, f.svc.MarcarItemEntregue(context.Background(), comanda.ID, itemID))
	err = f.svc.MarcarItemEntregue(context.Background(), comanda.ID, itemID)
	assert.ErrorContains(t, err, "Item já está entregue")

	atualizada, err := f.svc.GetByID(context.Background(), comanda.ID)
	require.NoError(t, err)
	assert.True(t, atualizada.Itens[0].Preparado)
	assert.True(t, atualizada.Itens[0].Entregue)
}

func TestMarcarItemDeOutraComanda(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	c1, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Itens: []dto.ItemComandaRequest{{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("1")}},
	})
	require.NoError(t, err)
	c2, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{})
	require.NoError(t, err)

	err = f.svc.MarcarItemPreparado(context.Background(), c2.ID, c1.Itens[0].ID)
	assert.ErrorContains(t, err, "Item não pertence à comanda")
}

func TestAplicarDesconto(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Itens: []dto.ItemComandaRequest{{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("5")}},
	})
	require.NoError(t, err)

	resp, err := f.svc.AplicarDesconto(context.Background(), comanda.ID, dto.AplicarDescontoRequest{
		Desconto:  decimal.RequireFromString("10.00"),
		Acrescimo: decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)
	// 60 − 10 + 3 = 53
	assert.True(t, resp.ValorFinal.Equal(decimal.RequireFromString("53.00")))

	_, err = f.svc.AplicarDesconto(context.Background(), comanda.ID, dto.AplicarDescontoRequest{
		Desconto: decimal.RequireFromString("100.00"),
	})
	assert.ErrorContains(t, err, "Desconto maior que o valor da comanda")
}

func TestFecharComandaSemItens(t *testing.T) {
	f := newComandaFixture(t)
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{})
	require.NoError(t, err)

	_, err = f.svc.Fechar(context.Background(), comanda.ID)
	assert.ErrorContains(t, err, "Comanda sem itens não pode ser fechada")
}

func TestFecharComanda(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Itens: []dto.ItemComandaRequest{{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("2")}},
	})
	require.NoError(t, err)

	resp, err := f.svc.Fechar(context.Background(), comanda.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ComandaFechada, resp.Status)
	assert.NotNil(t, resp.DataFechamento)

	_, err = f.svc.Fechar(context.Background(), comanda.ID)
	assert.ErrorContains(t, err, "Comanda não está aberta")
}

func TestCancelarComandaComVendaFinalizada(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Itens: []dto.ItemComandaRequest{{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("1")}},
	})
	require.NoError(t, err)

	comandaID := comanda.ID
	require.NoError(t, f.vendas.Create(context.Background(), nil, &model.Venda{
		NumeroVenda: "VND20260831001",
		ComandaID:   &comandaID,
		DataVenda:   time.Now(),
		Status:      model.VendaFinalizada,
		SubTotal:    decimal.RequireFromString("12.00"),
		ValorTotal:  decimal.RequireFromString("12.00"),
	}))

	err = f.svc.Cancelar(context.Background(), comanda.ID)
	assert.ErrorContains(t, err, "Comanda com venda finalizada não pode ser cancelada")
}

func TestCancelarComanda(t *testing.T) {
	f := newComandaFixture(t)
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{})
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancelar(context.Background(), comanda.ID))

	err = f.svc.Cancelar(context.Background(), comanda.ID)
	assert.ErrorContains(t, err, "Comanda já está cancelada")
}

func TestListAbertas(t *testing.T) {
	f := newComandaFixture(t)
	chopp := f.novoProduto(t, "Chopp", "12.00")
	aberta, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Itens: []dto.ItemComandaRequest{{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("1")}},
	})
	require.NoError(t, err)
	fechada, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{
		Itens: []dto.ItemComandaRequest{{ProdutoID: chopp.ID, Quantidade: decimal.RequireFromString("1")}},
	})
	require.NoError(t, err)
	_, err = f.svc.Fechar(context.Background(), fechada.ID)
	require.NoError(t, err)

	abertas, err := f.svc.ListAbertas(context.Background())
	require.NoError(t, err)
	require.Len(t, abertas, 1)
	assert.Equal(t, aberta.ID, abertas[0].ID)
}

func TestGetByNumero(t *testing.T) {
	f := newComandaFixture(t)
	comanda, err := f.svc.Criar(context.Background(), dto.CriarComandaRequest{})
	require.NoError(t, err)

	resp, err := f.svc.GetByNumero(context.Background(), comanda.NumeroComanda)
	require.NoError(t, err)
	assert.Equal(t, comanda.ID, resp.ID)

	_, err = f.svc.GetByNumero(context.Background(), "CMD999999")
	assert.ErrorContains(t, err, "Comanda não encontrada")
}
