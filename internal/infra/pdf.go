package infra

// Closing report PDF for a caixa session, generated with go-pdf/fpdf:
// session header, totals block (abertura, vendas, suprimentos, sangrias,
// saldo teórico, valor contado, diferença) and the full movement ledger.
// The output file is saved to storagePath/fechamento_{caixaID}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
)

// GenerateFechamentoPDF renders the closing report of a caixa session.
// Returns the absolute path to the generated file.
func GenerateFechamentoPDF(rel *dto.RelatorioCaixaResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: criar diretório: %w", err)
	}

	fileName := fmt.Sprintf("fechamento_%s.pdf", rel.Caixa.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Relatório de Fechamento de Caixa", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Abertura: %s", rel.Caixa.DataAbertura.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	if rel.Caixa.DataFechamento != nil {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Fechamento: %s", rel.Caixa.DataFechamento.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// Totals block
	linha := func(label, valor string, negrito bool) {
		estilo := ""
		if negrito {
			estilo = "B"
		}
		pdf.SetFont("Helvetica", estilo, 9)
		pdf.CellFormat(contentW*0.6, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 6, valor, "", 1, "R", false, 0, "")
	}
	linha("Valor de abertura", "R$ "+rel.Caixa.ValorAbertura.StringFixed(2), false)
	linha(fmt.Sprintf("Vendas (%d)", rel.QuantidadeVendas), "R$ "+rel.Caixa.TotalVendas.StringFixed(2), false)
	linha(fmt.Sprintf("Suprimentos (%d)", rel.QuantidadeSuprimentos), "R$ "+rel.Caixa.TotalSuprimentos.StringFixed(2), false)
	linha(fmt.Sprintf("Sangrias (%d)", rel.QuantidadeSangrias), "-R$ "+rel.Caixa.TotalSangrias.StringFixed(2), false)
	linha("Saldo teórico", "R$ "+rel.SaldoTeorico.StringFixed(2), true)
	linha("Valor contado", "R$ "+rel.Caixa.ValorFechamento.StringFixed(2), false)
	if rel.Diferenca != nil {
		linha("Diferença", "R$ "+rel.Diferenca.StringFixed(2), true)
	}
	pdf.Ln(3)

	// Sales by payment method
	if len(rel.VendasPorPagamento) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, "Vendas por forma de pagamento", "", 1, "L", false, 0, "")
		for forma, total := range rel.VendasPorPagamento {
			linha(forma, "R$ "+total.StringFixed(2), false)
		}
		pdf.Ln(3)
	}

	// Movement ledger
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Movimentos", "", 1, "L", false, 0, "")

	col1 := contentW * 0.18
	col2 := contentW * 0.18
	col3 := contentW * 0.44
	col4 := contentW * 0.20

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Hora", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Tipo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "Descrição", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 5, "Valor", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, mov := range rel.Movimentos {
		descricao := mov.Descricao
		if len(descricao) > 48 {
			descricao = descricao[:47] + "…"
		}
		pdf.CellFormat(col1, 5, mov.DataMovimento.Format("02/01 15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, mov.TipoMovimento, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, descricao, "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 5, "R$ "+mov.Valor.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: gravar arquivo: %w", err)
	}
	return filePath, nil
}
