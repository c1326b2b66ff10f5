package infra

// pdf.go — PDF receipt generation using go-pdf/fpdf.
// Renders an A7-size receipt for a single venda: store header, nota fiscal
// number and date, cliente, one product line and the bold total.
// The output file is saved to storagePath/recibo_{venda_id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"loja/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateReciboPDF renders the receipt for a committed venda.
// Returns the absolute path to the generated file.
func GenerateReciboPDF(venda *model.Venda, storagePath, nomeLoja string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", venda.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, nomeLoja, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de Compra", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Venda info ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Nota Fiscal %s", venda.NumeroNotaFiscal), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venda.DataVenda.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	if venda.Cliente != nil {
		pdf.CellFormat(contentW, 4, "Cliente: "+venda.Cliente.Nome, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Produto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qtd", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	nome := ""
	if venda.Produto != nil {
		nome = venda.Produto.Nome
	}
	// Truncate long names
	if len(nome) > 22 {
		nome = nome[:21] + "…"
	}
	total := venda.PrecoUnitario.Mul(decimal.NewFromInt(int64(venda.QuantidadeVendida)))

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1, 5, nome, "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", venda.QuantidadeVendida), "", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "R$"+total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, fmt.Sprintf("Preço unitário: R$%s", venda.PrecoUnitario.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "R$"+total.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Obrigado pela sua compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
