package export

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"templodigital_backend/internals/features/reports/service"
)

func newPDF(b Branding, title, subtitle string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	y := 10.0
	if b.LogoPath != "" {
		// logo ilegível degrada para cabeçalho de texto
		opts := gofpdf.ImageOptions{ReadDpi: true}
		info := pdf.RegisterImageOptions(b.LogoPath, opts)
		if info != nil && pdf.Ok() {
			pdf.ImageOptions(b.LogoPath, 10, y, 25, 0, false, opts, 0, "")
			y += 28
		} else {
			// limpa o erro de imagem para não abortar o documento
			pdf.ClearError()
		}
	}

	pdf.SetY(y)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr(b.ChurchName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, tr(title), "", 1, "C", false, 0, "")
	if subtitle != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
	return pdf, tr
}

func pdfHeaderRow(pdf *gofpdf.Fpdf, tr func(string) string, widths []float64, labels []string) {
	pdf.SetFont("Arial", "B", 9)
	for i, label := range labels {
		pdf.CellFormat(widths[i], 7, tr(label), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
}

// MonthlyMovementPDF gera o livro-caixa do mês.
func MonthlyMovementPDF(b Branding, mov *service.MonthlyMovement) *gofpdf.Fpdf {
	pdf, tr := newPDF(b, "Movimentação Financeira",
		fmt.Sprintf("%02d/%d", mov.Month, mov.Year))

	widths := []float64{25, 70, 40, 25, 30}
	pdfHeaderRow(pdf, tr, widths, []string{"Data", "Descrição", "Categoria", "Tipo", "Valor"})
	for _, line := range mov.Lines {
		pdf.CellFormat(widths[0], 6, FormatDateBR(line.Date), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(line.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(line.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(line.Kind), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, tr(FormatBRL(line.Amount)), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, tr("Total de Entradas: "+FormatBRL(mov.TotalIncome)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Total de Saídas: "+FormatBRL(mov.TotalExpense)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Saldo: "+FormatBRL(mov.Balance)), "", 1, "L", false, 0, "")
	return pdf
}

// DREPDF gera o demonstrativo de resultado do ano.
func DREPDF(b Branding, rep *service.DREReport) *gofpdf.Fpdf {
	pdf, tr := newPDF(b, "Demonstrativo de Resultado do Exercício",
		fmt.Sprintf("Exercício %d", rep.Year))

	section := func(title string, sums []service.CategorySum, totalLabel string, total string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, s := range sums {
			pdf.CellFormat(120, 6, tr(s.Category), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, tr(FormatBRL(s.Total)), "1", 1, "R", false, 0, "")
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(120, 6, tr(totalLabel), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(total), "1", 1, "R", false, 0, "")
		pdf.Ln(4)
	}

	section("Receitas", rep.Revenues, "Total de Receitas", FormatBRL(rep.TotalRevenue))
	section("Despesas", rep.Expenditures, "Total de Despesas", FormatBRL(rep.TotalExpenditure))

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, tr("Resultado Líquido: "+FormatBRL(rep.NetResult)), "", 1, "L", false, 0, "")
	return pdf
}

// BalancePDF gera o balanço patrimonial até a data de corte.
func BalancePDF(b Branding, rep *service.BalanceReport) *gofpdf.Fpdf {
	pdf, tr := newPDF(b, "Balanço Patrimonial", "Posição em "+FormatDateBR(rep.EndDate))

	lines := []struct {
		label string
		value string
	}{
		{"Entradas Acumuladas", FormatBRL(rep.TotalIncome)},
		{"Saídas Acumuladas", FormatBRL(rep.TotalExpense)},
		{"Caixa", FormatBRL(rep.Cash)},
		{"Patrimônio Líquido", FormatBRL(rep.Equity)},
	}
	pdf.SetFont("Arial", "B", 10)
	for _, l := range lines {
		pdf.CellFormat(120, 7, tr(l.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, tr(l.value), "1", 1, "R", false, 0, "")
	}
	return pdf
}

// AttendancePDF gera a lista de presença do dia.
func AttendancePDF(b Branding, rep *service.AttendanceReport) *gofpdf.Fpdf {
	pdf, tr := newPDF(b, "Frequência da Escola Dominical",
		rep.ClassName+" - "+FormatDateBR(rep.Date))

	widths := []float64{80, 60, 40}
	pdfHeaderRow(pdf, tr, widths, []string{"Aluno", "Turma", "Situação"})
	for _, line := range rep.Lines {
		situacao := "Sem registro"
		if line.HasRecord {
			if line.Present {
				situacao = "Presente"
			} else {
				situacao = "Ausente"
			}
		}
		pdf.CellFormat(widths[0], 6, tr(line.MemberName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(line.ClassName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(situacao), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Presentes: %d  Ausentes: %d  Registros: %d",
		rep.TotalPresent, rep.TotalAbsent, rep.TotalRecords)), "", 1, "L", false, 0, "")
	return pdf
}

// RosterPDF gera os alunos agrupados por turma.
func RosterPDF(b Branding, rep *service.StudentRosterReport) *gofpdf.Fpdf {
	pdf, tr := newPDF(b, "Alunos por Turma", "")

	for _, entry := range rep.Classes {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("%s (%d alunos)", entry.ClassName, entry.StudentCount)),
			"", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, name := range entry.Students {
			pdf.CellFormat(0, 6, tr(name), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Total de Alunos: %d", rep.TotalStudents)), "", 1, "L", false, 0, "")
	return pdf
}

// MemberStatsPDF gera as estatísticas do quadro de membros.
func MemberStatsPDF(b Branding, rep *service.MemberStatisticsReport) *gofpdf.Fpdf {
	pdf, tr := newPDF(b, "Estatísticas de Membros", "Gerado em "+FormatDateBR(time.Now()))

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Total de Membros: %d", rep.TotalMembers)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	group := func(title string, counts []service.GroupCount) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, gc := range counts {
			pdf.CellFormat(120, 6, tr(gc.Label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("%d", gc.Count), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	group("Por Situação", rep.ByStatus)
	group("Por Sexo", rep.ByGender)
	group("Por Estado Civil", rep.ByMaritalStatus)
	group("Por Tipo", rep.ByType)
	return pdf
}

// ContributionPDF gera a matriz anual de contribuições por membro.
// Paisagem para caber os doze meses.
func ContributionPDF(b Branding, rep *service.ContributionReport) *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr(b.ChurchName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Contribuições Anuais - Exercício %d", rep.Year)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	nameW, monthW, totalW := 60.0, 16.0, 25.0
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(nameW, 7, tr("Membro"), "1", 0, "L", false, 0, "")
	for _, mn := range monthNames {
		pdf.CellFormat(monthW, 7, mn, "1", 0, "C", false, 0, "")
	}
	pdf.CellFormat(totalW, 7, "Total", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 8)
	for _, mc := range rep.Members {
		pdf.CellFormat(nameW, 6, tr(mc.MemberName), "1", 0, "L", false, 0, "")
		for _, v := range mc.Months {
			pdf.CellFormat(monthW, 6, v.StringFixed(2), "1", 0, "R", false, 0, "")
		}
		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(totalW, 6, tr(FormatBRL(mc.Total)), "1", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 8)
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 7, tr("Total Geral: "+FormatBRL(rep.GrandTotal)), "", 1, "L", false, 0, "")
	return pdf
}
