package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"templodigital_backend/internals/features/reports/service"
)

const sheetName = "Relatório"

var monthNames = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

func newWorkbook(b Branding, title, subtitle string) (*excelize.File, int) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	row := 1
	if b.LogoPath != "" {
		// logo ilegível degrada para cabeçalho de texto
		if err := f.AddPicture(sheetName, "A1", b.LogoPath, nil); err == nil {
			row = 4
		}
	}

	boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellValue(sheetName, cell(0, row), b.ChurchName)
	f.SetCellStyle(sheetName, cell(0, row), cell(0, row), boldStyle)
	row++
	f.SetCellValue(sheetName, cell(0, row), title)
	f.SetCellStyle(sheetName, cell(0, row), cell(0, row), boldStyle)
	row++
	if subtitle != "" {
		f.SetCellValue(sheetName, cell(0, row), subtitle)
		row++
	}
	return f, row + 1
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}

func boldStyle(f *excelize.File) int {
	id, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	return id
}

func currencyStyle(f *excelize.File) int {
	fmtStr := `"R$ "#,##0.00`
	id, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &fmtStr})
	return id
}

func boldCurrencyStyle(f *excelize.File) int {
	fmtStr := `"R$ "#,##0.00`
	id, _ := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &fmtStr,
	})
	return id
}

func setHeaderRow(f *excelize.File, row int, labels ...string) {
	style := boldStyle(f)
	for i, label := range labels {
		f.SetCellValue(sheetName, cell(i, row), label)
		f.SetCellStyle(sheetName, cell(i, row), cell(i, row), style)
	}
}

// MonthlyMovementXLSX gera o livro-caixa do mês.
func MonthlyMovementXLSX(b Branding, mov *service.MonthlyMovement) (*excelize.File, error) {
	f, row := newWorkbook(b, "Movimentação Financeira",
		fmt.Sprintf("%02d/%d", mov.Month, mov.Year))
	curr := currencyStyle(f)
	boldCurr := boldCurrencyStyle(f)

	setHeaderRow(f, row, "Data", "Descrição", "Categoria", "Tipo", "Valor")
	row++
	for _, line := range mov.Lines {
		f.SetCellValue(sheetName, cell(0, row), FormatDateBR(line.Date))
		f.SetCellValue(sheetName, cell(1, row), line.Description)
		f.SetCellValue(sheetName, cell(2, row), line.Category)
		f.SetCellValue(sheetName, cell(3, row), line.Kind)
		f.SetCellValue(sheetName, cell(4, row), line.Amount.InexactFloat64())
		f.SetCellStyle(sheetName, cell(4, row), cell(4, row), curr)
		row++
	}

	row++
	totals := []struct {
		label string
		value float64
	}{
		{"Total de Entradas", mov.TotalIncome.InexactFloat64()},
		{"Total de Saídas", mov.TotalExpense.InexactFloat64()},
		{"Saldo", mov.Balance.InexactFloat64()},
	}
	bold := boldStyle(f)
	for _, t := range totals {
		f.SetCellValue(sheetName, cell(0, row), t.label)
		f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
		f.SetCellValue(sheetName, cell(4, row), t.value)
		f.SetCellStyle(sheetName, cell(4, row), cell(4, row), boldCurr)
		row++
	}
	return f, nil
}

// DREXLSX gera o demonstrativo de resultado do ano.
func DREXLSX(b Branding, rep *service.DREReport) (*excelize.File, error) {
	f, row := newWorkbook(b, "Demonstrativo de Resultado do Exercício",
		fmt.Sprintf("Exercício %d", rep.Year))
	curr := currencyStyle(f)
	boldCurr := boldCurrencyStyle(f)
	bold := boldStyle(f)

	writeSection := func(title string, sums []service.CategorySum, totalLabel string, total float64) {
		f.SetCellValue(sheetName, cell(0, row), title)
		f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
		row++
		for _, s := range sums {
			f.SetCellValue(sheetName, cell(0, row), s.Category)
			f.SetCellValue(sheetName, cell(1, row), s.Total.InexactFloat64())
			f.SetCellStyle(sheetName, cell(1, row), cell(1, row), curr)
			row++
		}
		f.SetCellValue(sheetName, cell(0, row), totalLabel)
		f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
		f.SetCellValue(sheetName, cell(1, row), total)
		f.SetCellStyle(sheetName, cell(1, row), cell(1, row), boldCurr)
		row += 2
	}

	writeSection("Receitas", rep.Revenues, "Total de Receitas", rep.TotalRevenue.InexactFloat64())
	writeSection("Despesas", rep.Expenditures, "Total de Despesas", rep.TotalExpenditure.InexactFloat64())

	f.SetCellValue(sheetName, cell(0, row), "Resultado Líquido")
	f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
	f.SetCellValue(sheetName, cell(1, row), rep.NetResult.InexactFloat64())
	f.SetCellStyle(sheetName, cell(1, row), cell(1, row), boldCurr)
	return f, nil
}

// BalanceXLSX gera o balanço patrimonial até a data de corte.
func BalanceXLSX(b Branding, rep *service.BalanceReport) (*excelize.File, error) {
	f, row := newWorkbook(b, "Balanço Patrimonial",
		"Posição em "+FormatDateBR(rep.EndDate))
	boldCurr := boldCurrencyStyle(f)
	bold := boldStyle(f)

	lines := []struct {
		label string
		value float64
	}{
		{"Entradas Acumuladas", rep.TotalIncome.InexactFloat64()},
		{"Saídas Acumuladas", rep.TotalExpense.InexactFloat64()},
		{"Caixa", rep.Cash.InexactFloat64()},
		{"Patrimônio Líquido", rep.Equity.InexactFloat64()},
	}
	for _, l := range lines {
		f.SetCellValue(sheetName, cell(0, row), l.label)
		f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
		f.SetCellValue(sheetName, cell(1, row), l.value)
		f.SetCellStyle(sheetName, cell(1, row), cell(1, row), boldCurr)
		row++
	}
	return f, nil
}

// AttendanceXLSX gera a lista de presença do dia.
func AttendanceXLSX(b Branding, rep *service.AttendanceReport) (*excelize.File, error) {
	f, row := newWorkbook(b, "Frequência da Escola Dominical",
		rep.ClassName+" - "+FormatDateBR(rep.Date))
	bold := boldStyle(f)

	setHeaderRow(f, row, "Aluno", "Turma", "Situação")
	row++
	for _, line := range rep.Lines {
		situacao := "Sem registro"
		if line.HasRecord {
			if line.Present {
				situacao = "Presente"
			} else {
				situacao = "Ausente"
			}
		}
		f.SetCellValue(sheetName, cell(0, row), line.MemberName)
		f.SetCellValue(sheetName, cell(1, row), line.ClassName)
		f.SetCellValue(sheetName, cell(2, row), situacao)
		row++
	}

	row++
	totals := []struct {
		label string
		value int
	}{
		{"Presentes", rep.TotalPresent},
		{"Ausentes", rep.TotalAbsent},
		{"Registros", rep.TotalRecords},
	}
	for _, t := range totals {
		f.SetCellValue(sheetName, cell(0, row), t.label)
		f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
		f.SetCellValue(sheetName, cell(1, row), t.value)
		row++
	}
	return f, nil
}

// RosterXLSX gera os alunos agrupados por turma.
func RosterXLSX(b Branding, rep *service.StudentRosterReport) (*excelize.File, error) {
	f, row := newWorkbook(b, "Alunos por Turma", "")
	bold := boldStyle(f)

	for _, entry := range rep.Classes {
		f.SetCellValue(sheetName, cell(0, row),
			fmt.Sprintf("%s (%d alunos)", entry.ClassName, entry.StudentCount))
		f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
		row++
		for _, name := range entry.Students {
			f.SetCellValue(sheetName, cell(0, row), name)
			row++
		}
		row++
	}

	f.SetCellValue(sheetName, cell(0, row), "Total de Alunos")
	f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
	f.SetCellValue(sheetName, cell(1, row), rep.TotalStudents)
	return f, nil
}

// MemberStatsXLSX gera as estatísticas do quadro de membros.
func MemberStatsXLSX(b Branding, rep *service.MemberStatisticsReport) (*excelize.File, error) {
	f, row := newWorkbook(b, "Estatísticas de Membros",
		"Gerado em "+FormatDateBR(time.Now()))
	bold := boldStyle(f)

	f.SetCellValue(sheetName, cell(0, row), "Total de Membros")
	f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
	f.SetCellValue(sheetName, cell(1, row), rep.TotalMembers)
	row += 2

	writeGroup := func(title string, counts []service.GroupCount) {
		f.SetCellValue(sheetName, cell(0, row), title)
		f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
		row++
		for _, gc := range counts {
			f.SetCellValue(sheetName, cell(0, row), gc.Label)
			f.SetCellValue(sheetName, cell(1, row), gc.Count)
			row++
		}
		row++
	}

	writeGroup("Por Situação", rep.ByStatus)
	writeGroup("Por Sexo", rep.ByGender)
	writeGroup("Por Estado Civil", rep.ByMaritalStatus)
	writeGroup("Por Tipo", rep.ByType)
	return f, nil
}

// ContributionXLSX gera a matriz anual de contribuições por membro.
func ContributionXLSX(b Branding, rep *service.ContributionReport) (*excelize.File, error) {
	f, row := newWorkbook(b, "Contribuições Anuais",
		fmt.Sprintf("Exercício %d", rep.Year))
	curr := currencyStyle(f)
	boldCurr := boldCurrencyStyle(f)
	bold := boldStyle(f)

	labels := append([]string{"Membro"}, monthNames[:]...)
	labels = append(labels, "Total")
	setHeaderRow(f, row, labels...)
	row++

	for _, mc := range rep.Members {
		f.SetCellValue(sheetName, cell(0, row), mc.MemberName)
		for i, v := range mc.Months {
			f.SetCellValue(sheetName, cell(1+i, row), v.InexactFloat64())
			f.SetCellStyle(sheetName, cell(1+i, row), cell(1+i, row), curr)
		}
		f.SetCellValue(sheetName, cell(13, row), mc.Total.InexactFloat64())
		f.SetCellStyle(sheetName, cell(13, row), cell(13, row), boldCurr)
		row++
	}

	row++
	f.SetCellValue(sheetName, cell(0, row), "Total Geral")
	f.SetCellStyle(sheetName, cell(0, row), cell(0, row), bold)
	f.SetCellValue(sheetName, cell(13, row), rep.GrandTotal.InexactFloat64())
	f.SetCellStyle(sheetName, cell(13, row), cell(13, row), boldCurr)
	return f, nil
}
