package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	financeModel "templodigital_backend/internals/features/finances/model"
	memberModel "templodigital_backend/internals/features/members/model"
)

type MemberContribution struct {
	MemberName string              `json:"member_name"`
	Months     [12]decimal.Decimal `json:"months"`
	Total      decimal.Decimal     `json:"total"`
}

type ContributionReport struct {
	Year       int                  `json:"year"`
	Members    []MemberContribution `json:"members"`
	GrandTotal decimal.Decimal      `json:"grand_total"`
}

// IsTitheCategory casa categorias de dízimo e oferta pelo nome,
// ignorando caixa e acento no "í".
func IsTitheCategory(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "dízimo") ||
		strings.Contains(lower, "dizimo") ||
		strings.Contains(lower, "oferta")
}

// BuildContributionReport monta a matriz anual de contribuições por
// membro: soma das entradas de dízimo/oferta em cada mês. memberID nulo
// traz todos os contribuintes do ano e o total geral.
func BuildContributionReport(db *gorm.DB, year int, memberID *uuid.UUID) (*ContributionReport, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var cats []financeModel.CategoryModel
	if err := db.Unscoped().Find(&cats).Error; err != nil {
		return nil, err
	}
	titheCats := map[uuid.UUID]bool{}
	for _, cat := range cats {
		if IsTitheCategory(cat.CategoryName) {
			titheCats[cat.CategoryID] = true
		}
	}

	q := db.Where("income_date >= ? AND income_date < ? AND income_member_id IS NOT NULL", start, end)
	if memberID != nil {
		q = q.Where("income_member_id = ?", *memberID)
	}
	var incomes []financeModel.IncomeModel
	if err := q.Find(&incomes).Error; err != nil {
		return nil, err
	}

	byMember := map[uuid.UUID]*MemberContribution{}
	rep := &ContributionReport{Year: year, GrandTotal: decimal.Zero}
	memberIDs := []uuid.UUID{}
	for _, in := range incomes {
		if !titheCats[in.IncomeCategoryID] || in.IncomeMemberID == nil {
			continue
		}
		mc, ok := byMember[*in.IncomeMemberID]
		if !ok {
			mc = &MemberContribution{Total: decimal.Zero}
			for i := range mc.Months {
				mc.Months[i] = decimal.Zero
			}
			byMember[*in.IncomeMemberID] = mc
			memberIDs = append(memberIDs, *in.IncomeMemberID)
		}
		monthIdx := int(time.Time(in.IncomeDate).Month()) - 1
		mc.Months[monthIdx] = mc.Months[monthIdx].Add(in.IncomeAmount)
		mc.Total = mc.Total.Add(in.IncomeAmount)
		rep.GrandTotal = rep.GrandTotal.Add(in.IncomeAmount)
	}

	if len(memberIDs) > 0 {
		var members []memberModel.MemberModel
		if err := db.Where("member_id IN ?", memberIDs).Find(&members).Error; err != nil {
			return nil, err
		}
		names := make(map[uuid.UUID]string, len(members))
		for _, m := range members {
			names[m.MemberID] = m.MemberName
		}
		for id, mc := range byMember {
			mc.MemberName = names[id]
			rep.Members = append(rep.Members, *mc)
		}
	}
	sort.SliceStable(rep.Members, func(i, j int) bool {
		return rep.Members[i].MemberName < rep.Members[j].MemberName
	})
	return rep, nil
}
