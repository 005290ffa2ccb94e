package service

import (
	"sort"
	"time"

	"gorm.io/gorm"

	memberModel "templodigital_backend/internals/features/members/model"
)

type GroupCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type MemberStatisticsReport struct {
	TotalMembers    int          `json:"total_members"`
	ByStatus        []GroupCount `json:"by_status"`
	ByGender        []GroupCount `json:"by_gender"`
	ByMaritalStatus []GroupCount `json:"by_marital_status"`
	ByType          []GroupCount `json:"by_type"`
}

// BuildMemberStatistics conta o quadro de membros por status, sexo,
// estado civil e tipo, em ordem decrescente de contagem.
func BuildMemberStatistics(db *gorm.DB) (*MemberStatisticsReport, error) {
	var members []memberModel.MemberModel
	if err := db.Find(&members).Error; err != nil {
		return nil, err
	}

	byStatus := map[string]int{}
	byGender := map[string]int{}
	byMarital := map[string]int{}
	byType := map[string]int{}
	for _, m := range members {
		byStatus[labelOr(m.MemberStatus)]++
		byGender[labelOrPtr(m.MemberGender)]++
		byMarital[labelOrPtr(m.MemberMaritalStatus)]++
		byType[labelOr(m.MemberType)]++
	}

	return &MemberStatisticsReport{
		TotalMembers:    len(members),
		ByStatus:        sortedCounts(byStatus),
		ByGender:        sortedCounts(byGender),
		ByMaritalStatus: sortedCounts(byMarital),
		ByType:          sortedCounts(byType),
	}, nil
}

type BirthdayLine struct {
	MemberName string    `json:"member_name"`
	BirthDate  time.Time `json:"birth_date"`
	Day        int       `json:"day"`
}

type BirthdayReport struct {
	Month int            `json:"month"`
	Lines []BirthdayLine `json:"lines"`
}

// BuildBirthdayReport lista aniversariantes do mês em ordem de dia.
func BuildBirthdayReport(db *gorm.DB, month int) (*BirthdayReport, error) {
	var members []memberModel.MemberModel
	if err := db.Where("member_birth_date IS NOT NULL").Find(&members).Error; err != nil {
		return nil, err
	}

	rep := &BirthdayReport{Month: month}
	for _, m := range members {
		if m.MemberBirthDate == nil {
			continue
		}
		birth := time.Time(*m.MemberBirthDate)
		if int(birth.Month()) != month {
			continue
		}
		rep.Lines = append(rep.Lines, BirthdayLine{
			MemberName: m.MemberName,
			BirthDate:  birth,
			Day:        birth.Day(),
		})
	}
	sort.SliceStable(rep.Lines, func(i, j int) bool {
		if rep.Lines[i].Day == rep.Lines[j].Day {
			return rep.Lines[i].MemberName < rep.Lines[j].MemberName
		}
		return rep.Lines[i].Day < rep.Lines[j].Day
	})
	return rep, nil
}

func labelOr(s string) string {
	if s == "" {
		return "Não informado"
	}
	return s
}

func labelOrPtr(s *string) string {
	if s == nil || *s == "" {
		return "Não informado"
	}
	return *s
}

func sortedCounts(byLabel map[string]int) []GroupCount {
	counts := make([]GroupCount, 0, len(byLabel))
	for label, n := range byLabel {
		counts = append(counts, GroupCount{Label: label, Count: n})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count == counts[j].Count {
			return counts[i].Label < counts[j].Label
		}
		return counts[i].Count > counts[j].Count
	})
	return counts
}
