package database

import (
	"log"

	churchModel "templodigital_backend/internals/features/churches/model"
	eventModel "templodigital_backend/internals/features/events/model"
	financeModel "templodigital_backend/internals/features/finances/model"
	memberModel "templodigital_backend/internals/features/members/model"
	reportModel "templodigital_backend/internals/features/reports/model"
	schoolModel "templodigital_backend/internals/features/school/model"
	userModel "templodigital_backend/internals/features/users/model"
)

// AllModels lista todo o esquema na ordem de dependência.
func AllModels() []interface{} {
	return []interface{}{
		&userModel.UserModel{},
		&churchModel.ChurchModel{},
		&churchModel.ChurchConfigurationModel{},
		&memberModel.MemberModel{},
		&financeModel.CategoryModel{},
		&financeModel.IncomeModel{},
		&financeModel.ExpenseModel{},
		&eventModel.EventModel{},
		&schoolModel.SchoolClassModel{},
		&schoolModel.StudentModel{},
		&schoolModel.AttendanceModel{},
		&reportModel.AccountabilityReportModel{},
		&reportModel.AccountabilityDocumentModel{},
	}
}

// AutoMigrate aplica o esquema. Ligado por DB_AUTO_MIGRATE=true;
// em produção o esquema é versionado fora da aplicação.
func AutoMigrate() {
	log.Println("🧱 Aplicando esquema (AutoMigrate)...")
	if err := DB.AutoMigrate(AllModels()...); err != nil {
		log.Fatalf("❌ Falha na migração: %v", err)
	}
	log.Println("✅ Esquema aplicado.")
}
