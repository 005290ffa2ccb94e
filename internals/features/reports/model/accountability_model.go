package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Prestação de contas mensal: uma por (mês, ano).
type AccountabilityReportModel struct {
	AccountabilityID     uuid.UUID       `gorm:"type:uuid;primaryKey;column:accountability_id" json:"accountability_id"`
	AccountabilityMonth  int             `gorm:"not null;uniqueIndex:uq_accountability_month_year;column:accountability_month" json:"accountability_month"`
	AccountabilityYear   int             `gorm:"not null;uniqueIndex:uq_accountability_month_year;column:accountability_year" json:"accountability_year"`
	AccountabilityAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;column:accountability_amount" json:"accountability_amount"`
	AccountabilityNotes  *string         `gorm:"type:text;column:accountability_notes" json:"accountability_notes,omitempty"`

	AccountabilityDocuments []AccountabilityDocumentModel `gorm:"foreignKey:DocumentReportID;references:AccountabilityID" json:"accountability_documents,omitempty"`

	AccountabilityCreatedAt time.Time `gorm:"column:accountability_created_at;not null;autoCreateTime" json:"accountability_created_at"`
	AccountabilityUpdatedAt time.Time `gorm:"column:accountability_updated_at;not null;autoUpdateTime" json:"accountability_updated_at"`
}

func (AccountabilityReportModel) TableName() string { return "accountability_reports" }

func (m *AccountabilityReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.AccountabilityID == uuid.Nil {
		m.AccountabilityID = uuid.New()
	}
	return nil
}

type AccountabilityDocumentModel struct {
	DocumentID          uuid.UUID `gorm:"type:uuid;primaryKey;column:document_id" json:"document_id"`
	DocumentReportID    uuid.UUID `gorm:"type:uuid;not null;index;column:document_report_id" json:"document_report_id"`
	DocumentFilePath    string    `gorm:"type:text;not null;column:document_file_path" json:"document_file_path"`
	DocumentDescription *string   `gorm:"type:varchar(255);column:document_description" json:"document_description,omitempty"`
	DocumentUploadedAt  time.Time `gorm:"column:document_uploaded_at;not null;autoCreateTime" json:"document_uploaded_at"`
}

func (AccountabilityDocumentModel) TableName() string { return "accountability_documents" }

func (m *AccountabilityDocumentModel) BeforeCreate(tx *gorm.DB) error {
	if m.DocumentID == uuid.Nil {
		m.DocumentID = uuid.New()
	}
	return nil
}
