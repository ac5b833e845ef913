package postgres

import (
	"time"

	"github.com/Christian123002/Bitcoin-Tracker/pkg/storage"
)

// SampleRecord is one parsed feed message stored in the database.
type SampleRecord struct {
	ID uint `gorm:"primaryKey"`

	Price     float64 `gorm:"type:numeric;not null"`
	ChangePct float64 `gorm:"type:numeric;not null"`
	Raw       string  `gorm:"type:text;not null"`

	At time.Time `gorm:"not null;index:idx_sample_at"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name for GORM.
func (SampleRecord) TableName() string {
	return "sample_record"
}

// AlertRecord is one finished alarm session stored in the database.
type AlertRecord struct {
	ID uint `gorm:"primaryKey"`

	// unique per session
	SessionID string `gorm:"type:uuid;not null;uniqueIndex:idx_alert_session"`

	Threshold  int     `gorm:"not null;index:idx_alert_threshold"`
	EntryPrice float64 `gorm:"type:numeric;not null"`
	ExitPrice  float64 `gorm:"type:numeric;not null"`
	Reason     string  `gorm:"type:varchar(16);not null"`

	StartedAt time.Time `gorm:"not null;index:idx_alert_started"`
	EndedAt   time.Time `gorm:"not null"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name for GORM.
func (AlertRecord) TableName() string {
	return "alert_record"
}

// ToSampleRecord converts a parsed sample into its database row.
func ToSampleRecord(s storage.Sample) *SampleRecord {
	return &SampleRecord{
		Price:     s.Price,
		ChangePct: s.ChangePct,
		Raw:       s.Raw,
		At:        s.At,
	}
}

// ToAlertRecord converts a finished alert session into its database row.
func ToAlertRecord(a storage.Alert) *AlertRecord {
	return &AlertRecord{
		SessionID:  a.ID.String(),
		Threshold:  a.Threshold,
		EntryPrice: a.EntryPrice,
		ExitPrice:  a.ExitPrice,
		Reason:     a.Reason,
		StartedAt:  a.StartedAt,
		EndedAt:    a.EndedAt,
	}
}
