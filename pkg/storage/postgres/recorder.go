package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Christian123002/Bitcoin-Tracker/pkg/storage"

	"gorm.io/gorm/clause"
)

// RecordSample inserts one parsed sample. Part of the storage.Recorder
// implementation.
func (p *PostgresClient) RecordSample(ctx context.Context, s storage.Sample) error {
	if err := p.DB.WithContext(ctx).Create(ToSampleRecord(s)).Error; err != nil {
		return fmt.Errorf("insert sample: %w", err)
	}
	return nil
}

// RecordAlert inserts one finished alert session. Re-recording the same
// session is rejected so a retried write cannot double-count.
func (p *PostgresClient) RecordAlert(ctx context.Context, a storage.Alert) error {
	tx := p.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "session_id"},
		},
		DoNothing: true,
	}).Create(ToAlertRecord(a))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("duplicate alert skipped: session=%s threshold=%d", a.ID, a.Threshold)
	}

	return nil
}

// RecentSamples returns the newest samples, latest first.
func (p *PostgresClient) RecentSamples(ctx context.Context, limit int) ([]SampleRecord, error) {
	var out []SampleRecord
	err := p.DB.WithContext(ctx).
		Order("at DESC").
		Limit(limit).
		Find(&out).Error

	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetAlert looks up one alert session by its id.
func (p *PostgresClient) GetAlert(ctx context.Context, sessionID string) (*AlertRecord, error) {
	var rec AlertRecord
	err := p.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&rec).Error

	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// PruneSamplesBefore drops samples older than the cutoff.
func (p *PostgresClient) PruneSamplesBefore(ctx context.Context, cutoff time.Time) error {
	return p.DB.WithContext(ctx).
		Where("at < ?", cutoff).
		Delete(&SampleRecord{}).Error
}
