package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"stock-check/core/database"
	"stock-check/core/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRow is one persisted session. Items live in Payload as the JSON
// session document; the other columns serve listings.
type sessionRow struct {
	ID             uint      `gorm:"primaryKey"`
	SessionID      string    `gorm:"column:session_id;size:64;uniqueIndex"`
	StartedAt      time.Time `gorm:"column:started_at"`
	EndedAt        time.Time `gorm:"column:ended_at"`
	LansweeperFile string    `gorm:"column:lansweeper_file;size:255"`
	TotalScanned   int       `gorm:"column:total_scanned"`
	Payload        string    `gorm:"column:payload;type:text"`
}

func (sessionRow) TableName() string { return "stock_sessions" }

var sessionColumns = []string{"session_id", "started_at", "ended_at", "lansweeper_file", "total_scanned", "payload"}

// DBStore keeps sessions in the stock_sessions table.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore migrates the table and verifies its columns.
func NewDBStore(db *gorm.DB) (*DBStore, error) {
	if err := db.AutoMigrate(&sessionRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sessions table: %w", err)
	}
	missing, err := database.MissingColumns(db, sessionRow{}.TableName(), sessionColumns)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("sessions table is missing columns: %s", strings.Join(missing, ", "))
	}
	return &DBStore{db: db}, nil
}

func (s *DBStore) Put(ctx context.Context, id string, rec *ledger.Record) error {
	if err := validateID(id); err != nil {
		return err
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", id, err)
	}

	row := sessionRow{
		SessionID:      id,
		StartedAt:      rec.StartedAt,
		EndedAt:        rec.EndedAt,
		LansweeperFile: rec.LansweeperFile,
		TotalScanned:   rec.TotalScanned,
		Payload:        string(payload),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"started_at", "ended_at", "lansweeper_file", "total_scanned", "payload"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return nil
}

func (s *DBStore) Get(ctx context.Context, id string) (*ledger.Record, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var row sessionRow
	err := s.db.WithContext(ctx).Where("session_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var rec ledger.Record
	if err := json.Unmarshal([]byte(row.Payload), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &rec, nil
}

func (s *DBStore) List(ctx context.Context) ([]ledger.Summary, error) {
	var rows []sessionRow
	err := s.db.WithContext(ctx).
		Select("session_id", "started_at", "ended_at", "lansweeper_file", "total_scanned").
		Order("session_id desc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	out := make([]ledger.Summary, 0, len(rows))
	for _, r := range rows {
		out = append(out, ledger.Summary{
			SessionID:      r.SessionID,
			StartedAt:      r.StartedAt,
			EndedAt:        r.EndedAt,
			LansweeperFile: r.LansweeperFile,
			TotalScanned:   r.TotalScanned,
		})
	}
	return out, nil
}

func (s *DBStore) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Where("session_id = ?", id).Delete(&sessionRow{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
