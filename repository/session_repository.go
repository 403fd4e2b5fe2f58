package repository

import (
	"context"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository struct{ DB *gorm.DB }

func NewSessionRepository(db *gorm.DB) *SessionRepository { return &SessionRepository{DB: db} }

// Load returns the live (not yet expired) values of a session.
func (r *SessionRepository) Load(ctx context.Context, sessionID string, now time.Time) (map[string]string, error) {
	var rows []entity.SessionValue
	err := r.DB.WithContext(ctx).
		Where("session_id = ? AND expires_at > ?", sessionID, now).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Name] = row.Value
	}
	return out, nil
}

func (r *SessionRepository) Put(ctx context.Context, sessionID, key, value string, expiresAt time.Time) error {
	row := entity.SessionValue{SessionID: sessionID, Name: key, Value: value, ExpiresAt: expiresAt}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&row).Error
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID, key string) error {
	return r.DB.WithContext(ctx).
		Where("session_id = ? AND name = ?", sessionID, key).
		Delete(&entity.SessionValue{}).Error
}

func (r *SessionRepository) Destroy(ctx context.Context, sessionID string) error {
	return r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&entity.SessionValue{}).Error
}

// Touch pushes the expiry of every key in the session.
func (r *SessionRepository) Touch(ctx context.Context, sessionID string, expiresAt time.Time) error {
	return r.DB.WithContext(ctx).Model(&entity.SessionValue{}).
		Where("session_id = ?", sessionID).
		Update("expires_at", expiresAt).Error
}

func (r *SessionRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Where("expires_at <= ?", now).Delete(&entity.SessionValue{})
	return res.RowsAffected, res.Error
}
