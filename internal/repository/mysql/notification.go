package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository"
	"github.com/Guyuepp/go-clean-social/internal/repository/mysql/model"
)

const notificationBatchSize = 100

type notificationRepository struct {
	DB *gorm.DB
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (m *notificationRepository) StoreBatch(ctx context.Context, ns []domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	rows := make([]model.Notification, len(ns))
	for i := range ns {
		rows[i] = model.NewNotificationFromDomain(ns[i])
	}
	return m.DB.WithContext(ctx).CreateInBatches(&rows, notificationBatchSize).Error
}

func (m *notificationRepository) FetchByRecipient(ctx context.Context, recipientID int64, cursor string, num int64) ([]domain.Notification, error) {
	repository.PageVerify(&num)

	tx := m.DB.WithContext(ctx).Model(&model.Notification{}).Where("recipient_id = ?", recipientID)
	if cursor != "" {
		createdAt, id, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		tx = tx.Where("(created_at < ? OR (created_at = ? AND id < ?))", createdAt, createdAt, id)
	}

	var rows []model.Notification
	if err := tx.Order("created_at DESC").Order("id DESC").Limit(int(num)).Find(&rows).Error; err != nil {
		return nil, err
	}

	res := make([]domain.Notification, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (m *notificationRepository) MarkAllRead(ctx context.Context, recipientID int64) (int64, error) {
	result := m.DB.WithContext(ctx).
		Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		UpdateColumn("is_read", true)
	return result.RowsAffected, result.Error
}
