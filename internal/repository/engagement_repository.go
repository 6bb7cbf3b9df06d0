package repository

import (
	"github.com/ecoshare/ecoshare/internal/models"
	"gorm.io/gorm"
)

type EngagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

func (r *EngagementRepository) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *EngagementRepository) FindMessagesFor(accountID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("recipient_id = ? OR sender_id = ?", accountID, accountID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *EngagementRepository) MarkMessageRead(id, recipientID uint) (int64, error) {
	res := r.db.Model(&models.Message{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *EngagementRepository) CreateReview(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *EngagementRepository) FindReviewsFor(accountID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("reviewed_id = ?", accountID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *EngagementRepository) CreateImpactNote(note *models.ImpactNote) error {
	return r.db.Create(note).Error
}

func (r *EngagementRepository) FindImpactNotesByNGO(ngoID uint) ([]models.ImpactNote, error) {
	var notes []models.ImpactNote
	err := r.db.Where("ngo_id = ?", ngoID).Order("created_at DESC").Find(&notes).Error
	return notes, err
}
