package repository

import (
	"errors"

	"github.com/ecoshare/ecoshare/internal/models"
	"gorm.io/gorm"
)

type NeedRepository struct {
	db *gorm.DB
}

func NewNeedRepository(db *gorm.DB) *NeedRepository {
	return &NeedRepository{db: db}
}

func (r *NeedRepository) Create(need *models.Need) error {
	return r.db.Create(need).Error
}

func (r *NeedRepository) FindByID(id uint) (*models.Need, error) {
	var need models.Need
	err := r.db.First(&need, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &need, nil
}

func (r *NeedRepository) FindByNGO(ngoID uint) ([]models.Need, error) {
	var needs []models.Need
	err := r.db.Where("ngo_id = ?", ngoID).Order("created_at DESC").Find(&needs).Error
	return needs, err
}

func (r *NeedRepository) FindAll() ([]models.Need, error) {
	var needs []models.Need
	err := r.db.Preload("NGO").Order("created_at DESC").Find(&needs).Error
	return needs, err
}

// AddFulfilled bumps the fulfilment counter, guarded so it can never
// overshoot quantity_needed. Zero rows affected means the increment did
// not fit (or the need does not belong to the NGO).
func (r *NeedRepository) AddFulfilled(id, ngoID uint, qty int) (int64, error) {
	res := r.db.Model(&models.Need{}).
		Where("id = ? AND ngo_id = ?", id, ngoID).
		Where("fulfilled_quantity + ? <= quantity_needed", qty).
		Update("fulfilled_quantity", gorm.Expr("fulfilled_quantity + ?", qty))
	return res.RowsAffected, res.Error
}
