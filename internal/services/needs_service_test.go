package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ecoshare/ecoshare/internal/database"
	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
)

func setupNeedsTestDB(t *testing.T) (*gorm.DB, *NeedsService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	needRepo := repository.NewNeedRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	needsService := NewNeedsService(needRepo, profileRepo)

	return db, needsService
}

func TestNeedsService_Post(t *testing.T) {
	db, needsService := setupNeedsTestDB(t)

	ngo := seedNGO(t, db, "ngo@example.com", "Pune", models.NGOVerified)

	need, err := needsService.Post(ngo.ID, NewNeed{
		Title:          "Winter blankets",
		Description:    "Blankets for the night shelter",
		Category:       models.CategoryClothes,
		QuantityNeeded: 50,
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, need.FulfilledQuantity)
	assert.Equal(t, 0.0, need.Progress())
}

func TestNeedsService_PostInvalidQuantity(t *testing.T) {
	db, needsService := setupNeedsTestDB(t)

	ngo := seedNGO(t, db, "ngo@example.com", "Pune", models.NGOVerified)

	_, err := needsService.Post(ngo.ID, NewNeed{
		Title:          "Blankets",
		Description:    "x",
		Category:       models.CategoryClothes,
		QuantityNeeded: 0,
	})
	assert.Equal(t, ErrInvalidQuantity, err)
}

func TestNeedsService_PostUnknownNGO(t *testing.T) {
	_, needsService := setupNeedsTestDB(t)

	_, err := needsService.Post(9999, NewNeed{
		Title:          "Blankets",
		Description:    "x",
		Category:       models.CategoryClothes,
		QuantityNeeded: 10,
	})
	assert.Equal(t, ErrNGONotFound, err)
}

func TestNeedsService_RecordFulfilment(t *testing.T) {
	db, needsService := setupNeedsTestDB(t)

	ngo := seedNGO(t, db, "ngo@example.com", "Pune", models.NGOVerified)
	need, err := needsService.Post(ngo.ID, NewNeed{
		Title:          "School books",
		Description:    "Textbooks for grade 5",
		Category:       models.CategoryBooks,
		QuantityNeeded: 3,
	})
	assert.NoError(t, err)

	updated, err := needsService.RecordFulfilment(ngo.ID, need.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.FulfilledQuantity)
	assert.InDelta(t, 1.0/3.0, updated.Progress(), 0.001)

	updated, err = needsService.RecordFulfilment(ngo.ID, need.ID, 2)
	assert.NoError(t, err)
	assert.Equal(t, 3, updated.FulfilledQuantity)
	assert.Equal(t, 1.0, updated.Progress())
}

func TestNeedsService_FulfilmentNeverExceedsTarget(t *testing.T) {
	db, needsService := setupNeedsTestDB(t)

	ngo := seedNGO(t, db, "ngo@example.com", "Pune", models.NGOVerified)
	need, err := needsService.Post(ngo.ID, NewNeed{
		Title:          "Toys",
		Description:    "Toys for the shelter",
		Category:       models.CategoryToys,
		QuantityNeeded: 5,
	})
	assert.NoError(t, err)

	_, err = needsService.RecordFulfilment(ngo.ID, need.ID, 4)
	assert.NoError(t, err)

	_, err = needsService.RecordFulfilment(ngo.ID, need.ID, 2)
	assert.Equal(t, ErrFulfilmentTooLarge, err)

	var after models.Need
	assert.NoError(t, db.First(&after, need.ID).Error)
	assert.Equal(t, 4, after.FulfilledQuantity)
}

func TestNeedsService_FulfilSomeoneElsesNeed(t *testing.T) {
	db, needsService := setupNeedsTestDB(t)

	owner := seedNGO(t, db, "owner@example.com", "Pune", models.NGOVerified)
	other := seedNGO(t, db, "other@example.com", "Pune", models.NGOVerified)

	need, err := needsService.Post(owner.ID, NewNeed{
		Title:          "Rice",
		Description:    "Rice for the kitchen",
		Category:       models.CategoryFood,
		QuantityNeeded: 10,
	})
	assert.NoError(t, err)

	_, err = needsService.RecordFulfilment(other.ID, need.ID, 1)
	assert.Equal(t, ErrNeedNotFound, err)
}

func TestNeedsService_ListAll(t *testing.T) {
	db, needsService := setupNeedsTestDB(t)

	first := seedNGO(t, db, "first@example.com", "Pune", models.NGOVerified)
	second := seedNGO(t, db, "second@example.com", "Mumbai", models.NGOVerified)

	_, err := needsService.Post(first.ID, NewNeed{
		Title: "Rice", Description: "x", Category: models.CategoryFood, QuantityNeeded: 10,
	})
	assert.NoError(t, err)
	_, err = needsService.Post(second.ID, NewNeed{
		Title: "Books", Description: "x", Category: models.CategoryBooks, QuantityNeeded: 20,
	})
	assert.NoError(t, err)

	all, err := needsService.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := needsService.ListForNGO(first.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "Rice", mine[0].Title)
}
