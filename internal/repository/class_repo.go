package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// ClassRepository defines read operations over class offerings. The schedule
// travels with the class row, so listing classes also answers "which days does
// each class meet".
type ClassRepository interface {
	List(ctx context.Context, orgID uint) ([]models.Class, error)
	ListByIDs(ctx context.Context, orgID uint, ids []uint) ([]models.Class, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository instantiates a GORM-backed repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) List(ctx context.Context, orgID uint) ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Order("id ASC").Find(&classes).Error; err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) ListByIDs(ctx context.Context, orgID uint, ids []uint) ([]models.Class, error) {
	if len(ids) == 0 {
		return []models.Class{}, nil
	}

	var classes []models.Class
	if err := r.db.WithContext(ctx).Where("org_id = ? AND id IN ?", orgID, ids).Order("id ASC").Find(&classes).Error; err != nil {
		return nil, err
	}

	return classes, nil
}
