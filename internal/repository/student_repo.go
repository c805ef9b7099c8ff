package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// StudentRepository defines read operations over the student collection.
type StudentRepository interface {
	List(ctx context.Context, orgID uint) ([]models.Student, error)
	ListByIDs(ctx context.Context, orgID uint, ids []uint) ([]models.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository instantiates a GORM-backed repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context, orgID uint) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Order("id ASC").Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

// ListByIDs is the batch lookup used to heal fact rows that carry a student id
// but no joined name. It exists so callers resolve all missing ids in one
// query instead of one per row.
func (r *studentRepository) ListByIDs(ctx context.Context, orgID uint, ids []uint) ([]models.Student, error) {
	if len(ids) == 0 {
		return []models.Student{}, nil
	}

	var students []models.Student
	if err := r.db.WithContext(ctx).Where("org_id = ? AND id IN ?", orgID, ids).Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}
