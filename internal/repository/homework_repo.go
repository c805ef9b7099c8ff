package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// HomeworkFilter narrows homework listings to particular classes. Rows that
// carry no class id at all always come back; whether they resolve by name is
// the identity index's call, not the store's.
type HomeworkFilter struct {
	ClassIDs []uint
}

// HomeworkRepository defines read operations over homework assignments and
// their submissions.
type HomeworkRepository interface {
	ListWithSubmissions(ctx context.Context, orgID uint, filter HomeworkFilter) ([]models.Homework, []models.HomeworkSubmission, error)
}

type homeworkRepository struct {
	db *gorm.DB
}

// NewHomeworkRepository instantiates a GORM-backed repository.
func NewHomeworkRepository(db *gorm.DB) HomeworkRepository {
	return &homeworkRepository{db: db}
}

func (r *homeworkRepository) ListWithSubmissions(ctx context.Context, orgID uint, filter HomeworkFilter) ([]models.Homework, []models.HomeworkSubmission, error) {
	query := r.db.WithContext(ctx).Where("org_id = ?", orgID)
	if len(filter.ClassIDs) > 0 {
		query = query.Where("class_id IN ? OR class_id IS NULL", filter.ClassIDs)
	}

	var homeworks []models.Homework
	if err := query.Order("due_date ASC, id ASC").Find(&homeworks).Error; err != nil {
		return nil, nil, err
	}

	if len(homeworks) == 0 {
		return homeworks, []models.HomeworkSubmission{}, nil
	}

	ids := make([]uint, 0, len(homeworks))
	for _, homework := range homeworks {
		ids = append(ids, homework.ID)
	}

	var submissions []models.HomeworkSubmission
	if err := r.db.WithContext(ctx).Where("homework_id IN ?", ids).Order("id ASC").Find(&submissions).Error; err != nil {
		return nil, nil, err
	}

	return homeworks, submissions, nil
}
