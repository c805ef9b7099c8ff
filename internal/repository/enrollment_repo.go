package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// EnrollmentFilter narrows enrollment listings to particular classes.
type EnrollmentFilter struct {
	ClassIDs []uint
}

// EnrollmentRepository defines read operations over class enrollments.
type EnrollmentRepository interface {
	ListActive(ctx context.Context, orgID uint, filter EnrollmentFilter) ([]models.Enrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository instantiates a GORM-backed repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// ListActive returns active enrollments with the class and student rows
// preloaded, so callers get the class name, schedule, and student name in the
// same round trip.
func (r *enrollmentRepository) ListActive(ctx context.Context, orgID uint, filter EnrollmentFilter) ([]models.Enrollment, error) {
	query := r.db.WithContext(ctx).
		Preload("Class").
		Preload("Student").
		Where("org_id = ? AND status = ?", orgID, models.EnrollmentStatusActive)

	if len(filter.ClassIDs) > 0 {
		query = query.Where("class_id IN ?", filter.ClassIDs)
	}

	var enrollments []models.Enrollment
	if err := query.Order("id ASC").Find(&enrollments).Error; err != nil {
		return nil, err
	}

	return enrollments, nil
}
