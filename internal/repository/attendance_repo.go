package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// AttendanceFilter narrows attendance listings. From and To bound the date
// range inclusively; zero values leave the bound open.
type AttendanceFilter struct {
	From       time.Time
	To         time.Time
	ClassIDs   []uint
	StudentIDs []uint
	Status     string
}

// AttendanceRepository defines read operations over the attendance log. The
// reconciliation core never writes attendance; records are created once by the
// check-in flow and only read here.
type AttendanceRepository interface {
	List(ctx context.Context, orgID uint, filter AttendanceFilter) ([]models.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository instantiates a GORM-backed repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) List(ctx context.Context, orgID uint, filter AttendanceFilter) ([]models.AttendanceRecord, error) {
	query := r.db.WithContext(ctx).Where("org_id = ?", orgID)

	if !filter.From.IsZero() {
		query = query.Where("date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("date <= ?", filter.To)
	}
	if len(filter.ClassIDs) > 0 {
		query = query.Where("class_id IN ?", filter.ClassIDs)
	}
	if len(filter.StudentIDs) > 0 {
		query = query.Where("student_id IN ?", filter.StudentIDs)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var records []models.AttendanceRecord
	if err := query.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
