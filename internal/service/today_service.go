package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hagwonhq/hagwon-api/internal/attendance"
	"github.com/hagwonhq/hagwon-api/internal/dto"
	"github.com/hagwonhq/hagwon-api/internal/models"
	"github.com/hagwonhq/hagwon-api/internal/repository"
)

// TodayAttendanceService produces the merged "expected today" roster/status
// view for a tenant. The view is recomputed from enrollments, schedules, and
// the attendance log on every request and never persisted.
type TodayAttendanceService interface {
	GetToday(ctx context.Context, orgID uint, date time.Time) ([]dto.StudentTodayView, error)
}

type todayAttendanceService struct {
	enrollments repository.EnrollmentRepository
	classes     repository.ClassRepository
	attendance  repository.AttendanceRepository
	students    repository.StudentRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
	now         func() time.Time
}

// NewTodayAttendanceService builds the today-roster aggregator.
func NewTodayAttendanceService(enrollments repository.EnrollmentRepository, classes repository.ClassRepository, attendanceRepo repository.AttendanceRepository, students repository.StudentRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) TodayAttendanceService {
	return &todayAttendanceService{
		enrollments: enrollments,
		classes:     classes,
		attendance:  attendanceRepo,
		students:    students,
		cache:       cache,
		cacheTTL:    ttl,
		logger:      logger.With().Str("component", "today_attendance_service").Logger(),
		now:         time.Now,
	}
}

func (s *todayAttendanceService) GetToday(ctx context.Context, orgID uint, date time.Time) ([]dto.StudentTodayView, error) {
	if date.IsZero() {
		date = s.now()
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	cacheKey := fmt.Sprintf("attendance:today:%d:%s", orgID, date.Format(attendance.DateLayout))

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var views []dto.StudentTodayView
			if unmarshalErr := json.Unmarshal([]byte(cached), &views); unmarshalErr == nil {
				s.logger.Debug().Uint("org_id", orgID).Msg("today roster cache hit")
				return views, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read today roster cache")
		}
	}

	// The three underlying reads touch disjoint data, so they fan out and
	// join; any store failure aborts the whole aggregation rather than
	// under-reporting attendance from a partial view.
	var (
		enrollments []models.Enrollment
		classes     []models.Class
		records     []models.AttendanceRecord
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		enrollments, err = s.enrollments.ListActive(groupCtx, orgID, repository.EnrollmentFilter{})
		if err != nil {
			return fmt.Errorf("list enrollments: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		classes, err = s.classes.List(groupCtx, orgID)
		if err != nil {
			return fmt.Errorf("list classes: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		records, err = s.attendance.List(groupCtx, orgID, repository.AttendanceFilter{From: date, To: date})
		if err != nil {
			return fmt.Errorf("list attendance: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	roster := attendance.BuildTodayRoster(enrollments, classes, date.Weekday())

	namesByStudent := map[uint]string{}
	if missing := attendance.MissingStudentNames(roster); len(missing) > 0 {
		students, err := s.students.ListByIDs(ctx, orgID, missing)
		if err != nil {
			return nil, fmt.Errorf("resolve student names: %w", err)
		}
		for _, student := range students {
			namesByStudent[student.ID] = student.Name
		}
	}

	merged, err := attendance.MergeDay(roster, records, namesByStudent)
	if err != nil {
		return nil, fmt.Errorf("merge attendance: %w", err)
	}

	views := make([]dto.StudentTodayView, 0, len(merged))
	for _, status := range merged {
		classViews := make([]dto.ClassStatusView, 0, len(status.Classes))
		for _, class := range status.Classes {
			classViews = append(classViews, dto.ClassStatusView{
				ClassID:       class.ClassID,
				ClassName:     class.ClassName,
				TeacherName:   class.TeacherName,
				ScheduledTime: class.ScheduledTime,
				Status:        string(class.Status),
			})
		}
		views = append(views, dto.StudentTodayView{
			StudentID:   status.StudentID,
			StudentName: status.StudentName,
			Classes:     classViews,
			Status:      string(status.Status),
		})
	}

	if s.cache != nil {
		payload, err := json.Marshal(views)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store today roster cache")
			}
		}
	}

	return views, nil
}
