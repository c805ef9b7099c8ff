package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/hagwonhq/hagwon-api/internal/attendance"
	"github.com/hagwonhq/hagwon-api/internal/dto"
	"github.com/hagwonhq/hagwon-api/internal/models"
	"github.com/hagwonhq/hagwon-api/internal/repository"
)

// AttendanceStatsService computes time-windowed attendance aggregates.
type AttendanceStatsService interface {
	GetWeekly(ctx context.Context, orgID uint, start, end time.Time) ([]dto.DailyStatusView, error)
	GetStudentRates(ctx context.Context, orgID uint, windowDays int) ([]dto.StudentRateView, error)
}

type attendanceStatsService struct {
	attendance        repository.AttendanceRepository
	students          repository.StudentRepository
	defaultWindowDays int
	rateLimit         int
	logger            zerolog.Logger
	now               func() time.Time
}

// NewAttendanceStatsService constructs the statistics aggregator.
// defaultWindowDays bounds the per-student rolling rate when the caller does
// not pass a window; rateLimit caps the student-rate listing.
func NewAttendanceStatsService(attendanceRepo repository.AttendanceRepository, students repository.StudentRepository, defaultWindowDays, rateLimit int, logger zerolog.Logger) AttendanceStatsService {
	if defaultWindowDays <= 0 {
		defaultWindowDays = 30
	}
	if rateLimit <= 0 {
		rateLimit = 20
	}
	return &attendanceStatsService{
		attendance:        attendanceRepo,
		students:          students,
		defaultWindowDays: defaultWindowDays,
		rateLimit:         rateLimit,
		logger:            logger.With().Str("component", "attendance_stats_service").Logger(),
		now:               time.Now,
	}
}

func (s *attendanceStatsService) GetWeekly(ctx context.Context, orgID uint, start, end time.Time) ([]dto.DailyStatusView, error) {
	tracer := otel.Tracer("github.com/hagwonhq/hagwon-api/internal/service")
	ctx, span := tracer.Start(ctx, "stats.weekly")
	defer span.End()

	if end.IsZero() {
		end = startOfDay(s.now())
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -6)
	}
	span.SetAttributes(
		attribute.String("stats.start", start.Format(attendance.DateLayout)),
		attribute.String("stats.end", end.Format(attendance.DateLayout)),
	)

	records, err := s.attendance.List(ctx, orgID, repository.AttendanceFilter{From: start, To: end})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_attendance_failed")
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	breakdown := attendance.WeeklyBreakdown(records)
	span.SetAttributes(attribute.Int("stats.days", len(breakdown)))

	views := make([]dto.DailyStatusView, 0, len(breakdown))
	for _, count := range breakdown {
		views = append(views, dto.DailyStatusView{
			Date:    count.Date,
			Present: count.Present,
			Late:    count.Late,
			Absent:  count.Absent,
			Excused: count.Excused,
		})
	}

	return views, nil
}

func (s *attendanceStatsService) GetStudentRates(ctx context.Context, orgID uint, windowDays int) ([]dto.StudentRateView, error) {
	tracer := otel.Tracer("github.com/hagwonhq/hagwon-api/internal/service")
	ctx, span := tracer.Start(ctx, "stats.student_rates")
	defer span.End()

	if windowDays <= 0 {
		windowDays = s.defaultWindowDays
	}
	end := startOfDay(s.now())
	start := end.AddDate(0, 0, -(windowDays - 1))
	span.SetAttributes(attribute.Int("stats.window_days", windowDays))

	// The record fetch and the name fetch are independent reads.
	var (
		records  []models.AttendanceRecord
		students []models.Student
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		records, err = s.attendance.List(groupCtx, orgID, repository.AttendanceFilter{From: start, To: end})
		if err != nil {
			return fmt.Errorf("list attendance: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		students, err = s.students.List(groupCtx, orgID)
		if err != nil {
			return fmt.Errorf("list students: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "stats_fetch_failed")
		return nil, err
	}

	namesByStudent := make(map[uint]string, len(students))
	for _, student := range students {
		namesByStudent[student.ID] = student.Name
	}

	rates := attendance.StudentRates(records, namesByStudent, s.rateLimit)
	span.SetAttributes(attribute.Int("stats.students", len(rates)))

	views := make([]dto.StudentRateView, 0, len(rates))
	for _, rate := range rates {
		views = append(views, dto.StudentRateView{
			ID:      rate.StudentID,
			Name:    rate.Name,
			Present: rate.Present,
			Late:    rate.Late,
			Absent:  rate.Absent,
			Excused: rate.Excused,
			Rate:    rate.Rate,
		})
	}

	return views, nil
}

// startOfDay truncates t to UTC midnight. Attendance dates are stored at
// midnight, so window bounds derived from the wall clock must drop the
// time-of-day or the earliest window day falls outside the >= bound.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
