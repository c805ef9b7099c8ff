package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hagwonhq/hagwon-api/internal/attendance"
	"github.com/hagwonhq/hagwon-api/internal/dto"
	"github.com/hagwonhq/hagwon-api/internal/models"
	"github.com/hagwonhq/hagwon-api/internal/repository"
)

// HomeworkStatsService computes per-class homework submission rates. Stored
// denormalized counters on homework rows are ignored; counts are recomputed
// from submissions and current enrollments.
type HomeworkStatsService interface {
	GetClassStats(ctx context.Context, orgID uint) (dto.HomeworkOverviewView, error)
}

type homeworkStatsService struct {
	classes     repository.ClassRepository
	enrollments repository.EnrollmentRepository
	homework    repository.HomeworkRepository
	logger      zerolog.Logger
}

// NewHomeworkStatsService constructs the homework aggregator.
func NewHomeworkStatsService(classes repository.ClassRepository, enrollments repository.EnrollmentRepository, homework repository.HomeworkRepository, logger zerolog.Logger) HomeworkStatsService {
	return &homeworkStatsService{
		classes:     classes,
		enrollments: enrollments,
		homework:    homework,
		logger:      logger.With().Str("component", "homework_stats_service").Logger(),
	}
}

func (s *homeworkStatsService) GetClassStats(ctx context.Context, orgID uint) (dto.HomeworkOverviewView, error) {
	var (
		classes     []models.Class
		enrollments []models.Enrollment
		homeworks   []models.Homework
		submissions []models.HomeworkSubmission
	)

	group, groupCtx := errgroup.WithContext(ctx)
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
		enrollments, err = s.enrollments.ListActive(groupCtx, orgID, repository.EnrollmentFilter{})
		if err != nil {
			return fmt.Errorf("list enrollments: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		homeworks, submissions, err = s.homework.ListWithSubmissions(groupCtx, orgID, repository.HomeworkFilter{})
		if err != nil {
			return fmt.Errorf("list homework: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return dto.HomeworkOverviewView{}, err
	}

	index := attendance.NewClassIndex(classes)
	overview := attendance.BuildHomeworkOverview(index, homeworks, submissions, enrollments)

	if overview.UnassignedCount > 0 {
		s.logger.Warn().Uint("org_id", orgID).Int("unassigned", overview.UnassignedCount).Msg("homework rows without resolvable class")
	}

	classViews := make([]dto.ClassHomeworkStatsView, 0, len(overview.Classes))
	for _, stats := range overview.Classes {
		studentViews := make([]dto.HomeworkStudentView, 0, len(stats.Students))
		for _, student := range stats.Students {
			studentViews = append(studentViews, dto.HomeworkStudentView{
				StudentID:   student.StudentID,
				StudentName: student.StudentName,
				Status:      student.Status,
				SubmittedAt: student.SubmittedAt,
				Score:       student.Score,
			})
		}
		classViews = append(classViews, dto.ClassHomeworkStatsView{
			ClassID:        stats.ClassID,
			ClassName:      stats.ClassName,
			TotalStudents:  stats.TotalStudents,
			SubmittedCount: stats.SubmittedCount,
			SubmissionRate: stats.SubmissionRate,
			LastHomework:   stats.LastHomework,
			Students:       studentViews,
		})
	}

	return dto.HomeworkOverviewView{Classes: classViews, UnassignedCount: overview.UnassignedCount}, nil
}
