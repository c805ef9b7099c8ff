package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hagwonhq/hagwon-api/internal/attendance"
	"github.com/hagwonhq/hagwon-api/internal/service"
	"github.com/hagwonhq/hagwon-api/internal/utils"
)

// AttendanceHandler exposes the today roster and the attendance statistics
// endpoints.
type AttendanceHandler struct {
	today    service.TodayAttendanceService
	stats    service.AttendanceStatsService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewAttendanceHandler creates a new handler instance.
func NewAttendanceHandler(today service.TodayAttendanceService, stats service.AttendanceStatsService, validate *validator.Validate, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		today:    today,
		stats:    stats,
		validate: validate,
		logger:   logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register attaches the attendance endpoints.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("/today", h.getToday)
	router.Get("/stats/weekly", h.getWeekly)
	router.Get("/stats/students", h.getStudentRates)
}

type todayQuery struct {
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

func (h *AttendanceHandler) getToday(c *fiber.Ctx) error {
	orgID, err := extractOrgID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	query := todayQuery{Date: c.Query("date")}
	if err := h.validate.Struct(query); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	}

	var date time.Time
	if query.Date != "" {
		date, _ = time.Parse(attendance.DateLayout, query.Date)
	}

	views, err := h.today.GetToday(c.Context(), orgID, date)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("org_id", orgID).Msg("failed to build today roster")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build today roster")
	}

	return utils.SendSuccess(c, "today roster retrieved", views)
}

type weeklyQuery struct {
	Start string `validate:"omitempty,datetime=2006-01-02"`
	End   string `validate:"omitempty,datetime=2006-01-02"`
}

func (h *AttendanceHandler) getWeekly(c *fiber.Ctx) error {
	orgID, err := extractOrgID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	query := weeklyQuery{Start: c.Query("start"), End: c.Query("end")}
	if err := h.validate.Struct(query); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "start and end must be formatted as YYYY-MM-DD")
	}

	var start, end time.Time
	if query.Start != "" {
		start, _ = time.Parse(attendance.DateLayout, query.Start)
	}
	if query.End != "" {
		end, _ = time.Parse(attendance.DateLayout, query.End)
	}

	views, err := h.stats.GetWeekly(c.Context(), orgID, start, end)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("org_id", orgID).Msg("failed to compute weekly stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute weekly stats")
	}

	return utils.SendSuccess(c, "weekly stats retrieved", views)
}

type studentRatesQuery struct {
	Days int `validate:"omitempty,min=1,max=365"`
}

func (h *AttendanceHandler) getStudentRates(c *fiber.Ctx) error {
	orgID, err := extractOrgID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	days, err := parseQueryInt(c, "days")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "days must be an integer")
	}
	if err := h.validate.Struct(studentRatesQuery{Days: days}); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "days must be between 1 and 365")
	}

	views, err := h.stats.GetStudentRates(c.Context(), orgID, days)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("org_id", orgID).Msg("failed to compute student rates")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute student rates")
	}

	return utils.SendSuccess(c, "student rates retrieved", views)
}
