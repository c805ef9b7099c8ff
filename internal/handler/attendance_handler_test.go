package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hagwonhq/hagwon-api/internal/dto"
	"github.com/hagwonhq/hagwon-api/internal/handler"
)

type stubTodayService struct {
	views    []dto.StudentTodayView
	err      error
	lastOrg  uint
	lastDate time.Time
}

func (s *stubTodayService) GetToday(_ context.Context, orgID uint, date time.Time) ([]dto.StudentTodayView, error) {
	s.lastOrg = orgID
	s.lastDate = date
	return s.views, s.err
}

type stubStatsService struct {
	weekly   []dto.DailyStatusView
	rates    []dto.StudentRateView
	err      error
	lastDays int
}

func (s *stubStatsService) GetWeekly(_ context.Context, _ uint, _, _ time.Time) ([]dto.DailyStatusView, error) {
	return s.weekly, s.err
}

func (s *stubStatsService) GetStudentRates(_ context.Context, _ uint, windowDays int) ([]dto.StudentRateView, error) {
	s.lastDays = windowDays
	return s.rates, s.err
}

func newAttendanceApp(today *stubTodayService, stats *stubStatsService, orgID uint) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1/attendance", func(c *fiber.Ctx) error {
		if orgID != 0 {
			c.Locals("org_id", orgID)
		}
		return c.Next()
	})
	handler.NewAttendanceHandler(today, stats, validator.New(), zerolog.Nop()).Register(group)
	return app
}

func TestAttendanceHandlerToday(t *testing.T) {
	today := &stubTodayService{views: []dto.StudentTodayView{
		{StudentID: 100, StudentName: "Jiho", Status: "absent", Classes: []dto.ClassStatusView{
			{ClassID: 1, ClassName: "Algebra I", Status: "present"},
			{ClassID: 2, ClassName: "Biology", Status: "absent"},
		}},
	}}
	app := newAttendanceApp(today, &stubStatsService{}, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/today?date=2026-03-02", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool                   `json:"success"`
		Data    []dto.StudentTodayView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.True(t, payload.Success)
	require.Len(t, payload.Data, 1)
	require.Equal(t, "absent", payload.Data[0].Status)
	require.Equal(t, uint(7), today.lastOrg)
	require.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), today.lastDate)
}

func TestAttendanceHandlerTodayRejectsBadDate(t *testing.T) {
	app := newAttendanceApp(&stubTodayService{}, &stubStatsService{}, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/today?date=03-02-2026", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAttendanceHandlerTodayMissingOrg(t *testing.T) {
	app := newAttendanceApp(&stubTodayService{}, &stubStatsService{}, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/today", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAttendanceHandlerStudentRatesDefaultsWindow(t *testing.T) {
	stats := &stubStatsService{rates: []dto.StudentRateView{{ID: 1, Name: "Jiho", Rate: 90}}}
	app := newAttendanceApp(&stubTodayService{}, stats, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/stats/students", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, 0, stats.lastDays)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/attendance/stats/students?days=400", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAttendanceHandlerServiceFailure(t *testing.T) {
	stats := &stubStatsService{err: errors.New("store unavailable")}
	app := newAttendanceApp(&stubTodayService{}, stats, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/stats/weekly", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
