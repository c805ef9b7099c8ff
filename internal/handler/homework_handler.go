package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hagwonhq/hagwon-api/internal/service"
	"github.com/hagwonhq/hagwon-api/internal/utils"
)

// HomeworkHandler exposes the per-class homework statistics endpoint.
type HomeworkHandler struct {
	service service.HomeworkStatsService
	logger  zerolog.Logger
}

// NewHomeworkHandler creates a new handler instance.
func NewHomeworkHandler(service service.HomeworkStatsService, logger zerolog.Logger) *HomeworkHandler {
	return &HomeworkHandler{
		service: service,
		logger:  logger.With().Str("component", "homework_handler").Logger(),
	}
}

// Register attaches the homework endpoints.
func (h *HomeworkHandler) Register(router fiber.Router) {
	router.Get("/classes", h.getClassStats)
}

func (h *HomeworkHandler) getClassStats(c *fiber.Ctx) error {
	orgID, err := extractOrgID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	overview, err := h.service.GetClassStats(c.Context(), orgID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("org_id", orgID).Msg("failed to compute homework stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute homework stats")
	}

	return utils.SendSuccess(c, "homework stats retrieved", overview)
}
