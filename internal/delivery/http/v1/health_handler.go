package v1

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	healthUC domain.HealthUsecase
	log      *zap.Logger
}

func NewHealthHandler(api *gin.RouterGroup, healthUC domain.HealthUsecase, log *zap.Logger) {
	handler := &HealthHandler{healthUC: healthUC, log: log}
	api.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Report database and Redis reachability as ok, down or disabled
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status, err := h.healthUC.Check(c.Request.Context())
	if err != nil {
		code := http.StatusServiceUnavailable
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			code = appErr.Code
		}
		// Ping errors stay in the logs.
		h.log.Warn("Health check failed", zap.Error(err))
		if status == nil {
			status = map[string]string{"status": "degraded"}
		}
		c.JSON(code, status)
		return
	}

	c.JSON(http.StatusOK, status)
}
