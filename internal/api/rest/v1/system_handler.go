package v1

import (
	"net/http"
	"time"

	"therapy_companion_service/internal/domain/system"

	"github.com/gin-gonic/gin"
)

const indexPage = `<html>
<body>
    <h1>Therapeutic Companion Server Running</h1>
    <p>The REST API is served under /api.</p>
</body>
</html>
`

// SystemHandler defines the interface for health and statistics endpoints
type SystemHandler interface {
	Index(ctx *gin.Context)
	Health(ctx *gin.Context)
	Stats(ctx *gin.Context)
}

// systemHandler struct holds the stats service
type systemHandler struct {
	statsService system.StatsService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(statsService system.StatsService) SystemHandler {
	return &systemHandler{statsService: statsService}
}

// Index serves a minimal landing page
func (handler *systemHandler) Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// Health reports service liveness and its feature surface
func (handler *systemHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "Therapeutic Companion Backend",
		Version: "2.0",
		Features: []string{
			"Multi-user support with authentication",
			"Patient enrollment and management",
			"Daily check-ins (emotional, medication, physical)",
			"7-day weekly tracking",
			"Excel report generation",
			"Email report with system account",
			"Rate limiting for security",
			"GDPR compliance features",
			"Activity logging",
		},
		Security: SecuritySummary{
			Authentication:   "Token-based",
			RateLimiting:     "Enabled",
			CORS:             "Configured",
			HTTPSOnlyCookies: gin.Mode() == gin.ReleaseMode,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Stats reports service-wide record counts. Admin only.
func (handler *systemHandler) Stats(ctx *gin.Context) {
	if !identityFromContext(ctx).IsAdmin() {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
		return
	}

	stats, err := handler.statsService.Collect(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, StatsResponse{
		Success:   true,
		Stats:     stats,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
