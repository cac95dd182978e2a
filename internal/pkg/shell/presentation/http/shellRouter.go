package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/pkg/shell/application/usecase"
	"github.com/Shreya020904/Planner-ui/internal/pkg/shell/presentation/controller"
)

// RegisterRoutes mounts the shell endpoints. They are keyed by device and
// need no session.
func RegisterRoutes(g *gin.RouterGroup, store *usecase.Store) {
	ctl := controller.NewShellController(store)

	// GET /api/v1/shell -> current theme and sidebar state
	g.GET("/shell", ctl.Get())

	// POST /api/v1/shell/theme/toggle -> flip light/dark and persist
	g.POST("/shell/theme/toggle", ctl.ToggleTheme())

	// POST /api/v1/shell/sidebar/toggle -> show/hide the sidebar
	g.POST("/shell/sidebar/toggle", ctl.ToggleSidebar())
}
