package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/auth"
	shell "github.com/Shreya020904/Planner-ui/internal/pkg/shell/application/domain"
	"github.com/Shreya020904/Planner-ui/internal/pkg/shell/application/usecase"
)

var errNoDevice = apperror.New(apperror.ErrValidation, "X-Device-ID header is required")

// ShellController serves the shell state of the calling device. One handler
// per endpoint, all sharing the store.
type ShellController struct {
	Store *usecase.Store
}

func NewShellController(store *usecase.Store) *ShellController {
	return &ShellController{Store: store}
}

func (h *ShellController) Get() gin.HandlerFunc {
	return h.handle(h.Store.State)
}

func (h *ShellController) ToggleTheme() gin.HandlerFunc {
	return h.handle(h.Store.ToggleTheme)
}

func (h *ShellController) ToggleSidebar() gin.HandlerFunc {
	return h.handle(h.Store.ToggleSidebar)
}

func (h *ShellController) handle(op func(context.Context, string) (shell.State, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		device := auth.DeviceID(c)
		if device == "" {
			apperror.Respond(c, errNoDevice)
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		st, err := op(ctx, device)
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"theme":        st.Theme,
			"sidebar_open": st.SidebarOpen,
		})
	}
}
