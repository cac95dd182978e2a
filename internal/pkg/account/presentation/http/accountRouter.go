package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/auth"
	"github.com/Shreya020904/Planner-ui/internal/pkg/account/application/usecase"
	"github.com/Shreya020904/Planner-ui/internal/pkg/account/presentation/controller"
	repository "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

// Deps carries what the account endpoints need.
type Deps struct {
	Users   repository.UserRepository
	Devices usecase.DeviceCache
	Auth    *auth.Authenticator
}

// RegisterRoutes mounts /auth (public) and /account (session required).
func RegisterRoutes(g *gin.RouterGroup, d Deps) {
	signupCtl := controller.NewSignupController(usecase.NewSignupUseCase(d.Users))
	loginCtl := controller.NewLoginController(usecase.NewLoginUseCase(d.Users, d.Devices, d.Auth), d.Auth.Validity())
	logoutCtl := controller.NewLogoutController(usecase.NewLogoutUseCase(d.Devices))
	profileCtl := controller.NewGetProfileController(usecase.NewResolveIdentityUseCase(d.Users, d.Devices))
	updateCtl := controller.NewUpdateProfileController(usecase.NewUpdateProfileUseCase(d.Users))
	avatarCtl := controller.NewUpdateAvatarController(usecase.NewUpdateAvatarUseCase(d.Users))
	othersCtl := controller.NewListOtherUsersController(usecase.NewListOtherUsersUseCase(d.Users))

	// POST /api/v1/auth/{signup,login,logout}
	g.POST("/auth/signup", signupCtl.Handle())
	g.POST("/auth/login", loginCtl.Handle())
	g.POST("/auth/logout", logoutCtl.Handle())

	acc := g.Group("/account", d.Auth.RequireAuth())
	// GET /api/v1/account/profile -> resolve the device's remembered user
	acc.GET("/profile", profileCtl.Handle())
	// PATCH /api/v1/account/profile -> edit designation/experience
	acc.PATCH("/profile", updateCtl.Handle())
	// PUT /api/v1/account/avatar -> multipart "avatar"
	acc.PUT("/avatar", avatarCtl.Handle())
	// GET /api/v1/account/others -> everyone but the caller
	acc.GET("/others", othersCtl.Handle())
}
