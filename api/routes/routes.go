package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"lofinight/api/handler"
	"lofinight/api/middleware"
	"lofinight/internal/authz"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Users          *handler.UserHandler
	Catalog        *handler.CatalogHandler
	Playlists      *handler.PlaylistHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	playlistHandler *handler.PlaylistHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		Users:          userHandler,
		Catalog:        catalogHandler,
		Playlists:      playlistHandler,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	requireAuth := r.AuthMiddleware.RequireAuth

	e.POST("/auth/register", r.Auth.Register, r.AuthRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.POST("/auth/refresh", r.Auth.Refresh, r.AuthRate.Middleware())
	e.POST("/auth/password/forgot", r.Auth.ForgotPassword, r.LoginRate.Middleware())
	e.POST("/auth/password/reset", r.Auth.ResetPassword, r.AuthRate.Middleware())
	e.POST("/auth/password/change", r.Auth.ChangePassword, requireAuth)
	e.POST("/auth/email/send-otp", r.Auth.SendEmailOTP, requireAuth, r.AuthRate.Middleware())
	e.POST("/auth/email/verify-otp", r.Auth.VerifyEmailOTP, requireAuth)

	e.GET("/me", r.Users.GetProfile, requireAuth)
	e.PATCH("/me", r.Users.UpdateProfile, requireAuth)

	e.GET("/admin/users", r.Users.List, requireAuth,
		middleware.RequirePermission(authz.PermManageUsers))
	e.PATCH("/admin/users/:id/status", r.Users.UpdateStatus, requireAuth,
		middleware.RequirePermission(authz.PermManageUsers))
	e.DELETE("/admin/users/:id", r.Users.Delete, requireAuth,
		middleware.RequireRole(authz.RoleAdmin))

	e.GET("/genres", r.Catalog.ListGenres)
	e.GET("/genres/:id", r.Catalog.GetGenre)
	e.POST("/genres", r.Catalog.CreateGenre, requireAuth,
		middleware.RequirePermission(authz.PermManageSongs))
	e.PATCH("/genres/:id", r.Catalog.UpdateGenre, requireAuth,
		middleware.RequirePermission(authz.PermManageSongs))
	e.DELETE("/genres/:id", r.Catalog.DeleteGenre, requireAuth,
		middleware.RequirePermission(authz.PermManageSongs))

	e.GET("/artists", r.Catalog.ListArtists)
	e.GET("/artists/:id", r.Catalog.GetArtist)
	e.POST("/artists", r.Catalog.CreateArtist, requireAuth,
		middleware.RequireMinRole(authz.RoleModerator))
	e.PATCH("/artists/:id", r.Catalog.UpdateArtist, requireAuth,
		middleware.RequireMinRole(authz.RoleModerator))
	e.DELETE("/artists/:id", r.Catalog.DeleteArtist, requireAuth,
		middleware.RequireRole(authz.RoleAdmin))

	e.GET("/albums", r.Catalog.ListAlbums)
	e.GET("/albums/:id", r.Catalog.GetAlbum)
	e.POST("/albums", r.Catalog.CreateAlbum, requireAuth,
		middleware.RequirePermission(authz.PermModerateContent))
	e.PATCH("/albums/:id", r.Catalog.UpdateAlbum, requireAuth,
		middleware.RequirePermission(authz.PermModerateContent))
	e.DELETE("/albums/:id", r.Catalog.DeleteAlbum, requireAuth,
		middleware.RequirePermission(authz.PermModerateContent))

	e.GET("/songs", r.Catalog.ListSongs)
	e.GET("/songs/:id", r.Catalog.GetSong)
	e.POST("/songs/:id/play", r.Catalog.RecordPlay)
	e.POST("/songs", r.Catalog.CreateSong, requireAuth,
		middleware.RequireResourceAccess("songs", "manage"))
	e.PATCH("/songs/:id", r.Catalog.UpdateSong, requireAuth,
		middleware.RequireResourceAccess("songs", "manage"))
	e.DELETE("/songs/:id", r.Catalog.DeleteSong, requireAuth,
		middleware.RequireResourceAccess("songs", "manage"))

	ownPlaylist := middleware.RequireOwnership(r.Playlists.ResolveOwner)

	e.GET("/playlists", r.Playlists.ListPublic)
	e.GET("/playlists/:id", r.Playlists.Get)
	e.GET("/playlists/:id/songs", r.Playlists.ListSongs)
	e.GET("/me/playlists", r.Playlists.ListMine, requireAuth)
	e.POST("/playlists", r.Playlists.Create, requireAuth,
		middleware.RequireResourceAccess("playlists", "create"))
	e.PATCH("/playlists/:id", r.Playlists.Update, requireAuth, ownPlaylist)
	e.DELETE("/playlists/:id", r.Playlists.Delete, requireAuth, ownPlaylist)
	e.POST("/playlists/:id/songs", r.Playlists.AddSong, requireAuth, ownPlaylist)
	e.DELETE("/playlists/:id/songs/:songId", r.Playlists.RemoveSong, requireAuth, ownPlaylist)
	e.PATCH("/playlists/:id/songs/:songId", r.Playlists.MoveSong, requireAuth, ownPlaylist)
}
