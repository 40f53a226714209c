package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"artisanhub/internal/auth"
	"artisanhub/internal/config"
	"artisanhub/internal/errors"
	"artisanhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	jobHandler *handler.JobHandler,
	bidHandler *handler.BidHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Job reads are public; anyone may browse the marketplace.
	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/:id", jobHandler.Get)
	api.GET("/users/:id", userHandler.GetUser)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), rejectRevoked(tokenStore))

	secured.GET("/me", userHandler.Me)
	secured.PATCH("/me", userHandler.UpdateProfile)

	// Job writes need authentication only. Ownership is deliberately not
	// checked on update/delete; see DESIGN.md.
	secured.POST("/jobs", jobHandler.Create)
	secured.PUT("/jobs/:id", jobHandler.Update)
	secured.PATCH("/jobs/:id", jobHandler.Update)
	secured.DELETE("/jobs/:id", jobHandler.Delete)

	// Bid routes
	secured.POST("/jobs/:id/bid", bidHandler.PlaceBid)
	secured.GET("/bids", bidHandler.List)
	secured.GET("/bids/:id", bidHandler.Get)
}

// rejectRevoked refuses access tokens that logout blacklisted. Runs after
// the JWT middleware, so the token in context is already signature-checked.
func rejectRevoked(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "authentication required",
					Code:  "AUTH_REQUIRED",
				})
			}
			claims, _ := token.Claims.(jwt.MapClaims)
			jti, _ := claims["jti"].(string)
			if jti != "" {
				if blacklisted, _ := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), jti); blacklisted {
					return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
						Error: "token has been revoked",
						Code:  "TOKEN_REVOKED",
					})
				}
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
