package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskhub/internal/auth"
	"taskhub/internal/config"
	apperrors "taskhub/internal/errors"
	"taskhub/internal/handler"
)

// Register wires routes and middleware. Task routes sit behind the JWT gate;
// user routes are public.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", userHandler.Register)
	e.POST("/login", userHandler.Login)
	e.GET("/users", userHandler.ListUsers)

	// Task routes (require a valid Bearer token)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// Absent, malformed, badly signed and expired tokens all
			// terminate the request the same way.
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "invalid or missing token",
				Code:  "UNAUTHORIZED",
			})
		},
	}))

	secured.POST("/create", taskHandler.CreateTask)
	secured.GET("/search", taskHandler.ListTasks)
	secured.GET("/search/:id", taskHandler.GetTask)
	secured.PUT("/updateTask/:id", taskHandler.UpdateTask)
	secured.DELETE("/removeTask/:id", taskHandler.DeleteTask)
}
