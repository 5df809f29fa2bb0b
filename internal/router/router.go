package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"nordstudio/internal/config"
	apperrors "nordstudio/internal/errors"
	"nordstudio/internal/handler"
	"nordstudio/internal/response"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	portfolioHandler *handler.PortfolioHandler,
	uploadHandler *handler.UploadHandler,
	authHandler *handler.AuthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{
			"http://localhost:5173",
			"http://localhost:5174",
			cfg.FrontendURL,
		},
		AllowCredentials: true,
	}))
	// 10 MiB payloads plus multipart framing overhead
	e.Use(middleware.BodyLimit("11M"))

	e.HTTPErrorHandler = newHTTPErrorHandler(cfg)

	e.GET("/health", handler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// No portfolio route checks a credential server-side: the demo auth
	// only feeds client UI state. Known gap, kept deliberately.
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/verify", authHandler.Verify)

	api.GET("/portfolio", portfolioHandler.List)
	api.GET("/portfolio/:id", portfolioHandler.Get)
	api.POST("/portfolio", portfolioHandler.Create)
	api.PUT("/portfolio/:id", portfolioHandler.Update)
	api.DELETE("/portfolio/:id", portfolioHandler.Delete)

	api.POST("/upload/image", uploadHandler.UploadImage)
	api.POST("/upload/images", uploadHandler.UploadImages)
	api.GET("/upload/files/:name", uploadHandler.ServeFile)
}

// newHTTPErrorHandler renders every unhandled failure as the uniform
// response envelope. Internal error messages leave the server only
// outside production mode.
func newHTTPErrorHandler(cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "Internal Server Error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		} else {
			httpErr := apperrors.MapErrorToHTTP(err)
			code = httpErr.StatusCode
			msg = httpErr.Message
		}

		if code >= http.StatusInternalServerError {
			c.Logger().Error(err)
			if cfg.IsProduction() {
				msg = "Internal Server Error"
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, response.Err(msg))
	}
}
