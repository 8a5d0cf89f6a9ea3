package router

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pharmatrace/internal/auth"
	"pharmatrace/internal/errors"
	"pharmatrace/internal/handler"
)

// Handlers groups the route handlers.
type Handlers struct {
	Registration *handler.RegistrationHandler
	Batch        *handler.BatchHandler
	PPB          *handler.PPBHandler
	Auth         *handler.AuthHandler
}

// Register wires routes and middleware. Admin routes require an admin token only when adminAuth is set.
func Register(e *echo.Echo, jwtService *auth.JWTService, adminAuth bool, h Handlers) {
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := log.JSON{
				"id":      v.RequestID,
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			}
			if v.Error != nil {
				fields["error"] = v.Error.Error()
			}
			log.Infoj(fields)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey: jwtService.Secret(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "UNAUTHORIZED",
			}).SetInternal(err)
		},
	})

	// Batch registry
	e.GET("/verify/:batchId", h.Batch.Verify)
	e.POST("/register-product", h.Batch.RegisterProduct)
	e.POST("/transfer-ownership", h.Batch.TransferOwnership)
	e.POST("/revoke-batch", h.Batch.RevokeBatch)
	e.GET("/batches", h.Batch.ListAll)
	e.GET("/manufacturer/batches", h.Batch.ListByManufacturer)
	e.POST("/pinata/upload", h.Batch.PinMetadata)

	// Participants
	e.POST("/signup", h.Registration.Signup)
	e.POST("/login", h.Registration.Login)
	e.GET("/api/user-status/:wallet", h.Registration.Status)
	e.GET("/user/:wallet", h.Registration.OnChainUser)
	e.GET("/api/ppb", h.PPB.List)
	e.GET("/api/ppb/:licenseNumber", h.PPB.Get)

	e.POST("/admin/login", h.Auth.AdminLogin)
	e.GET("/me", h.Auth.Me, jwtMiddleware)

	// Admin routes
	var admin []echo.MiddlewareFunc
	if adminAuth {
		admin = append(admin, jwtMiddleware, requireRole(auth.RoleAdmin))
	}
	e.GET("/pending-requests", h.Registration.ListPending, admin...)
	e.POST("/approve-request/:wallet", h.Registration.Approve, admin...)
	e.POST("/reject-request/:wallet", h.Registration.Reject, admin...)
	e.GET("/admin/all-batches", h.Batch.ListAll, admin...)
}

func requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{Error: "unauthorized", Code: "UNAUTHORIZED"})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{Error: "forbidden", Code: "FORBIDDEN"})
			}
			return next(c)
		}
	}
}

// ErrorHandler renders every failure as a JSON {error} body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code int
		body errors.ErrorResponse
		he   *echo.HTTPError
	)
	if stderrors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case errors.ErrorResponse:
			body = m
		case string:
			body = errors.ErrorResponse{Error: m}
		default:
			body = errors.ErrorResponse{Error: http.StatusText(code)}
		}
	} else {
		httpErr := errors.MapErrorToHTTP(err)
		code, body = httpErr.StatusCode, httpErr.ToErrorResponse()
	}

	if code >= http.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		log.Error(err)
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
