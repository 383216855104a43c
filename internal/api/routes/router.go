package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/portal-go/docs"
	"github.com/linskybing/portal-go/internal/api/handlers"
	"github.com/linskybing/portal-go/internal/api/middleware"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/metrics"
	"github.com/linskybing/portal-go/pkg/validation"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Options struct {
	Logger            logger.Logger
	AllowedOrigins    []string
	DefaultLanguage   i18n.Language
	AuthRatePerMinute int
	MaxUploadBytes    int64
}

// NewRouter builds the engine with the shared middleware chain and every route.
func NewRouter(h *handlers.Handlers, auth *middleware.Auth, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = i18n.FR
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Register(v)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.LoggerMiddleware(opts.Logger),
		middleware.Recovery(opts.Logger),
		middleware.SecurityHeaders(),
		middleware.CORSMiddleware(opts.AllowedOrigins),
		middleware.Language(opts.DefaultLanguage),
		metrics.Middleware(),
	)
	RegisterRoutes(r, h, auth, opts)
	return r
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, auth *middleware.Auth, opts Options) {
	burst := max(opts.AuthRatePerMinute/4, 3)
	authLimiter := middleware.NewRateLimiter(opts.AuthRatePerMinute, burst)
	contactLimiter := middleware.NewRateLimiter(opts.AuthRatePerMinute, burst)

	r.GET("/health", h.Health.Health)
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))

	if h.Events != nil {
		r.GET("/ws/events", middleware.JWTAuthMiddleware(), auth.Resolve(), h.Events.Stream)
	}

	api := r.Group("/api")
	{
		api.GET("/i18n/:lang", h.I18n.Catalogue)
		api.GET("/packages", h.Payment.Catalog)
		api.POST("/contact", contactLimiter.Middleware(), h.Contact.Create)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authLimiter.Middleware(), h.Auth.SignUp)
			authGroup.POST("/signin", authLimiter.Middleware(), h.Auth.SignIn)
			authGroup.POST("/signout", middleware.JWTAuthMiddleware(), h.Auth.SignOut)
			authGroup.GET("/session", middleware.JWTAuthMiddleware(), h.Auth.Session)
		}

		user := api.Group("")
		user.Use(middleware.JWTAuthMiddleware())
		{
			user.GET("/profile", h.Auth.GetProfile)
			user.PUT("/profile", h.Auth.UpdateProfile)

			q := user.Group("/questionnaire")
			{
				q.GET("", h.Questionnaire.Status)
				q.POST("", h.Questionnaire.Submit)
				q.GET("/attachments", h.Questionnaire.ListAttachments)
				q.POST("/attachments", middleware.BodyLimit(opts.MaxUploadBytes), h.Questionnaire.UploadAttachment)
				q.DELETE("/attachments/:id", h.Questionnaire.RemoveAttachment)
			}

			user.GET("/dashboard", h.Dashboard.Get)
			user.POST("/dashboard/approve", h.Dashboard.ApprovePreview)

			user.GET("/payments", h.Payment.List)
			user.POST("/payments", h.Payment.Confirm)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuthMiddleware(), auth.Admin())
		{
			admin.GET("/requests", h.Admin.ListRequests)
			admin.GET("/requests/:id", h.Admin.GetRequest)
			admin.PUT("/requests/:id/status", h.Admin.SetStatus)
			admin.PUT("/requests/:id/preview", h.Admin.SetPreviewLink)
			admin.GET("/requests/:id/questionnaire", h.Admin.ExportQuestionnaire)
			admin.GET("/stats", h.Admin.Stats)

			admin.GET("/contacts", h.Admin.ListContacts)
			admin.PUT("/contacts/:id/status", h.Admin.UpdateContactStatus)

			admin.GET("/users", h.Admin.ListUsers)
			admin.PUT("/users/:id/role", auth.SuperAdmin(), h.Admin.UpdateRole)
		}
	}
}
