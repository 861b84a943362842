package handlers

import (
	"strings"

	"github.com/devlogkr/blog_backend/cmd/docs"
	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/middleware"
	"github.com/devlogkr/blog_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	registerAuthRoutes(r, services)
	registerPostRoutes(r, services)
	registerCommentRoutes(r, services)

	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators installs the "notblank" rule used by request
// DTOs: required catches absent fields, notblank catches whitespace-only
// ones.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}

// registerAuthRoutes sets up the public authentication routes. Credential
// endpoints are rate limited per IP.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, services.GoogleAuth)

	// 5 requests per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", limitMiddleware, h.Signup)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/google", limitMiddleware, h.GoogleLogin)
		auth.GET("/me", middleware.AuthMiddleware(services.Token, services.User), h.Me)
	}
}

// registerPostRoutes sets up the post routes. Reads are public; mutations
// require a bearer token.
func registerPostRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewPostHandler(services.Post, services.Uploader)
	requireAuth := middleware.AuthMiddleware(services.Token, services.User)

	posts := r.Group("/api/posts")
	{
		posts.GET("", h.ListPosts)
		posts.GET("/:id", h.GetPost)
		posts.POST("", requireAuth, h.CreatePost)
		posts.PUT("/:id", requireAuth, h.UpdatePost)
		posts.DELETE("/:id", requireAuth, h.DeletePost)
		posts.POST("/:id/like", requireAuth, h.ToggleLike)
	}
}

// registerCommentRoutes sets up the comment routes under posts plus the
// comment-addressed mutations.
func registerCommentRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewCommentHandler(services.Comment)
	requireAuth := middleware.AuthMiddleware(services.Token, services.User)

	posts := r.Group("/api/posts")
	{
		posts.GET("/:id/comments", h.ListComments)
		posts.POST("/:id/comments", requireAuth, h.CreateComment)
	}

	comments := r.Group("/api/comments", requireAuth)
	{
		comments.DELETE("/:id", h.DeleteComment)
		comments.POST("/:id/like", h.ToggleCommentLike)
		comments.POST("/:id/dislike", h.ToggleCommentDislike)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
