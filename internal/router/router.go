package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openlearn/lms-gateway/internal/handler"
	"github.com/openlearn/lms-gateway/internal/middleware"
	"github.com/openlearn/lms-gateway/internal/models"
	"github.com/openlearn/lms-gateway/internal/service"
	"github.com/openlearn/lms-gateway/internal/upstream"
	"github.com/openlearn/lms-gateway/internal/validate"
	"github.com/openlearn/lms-gateway/pkg/config"
	"github.com/openlearn/lms-gateway/pkg/logger"
	corsmiddleware "github.com/openlearn/lms-gateway/pkg/middleware/cors"
	reqidmiddleware "github.com/openlearn/lms-gateway/pkg/middleware/requestid"
	"github.com/openlearn/lms-gateway/pkg/session"
)

// Deps carries the shared infrastructure the route table needs.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Sessions *session.Manager
	Metrics  *service.MetricsService
	Upstream *upstream.Client
}

// New wires middleware, services and handlers into a Gin engine.
func New(deps Deps) *gin.Engine {
	v := validate.New()

	authSvc := service.NewAuthService(deps.Upstream, v, deps.Logger, deps.Config.JWT.Secret)
	userSvc := service.NewUserService(deps.Upstream, v, deps.Logger)
	topicSvc := service.NewTopicService(deps.Upstream, v, deps.Logger)
	lessonSvc := service.NewLessonService(deps.Upstream, v, deps.Logger)
	assessmentSvc := service.NewAssessmentService(deps.Upstream, v, deps.Logger)
	communitySvc := service.NewCommunityService(deps.Upstream, v, deps.Logger)

	authHandler := handler.NewAuthHandler(authSvc, deps.Sessions, deps.Logger)
	userHandler := handler.NewUserHandler(userSvc)
	topicHandler := handler.NewTopicHandler(topicSvc)
	lessonHandler := handler.NewLessonHandler(lessonSvc)
	assessmentHandler := handler.NewAssessmentHandler(assessmentSvc)
	communityHandler := handler.NewCommunityHandler(communitySvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(deps.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Legacy topic URLs predate the dashboard; they always redirect.
	r.GET("/topics/:slug", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	api := r.Group("/api", middleware.Authenticate(deps.Sessions, authSvc))

	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/session", middleware.RequireAuth(), authHandler.Session)

	users := api.Group("/users", middleware.RequireAuth())
	{
		users.GET("", middleware.RequireRoles(models.RoleAdmin), userHandler.List)
		users.POST("", middleware.RequireRoles(models.RoleAdmin), userHandler.Create)
		users.GET("/:id", middleware.SelfOrAdmin("id"), userHandler.Get)
		users.PUT("/:id", middleware.SelfOrAdmin("id"), userHandler.Update)
		users.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), userHandler.Delete)
		users.PUT("/:id/password", middleware.SelfOrAdmin("id"), userHandler.UpdatePassword)
		users.PUT("/:id/profile-image", middleware.SelfOrAdmin("id"), userHandler.UpdateProfileImage)
		users.PUT("/:id/profile", middleware.SelfOrAdmin("id"), userHandler.UpdateProfile)
	}

	topics := api.Group("/topics")
	{
		topics.GET("", topicHandler.List)
		topics.GET("/:id", topicHandler.Get)
		topics.POST("", middleware.RequireAuth(), middleware.RequireRoles(models.RoleTeacher), topicHandler.Create)
		topics.PUT("/:id", middleware.RequireAuth(), middleware.RequireRoles(models.RoleTeacher), topicHandler.Update)
		topics.DELETE("/:id", middleware.RequireAuth(), middleware.RequireRoles(models.RoleAdmin), topicHandler.Delete)
	}

	lessons := api.Group("/lessons")
	{
		lessons.GET("", lessonHandler.List)
		lessons.GET("/:id", lessonHandler.Get)
		lessons.POST("", middleware.RequireAuth(), middleware.RequireRoles(models.RoleTeacher), lessonHandler.Create)
		lessons.PUT("/:id", middleware.RequireAuth(), middleware.RequireRoles(models.RoleTeacher), lessonHandler.Update)
		lessons.DELETE("/:id", middleware.RequireAuth(), middleware.RequireRoles(models.RoleTeacher), lessonHandler.Delete)
	}

	assessments := api.Group("/assessments", middleware.RequireAuth())
	{
		assessments.GET("", assessmentHandler.List)
		assessments.GET("/:id", assessmentHandler.Get)
		assessments.POST("", middleware.RequireRoles(models.RoleTeacher), assessmentHandler.Create)
		assessments.PUT("/:id", middleware.RequireRoles(models.RoleTeacher), assessmentHandler.Update)
		assessments.DELETE("/:id", middleware.RequireRoles(models.RoleTeacher), assessmentHandler.Delete)
		assessments.POST("/:id/submit", assessmentHandler.Submit)
	}

	community := api.Group("/community", middleware.RequireAuth())
	{
		community.GET("/posts", communityHandler.ListPosts)
		community.POST("/posts", communityHandler.CreatePost)
		community.GET("/posts/:id", communityHandler.GetPost)
		community.PUT("/posts/:id", communityHandler.UpdatePost)
		community.DELETE("/posts/:id", communityHandler.DeletePost)
		community.POST("/replies", communityHandler.CreateReply)
		community.DELETE("/replies/:id", communityHandler.DeleteReply)
	}

	return r
}
