package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/api/handlers"
	"github.com/linskybing/litreview-go/internal/api/middleware"
	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// RegisterRoutes wires every endpoint onto r and returns the services so the
// caller can start background work against the same store.
func RegisterRoutes(r *gin.Engine, gormDB *gorm.DB) *application.Services {
	repos := repository.NewRepositories(gormDB)
	services := application.New(repos)
	h := handlers.New(services, repos)
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(), authMiddleware.ActiveUser())
	{
		auth.GET("/me", h.User.Me)
		auth.GET("/users/:id", h.User.GetUserByID)

		auth.GET("/feed", h.Feed.MainFeed)
		auth.GET("/posts", h.Feed.OwnPosts)

		tickets := auth.Group("/tickets")
		{
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.POST("/with-review", h.Ticket.CreateTicketWithReview)
			tickets.GET("/:id", h.Ticket.GetTicket)
			tickets.PUT("/:id", h.Ticket.UpdateTicket)
			tickets.DELETE("/:id", h.Ticket.DeleteTicket)
			tickets.POST("/:id/reviews", h.Review.CreateReview)
		}

		reviews := auth.Group("/reviews")
		{
			reviews.GET("/:id", h.Review.GetReview)
			reviews.PUT("/:id", h.Review.UpdateReview)
			reviews.DELETE("/:id", h.Review.DeleteReview)
		}

		subscriptions := auth.Group("/subscriptions")
		{
			subscriptions.GET("", h.Social.ListSubscriptions)
			subscriptions.POST("", h.Social.Follow)
			subscriptions.DELETE("/:id", h.Social.Unfollow)
		}

		blocks := auth.Group("/blocks")
		{
			blocks.GET("", h.Social.ListBlocked)
			blocks.POST("/:id", h.Social.Block)
			blocks.DELETE("/:id", h.Social.Unblock)
		}

		auth.GET("/audit/logs", h.Audit.GetAuditLogs)
		auth.GET("/images/*key", h.Image.ServeImage)
	}

	return services
}
