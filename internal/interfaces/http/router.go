package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	articleUC "github.com/roblesfd/helpdesk-backend/internal/application/article/usecases"
	authUC "github.com/roblesfd/helpdesk-backend/internal/application/auth/usecases"
	categoryUC "github.com/roblesfd/helpdesk-backend/internal/application/category/usecases"
	commentUC "github.com/roblesfd/helpdesk-backend/internal/application/comment/usecases"
	notificationUC "github.com/roblesfd/helpdesk-backend/internal/application/notification/usecases"
	tagUC "github.com/roblesfd/helpdesk-backend/internal/application/tag/usecases"
	ticketUC "github.com/roblesfd/helpdesk-backend/internal/application/ticket/usecases"
	userUC "github.com/roblesfd/helpdesk-backend/internal/application/user/usecases"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/auth"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/config"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/email"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/ratelimit"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/repository"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/handlers"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/middleware"
	"github.com/roblesfd/helpdesk-backend/internal/interfaces/http/routes"
	db "github.com/roblesfd/helpdesk-backend/internal/shared/db"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
	"github.com/roblesfd/helpdesk-backend/internal/shared/services/markdown"
)

// loginRateLimit bounds credential-guessing attempts per client IP.
var loginRateLimit = ratelimit.RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   60,
	RequestsPerDay:    300,
}

// Router assembles the Gin engine, handlers and middleware for the API.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	logger         logger.Interface
	authMiddleware *middleware.AuthMiddleware
	loginLimit     gin.HandlerFunc

	userHandler         *handlers.UserHandler
	authHandler         *handlers.AuthHandler
	ticketHandler       *handlers.TicketHandler
	commentHandler      *handlers.CommentHandler
	notificationHandler *handlers.NotificationHandler
	articleHandler      *handlers.ArticleHandler
	categoryHandler     *handlers.CategoryHandler
	tagHandler          *handlers.TagHandler
}

// NewRouter wires repositories, services and use cases into HTTP handlers.
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	tokenGenerator := auth.NewConfirmationTokenGenerator()

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.Host,
		Port:        cfg.Email.Port,
		Username:    cfg.Email.Username,
		Password:    cfg.Email.Password,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	renderer := markdown.NewMarkdownService()

	limiter := newRateLimiter(cfg)

	createUserUC := userUC.NewCreateUserUseCase(userRepo, hasher, tokenGenerator, emailService, log)
	updateUserUC := userUC.NewUpdateUserUseCase(userRepo, hasher, log)
	deleteUserUC := userUC.NewDeleteUserUseCase(userRepo, ticketRepo, commentRepo, notificationRepo, txManager, log)
	getUserUC := userUC.NewGetUserUseCase(userRepo, log)
	listUsersUC := userUC.NewListUsersUseCase(userRepo, log)

	loginUC := authUC.NewLoginUseCase(userRepo, hasher, jwtService, log)
	confirmAccountUC := authUC.NewConfirmAccountUseCase(userRepo, log)

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, userRepo, log)
	updateTicketUC := ticketUC.NewUpdateTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketUC.NewDeleteTicketUseCase(ticketRepo, commentRepo, txManager, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, log)

	createCommentUC := commentUC.NewCreateCommentUseCase(commentRepo, ticketRepo, log)
	getCommentUC := commentUC.NewGetCommentUseCase(commentRepo, log)
	listCommentsUC := commentUC.NewListCommentsUseCase(commentRepo, log)
	deleteCommentUC := commentUC.NewDeleteCommentUseCase(commentRepo, log)

	createNotificationUC := notificationUC.NewCreateNotificationUseCase(notificationRepo, userRepo, log)
	getNotificationUC := notificationUC.NewGetNotificationUseCase(notificationRepo, log)
	listNotificationsUC := notificationUC.NewListNotificationsUseCase(notificationRepo, log)
	markNotificationReadUC := notificationUC.NewMarkNotificationReadUseCase(notificationRepo, log)
	deleteNotificationUC := notificationUC.NewDeleteNotificationUseCase(notificationRepo, log)

	createArticleUC := articleUC.NewCreateArticleUseCase(articleRepo, categoryRepo, renderer, log)
	updateArticleUC := articleUC.NewUpdateArticleUseCase(articleRepo, log)
	getArticleUC := articleUC.NewGetArticleUseCase(articleRepo, renderer, log)
	listArticlesUC := articleUC.NewListArticlesUseCase(articleRepo, log)
	searchArticlesUC := articleUC.NewSearchArticlesUseCase(articleRepo, log)
	deleteArticleUC := articleUC.NewDeleteArticleUseCase(articleRepo, log)

	createCategoryUC := categoryUC.NewCreateCategoryUseCase(categoryRepo, log)
	listCategoriesUC := categoryUC.NewListCategoriesUseCase(categoryRepo, log)
	deleteCategoryUC := categoryUC.NewDeleteCategoryUseCase(categoryRepo, articleRepo, txManager, log)

	createTagUC := tagUC.NewCreateTagUseCase(tagRepo, log)
	listTagsUC := tagUC.NewListTagsUseCase(tagRepo, log)
	deleteTagUC := tagUC.NewDeleteTagUseCase(tagRepo, log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		logger:         log,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		loginLimit:     middleware.RateLimit(limiter, "login", loginRateLimit, log),

		userHandler:         handlers.NewUserHandler(createUserUC, updateUserUC, deleteUserUC, getUserUC, listUsersUC),
		authHandler:         handlers.NewAuthHandler(loginUC, confirmAccountUC),
		ticketHandler:       handlers.NewTicketHandler(createTicketUC, updateTicketUC, deleteTicketUC, getTicketUC, listTicketsUC),
		commentHandler:      handlers.NewCommentHandler(createCommentUC, getCommentUC, listCommentsUC, deleteCommentUC),
		notificationHandler: handlers.NewNotificationHandler(createNotificationUC, getNotificationUC, listNotificationsUC, markNotificationReadUC, deleteNotificationUC),
		articleHandler:      handlers.NewArticleHandler(createArticleUC, updateArticleUC, getArticleUC, listArticlesUC, searchArticlesUC, deleteArticleUC),
		categoryHandler:     handlers.NewCategoryHandler(createCategoryUC, listCategoriesUC, deleteCategoryUC),
		tagHandler:          handlers.NewTagHandler(createTagUC, listTagsUC, deleteTagUC),
	}
}

// newRateLimiter falls back to a no-op limiter when Redis is disabled so
// single-instance deployments need no extra infrastructure.
func newRateLimiter(cfg *config.Config) ratelimit.RateLimiter {
	if !cfg.Redis.Enabled {
		return ratelimit.NewNoopRateLimiter()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return ratelimit.NewRedisRateLimiter(client)
}

// SetupRoutes registers global middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		LoginLimit:  r.loginLimit,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCommentRoutes(r.engine, &routes.CommentRouteConfig{
		CommentHandler: r.commentHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
	})
	routes.SetupArticleRoutes(r.engine, &routes.ArticleRouteConfig{
		ArticleHandler: r.articleHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		CategoryHandler: r.categoryHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupTagRoutes(r.engine, &routes.TagRouteConfig{
		TagHandler:     r.tagHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine exposes the underlying Gin engine to the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
