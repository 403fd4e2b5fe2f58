package routes

import (
	"log/slog"
	"net/http"

	"github.com/AmaraNavaneetha/Flavour-Hub/configs"
	"github.com/AmaraNavaneetha/Flavour-Hub/controllers"
	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/middlewares"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/metrics"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"
	"github.com/AmaraNavaneetha/Flavour-Hub/services"
	"github.com/AmaraNavaneetha/Flavour-Hub/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps is everything the routes need from main.
type Deps struct {
	DB        *gorm.DB
	Config    *configs.Config
	Log       *slog.Logger
	Metrics   *metrics.ServerMetrics
	Hub       *ws.OrderHub
	Publisher services.OrderPublisher
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	r.Use(middlewares.Recovery(d.Log))
	r.Use(middlewares.RequestLogger(d.Log))
	r.Use(middlewares.Metrics(d.Metrics))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	r.Static("/uploads", cfg.UploadDir)

	// Repositories
	userRepo := repository.NewUserRepository(d.DB)
	catRepo := repository.NewCategoryRepository(d.DB)
	itemRepo := repository.NewFoodItemRepository(d.DB)
	typeRepo := repository.NewItemTypeRepository(d.DB)
	orderRepo := repository.NewOrderRepository(d.DB)
	sessRepo := repository.NewSessionRepository(d.DB)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(itemRepo, d.Metrics)
	orderSvc := services.NewOrderService(d.DB, orderRepo, d.Publisher, d.Metrics, d.Log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(services.NewMenuService(catRepo, itemRepo))
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(
		services.NewCategoryService(catRepo, cfg.UploadDir),
		services.NewFoodItemService(itemRepo, catRepo, typeRepo, cfg.UploadDir),
		services.NewItemTypeService(typeRepo),
		services.NewDashboardService(userRepo, catRepo, itemRepo, orderRepo),
		cfg.UploadDir,
	)

	withSession := middlewares.SessionMiddleware(sessRepo, cfg.SessionCookie, cfg.SessionTTL, d.Log)
	optionalAuth := middlewares.OptionalAuth(cfg.JWTSecret)
	requireAuth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", withSession, authCtrl.Logout)
	}

	// Auth (protected)
	aAuth := a.Group("", requireAuth, withSession)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Menu (public)
	m := r.Group("/menu")
	{
		m.GET("/categories", menuCtrl.Categories)
		m.GET("/items", menuCtrl.Items)
		m.GET("/items/:id", menuCtrl.Item)
	}

	// Cart: guests may shop, checkout asks for a login
	cartG := r.Group("/cart", optionalAuth, withSession)
	{
		cartG.GET("", cartCtrl.Get)
		cartG.POST("/items/:id", cartCtrl.Add)
		cartG.POST("/items/:id/decrement", cartCtrl.Decrement)
		cartG.DELETE("/items/:id", cartCtrl.Remove)
		cartG.GET("/checkout", cartCtrl.Checkout)
	}

	// Orders (user)
	r.POST("/orders", optionalAuth, withSession, orderCtrl.Place)
	u := r.Group("/orders", requireAuth)
	{
		u.GET("", orderCtrl.ListMine)
		u.GET("/:id", orderCtrl.DetailMine)
	}

	// Staff order board
	staff := r.Group("/staff/orders")
	{
		staff.GET("/live", middlewares.WSAuthMiddleware(cfg.JWTSecret, entity.StaffRoles()...), d.Hub.Serve)
		board := staff.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, entity.StaffRoles()...))
		board.GET("", orderCtrl.Board)
		board.GET("/:id", orderCtrl.Detail)
	}

	// Admin (admin only)
	ad := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		ad.GET("/dashboard", adminCtrl.GetDashboard)

		ad.GET("/categories", adminCtrl.ListCategories)
		ad.GET("/categories/:id", adminCtrl.GetCategory)
		ad.POST("/categories", adminCtrl.CreateCategory)
		ad.PUT("/categories/:id", adminCtrl.UpdateCategory)
		ad.PATCH("/categories/:id/status", adminCtrl.ToggleCategory)
		ad.DELETE("/categories/:id", adminCtrl.DeleteCategory)

		ad.GET("/item-types", adminCtrl.ListItemTypes)
		ad.POST("/item-types", adminCtrl.CreateItemType)

		ad.GET("/food-items", adminCtrl.ListFoodItems)
		ad.GET("/food-items/:id", adminCtrl.GetFoodItem)
		ad.POST("/food-items", adminCtrl.CreateFoodItem)
		ad.PUT("/food-items/:id", adminCtrl.UpdateFoodItem)
		ad.PATCH("/food-items/:id/availability", adminCtrl.SetAvailability)
		ad.PATCH("/food-items/:id/tags", adminCtrl.SetTags)
		ad.DELETE("/food-items/:id", adminCtrl.DeleteFoodItem)
	}
}
