package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/configs"
	"github.com/hgpnguyen/restaurant/controllers"
	"github.com/hgpnguyen/restaurant/entity"
	"github.com/hgpnguyen/restaurant/middlewares"
	"github.com/hgpnguyen/restaurant/repository"
	"github.com/hgpnguyen/restaurant/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", middlewares.MetricsHandler())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	groupSvc := services.NewGroupService(userRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(catalogRepo)
	catCtrl := controllers.NewCategoryController(catalogRepo)
	managerRoster := controllers.NewGroupController(groupSvc, entity.GroupManager)
	crewRoster := controllers.NewGroupController(groupSvc, entity.GroupDeliveryCrew)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Middleware chains per required role set
	authed := middlewares.AuthMiddleware(db, cfg.JWTSecret)
	manager := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleManager)
	managerOrCrew := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleManager, entity.RoleDeliveryCrew)

	// Auth (public + protected)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Catalog: reads need a login, writes need a manager
	r.GET("/menu-items", authed, menuCtrl.List)
	r.POST("/menu-items", manager, menuCtrl.Create)
	r.GET("/menu-items/category", authed, catCtrl.List)
	r.POST("/menu-items/category", manager, catCtrl.Create)
	r.GET("/menu-items/category/:id", authed, catCtrl.Get)
	r.PUT("/menu-items/category/:id", manager, catCtrl.Update)
	r.PATCH("/menu-items/category/:id", manager, catCtrl.Update)
	r.DELETE("/menu-items/category/:id", manager, catCtrl.Delete)
	r.GET("/menu-items/:id", authed, menuCtrl.Get)
	r.PUT("/menu-items/:id", manager, menuCtrl.Update)
	r.PATCH("/menu-items/:id", manager, menuCtrl.Update)
	r.DELETE("/menu-items/:id", manager, menuCtrl.Delete)

	// Role-group rosters (manager only)
	g := r.Group("/groups", manager)
	{
		g.GET("/manager/users", managerRoster.List)
		g.POST("/manager/users", managerRoster.Add)
		g.DELETE("/manager/users/:id", managerRoster.Remove)

		g.GET("/delivery-crew/users", crewRoster.List)
		g.POST("/delivery-crew/users", crewRoster.Add)
		g.DELETE("/delivery-crew/users/:id", crewRoster.Remove)
	}

	// Caller's own cart
	cart := r.Group("/cart", authed)
	{
		cart.GET("/menu-items", cartCtrl.List)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.DELETE("/menu-items", cartCtrl.Clear)
	}

	// Orders
	r.GET("/orders", authed, orderCtrl.List)
	r.POST("/orders", authed, orderCtrl.Create)
	r.GET("/orders/:id", authed, orderCtrl.Detail)
	r.PUT("/orders/:id", manager, orderCtrl.Update)
	r.PATCH("/orders/:id", managerOrCrew, orderCtrl.PartialUpdate)
	r.DELETE("/orders/:id", manager, orderCtrl.Delete)
}
