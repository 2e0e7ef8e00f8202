package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/config"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/handler"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/middleware"
)

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		// Public endpoints.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.LoginUser)
			auth.POST("/customer/login", h.Auth.LoginCustomer)
			auth.POST("/refresh", h.Auth.Refresh)
		}
		v1.POST("/customers/signup", h.Customer.Signup)
		v1.GET("/products", h.Product.List)
		v1.GET("/products/:id", h.Product.Get)
		v1.GET("/cities", h.City.List)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/logout", h.Auth.Logout)

			management := middleware.RequireRoles(entity.RoleManagement)
			staff := middleware.RequireRoles(entity.RoleManagement, entity.RoleStoreManager)
			crew := middleware.RequireRoles(entity.RoleManagement, entity.RoleStoreManager,
				entity.RoleDriver, entity.RoleAssistant)
			customer := middleware.RequireRoles(entity.RoleCustomer)

			orders := authorized.Group("/orders")
			{
				orders.GET("", staff, h.Order.List)
				orders.GET("/history", staff, h.Order.History)
				orders.GET("/my", customer, h.Order.MyOrders)
				orders.GET("/:id", staff, h.Order.Get)
				orders.GET("/:id/space", staff, h.Order.Space)
				orders.POST("", customer, h.Order.Create)
				orders.POST("/with-items", customer, h.Order.CreateWithItems)
				orders.PUT("/:id", management, h.Order.Update)
				orders.PUT("/:id/warehouse", management, h.Order.AssignWarehouse)
				orders.DELETE("/:id", management, h.Order.Delete)
			}

			users := authorized.Group("/users", management)
			{
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.POST("", h.User.Create)
				users.PUT("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
			}

			customers := authorized.Group("/customers")
			{
				customers.GET("", management, h.Customer.List)
				customers.GET("/:id", h.Customer.Get)
				customers.PUT("/:id", h.Customer.Update)
				customers.DELETE("/:id", management, h.Customer.Delete)
			}

			products := authorized.Group("/products", management)
			{
				products.POST("", h.Product.Create)
				products.PUT("/:id", h.Product.Update)
				products.DELETE("/:id", h.Product.Delete)
			}

			stores := authorized.Group("/stores")
			{
				stores.GET("", staff, h.Store.List)
				stores.GET("/my", middleware.RequireRoles(entity.RoleStoreManager), h.Store.MyStore)
				stores.GET("/:id", staff, h.Store.Get)
				stores.GET("/:id/orders", staff, h.Store.Orders)
				stores.POST("", management, h.Store.Create)
				stores.PUT("/:id", management, h.Store.Update)
				stores.DELETE("/:id", management, h.Store.Delete)
			}

			cities := authorized.Group("/cities", staff)
			{
				cities.GET("/:id", h.City.Get)
				cities.POST("", h.City.Create)
				cities.PUT("/:id", h.City.Update)
				cities.DELETE("/:id", h.City.Delete)
			}

			stations := authorized.Group("/stations")
			{
				stations.GET("", staff, h.City.ListStations)
				stations.GET("/:id", staff, h.City.GetStation)
				stations.POST("", management, h.City.CreateStation)
				stations.PUT("/:id", management, h.City.UpdateStation)
				stations.DELETE("/:id", management, h.City.DeleteStation)
			}

			routes := authorized.Group("/routes")
			{
				routes.GET("", staff, h.Route.List)
				routes.GET("/:id", staff, h.Route.Get)
				routes.POST("", management, h.Route.Create)
				routes.PUT("/:id", management, h.Route.Update)
				routes.DELETE("/:id", management, h.Route.Delete)
			}

			trains := authorized.Group("/trains")
			{
				trains.GET("", staff, h.Train.List)
				trains.GET("/:id", staff, h.Train.Get)
				trains.POST("", management, h.Train.Create)
				trains.PUT("/:id", management, h.Train.Update)
				trains.DELETE("/:id", management, h.Train.Delete)
			}

			trainSchedules := authorized.Group("/train-schedules")
			{
				trainSchedules.GET("", staff, h.Train.ListSchedules)
				trainSchedules.GET("/next-available", staff, h.Train.NextAvailable)
				trainSchedules.GET("/:id", staff, h.Train.GetSchedule)
				trainSchedules.GET("/:id/capacity", staff, h.Train.ScheduleCapacity)
				trainSchedules.GET("/:id/capacity/check", staff, h.Train.CheckCapacity)
				trainSchedules.POST("", management, h.Train.CreateSchedule)
				trainSchedules.PUT("/:id", management, h.Train.UpdateSchedule)
				trainSchedules.DELETE("/:id", management, h.Train.DeleteSchedule)
			}

			trucks := authorized.Group("/trucks")
			{
				trucks.GET("", crew, h.Truck.List)
				trucks.GET("/:id", crew, h.Truck.Get)
				trucks.POST("", management, h.Truck.Create)
				trucks.PUT("/:id", middleware.RequireRoles(entity.RoleManagement, entity.RoleAssistant), h.Truck.Update)
				trucks.DELETE("/:id", middleware.RequireRoles(entity.RoleManagement, entity.RoleAssistant), h.Truck.Delete)
			}

			truckSchedules := authorized.Group("/truck-schedules")
			{
				truckSchedules.GET("", crew, h.Truck.ListSchedules)
				truckSchedules.GET("/:id", crew, h.Truck.GetSchedule)
				truckSchedules.POST("", staff, h.Truck.CreateSchedule)
				truckSchedules.PUT("/:id", staff, h.Truck.UpdateSchedule)
				truckSchedules.DELETE("/:id", staff, h.Truck.DeleteSchedule)
			}

			drivers := authorized.Group("/drivers", staff)
			{
				drivers.GET("", h.Truck.ListDrivers)
				drivers.GET("/:id", h.Truck.GetDriver)
				drivers.POST("", h.Truck.CreateDriver)
				drivers.PUT("/:id", h.Truck.UpdateDriver)
				drivers.DELETE("/:id", h.Truck.DeleteDriver)
			}

			assistants := authorized.Group("/assistants", staff)
			{
				assistants.GET("", h.Truck.ListAssistants)
				assistants.GET("/:id", h.Truck.GetAssistant)
				assistants.POST("", h.Truck.CreateAssistant)
				assistants.PUT("/:id", h.Truck.UpdateAssistant)
				assistants.DELETE("/:id", h.Truck.DeleteAssistant)
			}

			railAllocations := authorized.Group("/rail-allocations", staff)
			{
				railAllocations.GET("", h.Allocation.ListRail)
				railAllocations.GET("/:id", h.Allocation.GetRail)
				railAllocations.POST("", h.Allocation.CreateRail)
				railAllocations.PUT("/:id", h.Allocation.UpdateRail)
				railAllocations.DELETE("/:id", h.Allocation.DeleteRail)
			}

			truckAllocations := authorized.Group("/truck-allocations", staff)
			{
				truckAllocations.GET("", h.Allocation.ListTruck)
				truckAllocations.GET("/:id", h.Allocation.GetTruck)
				truckAllocations.POST("", h.Allocation.CreateTruck)
				truckAllocations.PUT("/:id", h.Allocation.UpdateTruck)
				truckAllocations.DELETE("/:id", h.Allocation.DeleteTruck)
			}

			reports := authorized.Group("/reports", staff)
			{
				reports.GET("/quarterly-sales", h.Report.QuarterlySales)
				reports.GET("/top-items", h.Report.TopItems)
				reports.GET("/sales-by-city", h.Report.SalesByCity)
				reports.GET("/sales-by-route", h.Report.SalesByRoute)
				reports.GET("/driver-hours", h.Report.DriverHours)
				reports.GET("/assistant-hours", h.Report.AssistantHours)
				reports.GET("/truck-usage", h.Report.TruckUsage)
				reports.GET("/customer-orders", h.Report.CustomerOrders)
			}
		}
	}
}
