package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/config"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/controllers"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/services"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/storage"
)

func SetupRouter(store storage.Store, cfg config.Config) *gin.Engine {
	catalog := services.NewCatalog(store)
	ledger := services.NewLedger(store)
	orders := services.NewOrderStore(store)
	book := services.NewAppointmentBook(store, catalog, ledger)
	roster := services.NewRoster(store, catalog)
	carts := services.NewCartManager()

	serviceController := &controllers.ServiceController{Catalog: catalog}
	clientController := &controllers.ClientController{Ledger: ledger}
	orderController := &controllers.OrderController{Orders: orders}
	posController := &controllers.POSController{Carts: carts, Catalog: catalog, Orders: orders, Ledger: ledger}
	appointmentController := &controllers.AppointmentController{Book: book}
	stylistController := &controllers.StylistController{Roster: roster}
	dashboardController := &controllers.DashboardController{Ledger: ledger, Orders: orders, Book: book}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Service catalog routes
		servicesGroup := api.Group("/services")
		{
			servicesGroup.POST("", serviceController.CreateService)
			servicesGroup.GET("", serviceController.GetServices)
			servicesGroup.DELETE("/:id", serviceController.DeleteService)
		}

		// Client ledger routes
		api.GET("/clients", clientController.GetClients)

		// Order routes
		ordersGroup := api.Group("/orders")
		{
			ordersGroup.GET("", orderController.GetOrders)
			ordersGroup.GET("/:id", orderController.GetOrder)
			ordersGroup.DELETE("/:id", orderController.DeleteOrder)
			ordersGroup.PUT("/:id/payment-status", orderController.UpdatePaymentStatus)
			ordersGroup.PUT("/:id/fulfillment-status", orderController.UpdateFulfillmentStatus)
			ordersGroup.POST("/:id/notes", orderController.AddNote)
		}

		// POS checkout routes
		cartsGroup := api.Group("/pos/carts")
		{
			cartsGroup.POST("", posController.CreateCart)
			cartsGroup.GET("/:id", posController.GetCart)
			cartsGroup.POST("/:id/items", posController.AddItem)
			cartsGroup.DELETE("/:id/items/:serviceId", posController.RemoveItem)
			cartsGroup.PUT("/:id/items/:serviceId/quantity", posController.ChangeQuantity)
			cartsGroup.GET("/:id/totals", posController.GetTotals)
			cartsGroup.POST("/:id/checkout", posController.Checkout)
		}

		// Appointment routes
		appointmentsGroup := api.Group("/appointments")
		{
			appointmentsGroup.GET("", appointmentController.GetAppointments)
			appointmentsGroup.POST("", appointmentController.CreateAppointment)
		}

		// Stylist routes
		stylistsGroup := api.Group("/stylists")
		{
			stylistsGroup.GET("", stylistController.GetStylists)
			stylistsGroup.POST("", stylistController.CreateStylist)
			stylistsGroup.DELETE("/:id", stylistController.DeleteStylist)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
