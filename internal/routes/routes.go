package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-dashboard/internal/audit"
	"github.com/navalhaapp/barber-dashboard/internal/cache"
	"github.com/navalhaapp/barber-dashboard/internal/config"
	"github.com/navalhaapp/barber-dashboard/internal/handlers"
	infraRepo "github.com/navalhaapp/barber-dashboard/internal/infra/repository"
	"github.com/navalhaapp/barber-dashboard/internal/middleware"
	ucBooking "github.com/navalhaapp/barber-dashboard/internal/usecase/booking"
	ucCheckout "github.com/navalhaapp/barber-dashboard/internal/usecase/checkout"
	ucReport "github.com/navalhaapp/barber-dashboard/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, locker cache.Locker) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	subscriptionRepo := infraRepo.NewSubscriptionGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — AGENDA
	// ======================================================
	createVisitUC := ucBooking.NewCreateVisit(scheduleRepo, locker, auditDispatcher)
	availabilityUC := ucBooking.NewGetDayAvailability(scheduleRepo)
	listVisitsUC := ucBooking.NewListVisits(scheduleRepo)
	confirmVisitUC := ucBooking.NewConfirmVisit(scheduleRepo, auditDispatcher)
	cancelVisitUC := ucBooking.NewCancelVisit(scheduleRepo, auditDispatcher)
	completeVisitUC := ucBooking.NewCompleteVisit(scheduleRepo, subscriptionRepo, auditDispatcher)

	quoteUC := ucCheckout.NewPreviewQuote(scheduleRepo, subscriptionRepo)
	revenueUC := ucReport.NewBuildRevenueReport(scheduleRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	barberHandler := handlers.NewBarberHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)
	unavailabilityHandler := handlers.NewUnavailabilityHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createVisitUC,
		availabilityUC,
		listVisitsUC,
		confirmVisitUC,
		cancelVisitUC,
		completeVisitUC,
		quoteUC,
	)

	planHandler := handlers.NewPlanHandler(db, auditDispatcher)
	reportHandler := handlers.NewReportHandler(db, revenueUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)
			secured.GET("/me/operating-hours", barbershopHandler.GetOperatingHours)
			secured.PUT("/me/operating-hours", barbershopHandler.UpdateOperatingHours)

			secured.GET("/me/barbers", barberHandler.List)
			secured.POST("/me/barbers", barberHandler.Create)
			secured.PATCH("/me/barbers/:id", barberHandler.Update)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)

			secured.GET("/me/services", catalogHandler.ListServices)
			secured.POST("/me/services", catalogHandler.CreateService)
			secured.PATCH("/me/services/:id", catalogHandler.UpdateService)

			secured.GET("/me/products", catalogHandler.ListProducts)
			secured.POST("/me/products", catalogHandler.CreateProduct)
			secured.PATCH("/me/products/:id", catalogHandler.UpdateProduct)

			secured.GET("/me/unavailability", unavailabilityHandler.List)
			secured.POST("/me/unavailability", unavailabilityHandler.Create)
			secured.DELETE("/me/unavailability/:id", unavailabilityHandler.Delete)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.POST("/me/visits", appointmentHandler.Create)
			secured.GET("/me/visits", appointmentHandler.ListByDate)
			secured.GET("/me/visits/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/visits/:visitId/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/visits/:visitId/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/visits/:visitId/complete", appointmentHandler.Complete)
			secured.POST("/me/checkout/quote", appointmentHandler.Quote)

			// ------------------------------
			// PLANOS E ASSINATURAS
			// ------------------------------
			secured.GET("/me/plans", planHandler.List)
			secured.POST("/me/plans", planHandler.Create)
			secured.PATCH("/me/plans/:id", planHandler.Update)

			secured.GET("/me/subscriptions", planHandler.ListSubscriptions)
			secured.POST("/me/subscriptions", planHandler.Subscribe)
			secured.PATCH("/me/subscriptions/:id/cancel", planHandler.CancelSubscription)

			// ------------------------------
			// RELATÓRIOS
			// ------------------------------
			secured.GET("/me/reports/revenue", reportHandler.Revenue)
			secured.GET("/me/reports/subscriptions", reportHandler.SubscriptionRevenue)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
