package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/audit"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/auth"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/config"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/luxe-beauties-api/internal/infra/repository"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/logger"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/metrics"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/middleware"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/payment"
	ucAppointment "github.com/BruksfildServices01/luxe-beauties-api/internal/usecase/appointment"
)

// Dependencies are the process-wide singletons the routes are built from.
type Dependencies struct {
	Config *config.Config
	Logger *logger.Logger

	Users        *infraRepo.UserMemoryRepository
	Products     *infraRepo.ProductMemoryRepository
	Orders       *infraRepo.OrderMemoryRepository
	Appointments *infraRepo.AppointmentMemoryRepository

	AuditLogger *audit.Logger
	Audit       *audit.Dispatcher

	Tokens   *auth.TokenService
	Payments *payment.Gateway

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	logg := deps.Logger
	if logg == nil {
		logg = logger.Nop()
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Recoverer(logg),
		deps.Metrics.Middleware(),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		deps.Appointments,
		deps.Audit,
	)
	listAppointmentsUC := ucAppointment.NewListAppointments(
		deps.Appointments,
	)
	updateAppointmentUC := ucAppointment.NewUpdateAppointmentStatus(
		deps.Appointments,
		deps.Audit,
		logg,
		deps.Config.StrictStatusTransitions,
	)
	confirmPaymentUC := ucAppointment.NewConfirmAppointmentPayment(
		deps.Appointments,
		deps.Audit,
	)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		deps.Appointments,
		deps.Audit,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	credentials := auth.NewCredentialService(deps.Users, deps.Config.BcryptCost)

	publicHandler := handlers.NewPublicHandler()
	authHandler := handlers.NewAuthHandler(credentials, deps.Tokens)
	productHandler := handlers.NewProductHandler(deps.Products)
	orderHandler := handlers.NewOrderHandler(deps.Orders, deps.Audit)
	paymentHandler := handlers.NewPaymentHandler(deps.Payments)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		updateAppointmentUC,
		confirmPaymentUC,
		deleteAppointmentUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditLogger)

	requireAuth := middleware.AuthMiddleware(deps.Tokens, logg)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/", publicHandler.Root)
	r.GET("/health", publicHandler.Health)
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// CATALOG (admin routes are unauthenticated)
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.POST("/products", productHandler.Create)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		// ------------------------------
		// ORDERS
		// ------------------------------
		api.GET("/orders", orderHandler.List)
		api.POST("/orders", requireAuth, orderHandler.Create)

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		api.POST("/create-payment-intent", requireAuth, paymentHandler.CreatePaymentIntent)
		api.POST("/stripe-webhook", paymentHandler.StripeWebhook)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.ListAll)

		secured := api.Group("/")
		secured.Use(requireAuth)
		{
			secured.GET("/appointments/my", appointmentHandler.ListMine)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.POST("/appointments/:id/confirm-payment", appointmentHandler.ConfirmPayment)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
