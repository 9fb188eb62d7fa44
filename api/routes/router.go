package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/autolane/auctionflow-backend/api/controllers"
	"github.com/autolane/auctionflow-backend/api/middleware"
	"github.com/autolane/auctionflow-backend/internal/documents"
	"github.com/autolane/auctionflow-backend/internal/purchases"
	"github.com/autolane/auctionflow-backend/internal/workflow"
	"github.com/autolane/auctionflow-backend/pkg/config"
	"github.com/autolane/auctionflow-backend/pkg/db"
	"github.com/autolane/auctionflow-backend/pkg/logger"
	"github.com/autolane/auctionflow-backend/pkg/metrics"
	"github.com/autolane/auctionflow-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	purchaseService purchases.Service,
	workflowService workflow.Service,
	documentService documents.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/purchases", func(r chi.Router) {
			r.Post("/", controllers.PurchaseCreate(purchaseService, logg))
			r.Get("/", controllers.PurchaseList(purchaseService, logg))

			r.Route("/{purchaseId}", func(r chi.Router) {
				r.Get("/", controllers.PurchaseDetail(purchaseService, logg))
				r.Post("/payments", controllers.PaymentRecord(purchaseService, logg))
				r.Put("/shipment", controllers.ShipmentUpdate(purchaseService, logg))
				r.Route("/documents", func(r chi.Router) {
					r.Get("/", controllers.DocumentList(documentService, logg))
					r.Post("/", controllers.DocumentUpload(documentService, logg))
					r.Delete("/{documentId}", controllers.DocumentDelete(documentService, logg))
				})
			})
		})

		r.Route("/workflows/{workflowId}", func(r chi.Router) {
			r.Get("/tasks", controllers.WorkflowTaskProgress(workflowService, logg))
			r.Get("/progress", controllers.WorkflowProgress(workflowService, logg))
			r.Get("/customer-view", controllers.WorkflowCustomerView(workflowService, logg))
			r.Get("/summary", controllers.WorkflowSummary(workflowService, logg))
			r.Put("/checklist", controllers.ChecklistItemSet(workflowService, logg))
			r.Put("/documents-branch", controllers.DocumentsBranchSet(workflowService, logg))
			r.Put("/stage", controllers.CurrentStageSet(workflowService, logg))
		})
	})

	return r
}
