// Package server wires services and handlers into the HTTP router.
package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/school-admin-api/api/swagger"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/repository"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/pkg/config"
	"github.com/noah-isme/school-admin-api/pkg/events"
	"github.com/noah-isme/school-admin-api/pkg/export"
	"github.com/noah-isme/school-admin-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-admin-api/pkg/middleware/requestid"
)

// New builds the router over store. A nil publisher disables change events.
func New(cfg *config.Config, store *repository.Store, publisher events.Publisher, logr *zap.Logger) *gin.Engine {
	if logr == nil {
		logr = zap.NewNop()
	}
	if publisher == nil {
		publisher = events.Nop{}
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}
	validate := service.NewValidator()
	exports := service.NewExportService(export.NewRegistry(cfg.School.Name), metrics, logr.Named("export"))

	studentSvc := service.NewStudentService(service.StudentServiceParams{
		Store: store, Validator: validate, Exports: exports, Publisher: publisher, Metrics: metrics, Logger: logr.Named("students"),
	})
	teacherSvc := service.NewTeacherService(service.TeacherServiceParams{
		Store: store, Validator: validate, Exports: exports, Publisher: publisher, Metrics: metrics, Logger: logr.Named("teachers"),
	})
	markSvc := service.NewMarkService(service.MarkServiceParams{
		Store: store, Validator: validate, Publisher: publisher, Metrics: metrics, Logger: logr.Named("marks"),
	})
	resultSvc := service.NewResultService(store, exports, logr.Named("results"))
	dashboardSvc := service.NewDashboardService(store, metrics, cfg.School.Name, logr.Named("dashboard"))

	students := handler.NewStudentHandler(studentSvc, cfg.Import.MaxFileSizeBytes)
	teachers := handler.NewTeacherHandler(teacherSvc)
	marks := handler.NewMarkHandler(markSvc)
	results := handler.NewResultHandler(resultSvc)
	dashboard := handler.NewDashboardHandler(dashboardSvc)
	probes := handler.NewMetricsHandler(metrics, nil)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics, "/metrics", "/health", "/ready"))

	r.GET("/health", probes.Health)
	r.GET("/ready", probes.Ready)
	if metrics != nil {
		r.GET("/metrics", probes.Prometheus)
	}
	if !cfg.IsProduction() {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.GET("/dashboard", dashboard.Overview)
	api.GET("/grading/scale", handler.GradingScale)

	studentRoutes := api.Group("/students")
	studentRoutes.GET("", students.List)
	studentRoutes.GET("/filters", students.Filters)
	studentRoutes.GET("/export", students.Export)
	studentRoutes.POST("", students.Create)
	studentRoutes.POST("/import", students.Import)
	studentRoutes.GET("/:id", students.Get)
	studentRoutes.DELETE("/:id", students.Delete)
	studentRoutes.GET("/:id/result", results.Get)
	studentRoutes.GET("/:id/result/export", results.Export)
	studentRoutes.PUT("/:id/marks", marks.Save)

	api.POST("/marks/preview", marks.Preview)

	teacherRoutes := api.Group("/teachers")
	teacherRoutes.GET("", teachers.List)
	teacherRoutes.GET("/filters", teachers.Filters)
	teacherRoutes.GET("/export", teachers.Export)
	teacherRoutes.POST("", teachers.Create)
	teacherRoutes.GET("/:id", teachers.Get)
	teacherRoutes.DELETE("/:id", teachers.Delete)

	return r
}
