package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-day-summary",
		Method:      http.MethodGet,
		Path:        "/forecast/day",
		Summary:     "Get a single day's weather summary",
		Description: "Fetch the daily forecast for one date (today plus offset days) and normalize it into a display-ready summary",
		Tags:        []string{"forecast"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway},
	}, app.handleGetDaySummary)

	app.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{
		Registry: app.registry,
	})))

	// Swagger UI backed by the generated OpenAPI document
	app.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
