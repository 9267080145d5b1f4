package handlers

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "attribute-browser/docs" // Registers the swagger spec
	"attribute-browser/internal/loader"
	"attribute-browser/internal/models"
	"attribute-browser/internal/navigation"
)

//go:embed assets/templates/*.tmpl assets/static/*
var assets embed.FS

// API serves the attribute browser page and its JSON endpoints.
// When the attribute document failed to load, controller is nil and every
// data endpoint answers 503.
type API struct {
	controller *navigation.Controller
	source     string
	loadErr    error
	logger     *zap.Logger
}

// NewAPI creates an API over a loaded catalog.
func NewAPI(controller *navigation.Controller, source string, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{controller: controller, source: source, logger: logger}
}

// NewFailedAPI creates an API for a document that could not be loaded. It
// serves only the error message.
func NewFailedAPI(source string, loadErr error, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{source: source, loadErr: loadErr, logger: logger}
}

// Ready reports whether the attribute document loaded.
func (a *API) Ready() bool {
	return a.controller != nil
}

// NewRouter builds a gin engine with logging middleware, the page template,
// static assets, swagger UI and the API routes.
func NewRouter(a *API) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(assets, "assets/templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(assets, "assets/static")
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(RequestID(), RequestLogger(a.logger), gin.Recovery())
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(static))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	a.RegisterRoutes(router)
	return router, nil
}

// RegisterRoutes registers the page, view and API routes with the given Gin router.
func (a *API) RegisterRoutes(router *gin.Engine) {
	router.GET("/", a.pageHandler)
	router.GET("/view", a.viewHandler)
	router.GET("/healthz", a.healthHandler)

	v1 := router.Group("/api/v1")
	{
		attributeRoutes := v1.Group("/attributes")
		{
			attributeRoutes.GET("", a.listAttributesHandler)
			attributeRoutes.GET("/:attribute_id", a.getAttributeHandler)
		}
		v1.GET("/effects", a.listEffectsHandler)
	}
}

// requireCatalog answers 503 and returns false when no catalog is loaded.
func (a *API) requireCatalog(c *gin.Context) bool {
	if a.Ready() {
		return true
	}
	RespondWithError(c, http.StatusServiceUnavailable, models.ErrorCodeServiceUnavailable,
		loader.FailureMessage(a.source, a.loadErr), gin.H{"source": a.source})
	return false
}

// healthHandler reports whether the attribute document loaded.
func (a *API) healthHandler(c *gin.Context) {
	if !a.Ready() {
		c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
			Status: "degraded",
			Error:  loader.FailureMessage(a.source, a.loadErr),
		})
		return
	}
	RespondWithSuccess(c, http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Records: a.controller.Catalog().Len(),
	})
}
