package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"attribute-browser/internal/loader"
	"attribute-browser/internal/models"
	"attribute-browser/internal/navigation"
	"attribute-browser/internal/views"
)

// pageData feeds the index template.
type pageData struct {
	Source      string
	Error       string
	Options     template.HTML
	ResultCount string
	ListHTML    template.HTML
}

// pageHandler serves the browser page. The list is pre-rendered for an empty
// query so the page is usable before the script runs. A failed load renders
// only the error region.
func (a *API) pageHandler(c *gin.Context) {
	data := pageData{Source: a.source}
	if !a.Ready() {
		data.Error = loader.FailureMessage(a.source, a.loadErr)
		c.HTML(http.StatusOK, "index.tmpl", data)
		return
	}

	state := a.controller.Dispatch(navigation.EventLoad, navigation.Inputs{Effect: models.EffectAll})
	data.Options = template.HTML(views.RenderEffectOptions(a.controller.Catalog().EffectOptions(), models.EffectAll))
	data.ResultCount = state.List.Header
	data.ListHTML = template.HTML(state.HTML())
	c.HTML(http.StatusOK, "index.tmpl", data)
}

// viewHandler godoc
// @Summary Evaluate a view
// @Description Decide the active view for a navigation fragment and render it. '#/attr/{id}' selects the detail view; anything else the list filtered by q and effect.
// @Tags views
// @Produce  json
// @Param   fragment  query  string  false  "Location fragment, e.g. '#/' or '#/attr/42'"
// @Param   q         query  string  false  "Current search text"
// @Param   effect    query  string  false  "Current effect filter"  default(all)
// @Param   event     query  string  false  "Event that triggered evaluation (load, fragment, search, filter)"
// @Success 200 {object} models.ViewResponse "Evaluated view"
// @Failure 503 {object} models.APIError "Service Unavailable (the attribute document failed to load)"
// @Router /view [get]
func (a *API) viewHandler(c *gin.Context) {
	if !a.requireCatalog(c) {
		return
	}

	event := navigation.Event(c.DefaultQuery("event", string(navigation.EventFragment)))
	state := a.controller.Dispatch(event, navigation.Inputs{
		Query:    c.Query("q"),
		Effect:   c.DefaultQuery("effect", models.EffectAll),
		Fragment: c.Query("fragment"),
	})

	resp := models.ViewResponse{
		State: string(state.Route.State),
		HTML:  state.HTML(),
	}
	if state.List != nil {
		resp.ResultCount = state.List.Header
	} else {
		resp.ID = state.Route.ID
	}
	RespondWithSuccess(c, http.StatusOK, resp)
}
