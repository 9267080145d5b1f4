package navigation

import (
	"go.uber.org/zap"

	"attribute-browser/internal/catalog"
	"attribute-browser/internal/models"
	"attribute-browser/internal/views"
)

// Event names what caused a view to be re-evaluated.
type Event string

const (
	EventLoad     Event = "load"
	EventFragment Event = "fragment"
	EventSearch   Event = "search"
	EventFilter   Event = "filter"
)

// Inputs are the live values of the navigation controls at evaluation time.
type Inputs struct {
	Query    string
	Effect   string
	Fragment string
}

// ViewState is the evaluated view. Exactly one of List and Detail is set.
type ViewState struct {
	Route  Route
	List   *views.ListView
	Detail *views.DetailView
}

// HTML renders the active view's container contents.
func (v ViewState) HTML() string {
	if v.Detail != nil {
		return v.Detail.HTML()
	}
	if v.List != nil {
		return v.List.HTML()
	}
	return ""
}

// Evaluate decides and renders the view for the given control values.
// It is a pure function of its arguments.
func Evaluate(records []models.AttributeRecord, query, effect, fragment string) ViewState {
	route := ParseFragment(fragment)
	if route.State == DetailState {
		var detail views.DetailView
		if r, ok := catalog.Find(records, route.ID); ok {
			detail = views.RenderDetail(&r)
		} else {
			detail = views.RenderDetail(nil)
		}
		return ViewState{Route: route, Detail: &detail}
	}

	// Hidden records are always listed; no control excludes them.
	result := catalog.Filter(records, catalog.Query{Text: query, Effect: effect})
	list := views.RenderList(result.Records)
	return ViewState{Route: route, List: &list}
}

// Controller dispatches navigation events against a loaded catalog.
type Controller struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewController creates a Controller over c. A nil logger discards log output.
func NewController(c *catalog.Catalog, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{catalog: c, logger: logger}
}

// Catalog returns the catalog the controller evaluates against.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Dispatch evaluates the view for in. The event only affects logging; the
// same inputs always yield the same view.
func (c *Controller) Dispatch(event Event, in Inputs) ViewState {
	state := Evaluate(c.catalog.Records(), in.Query, in.Effect, in.Fragment)
	fields := []zap.Field{
		zap.String("event", string(event)),
		zap.String("state", string(state.Route.State)),
	}
	if state.List != nil {
		fields = append(fields, zap.Int("results", state.List.Count))
	} else {
		fields = append(fields, zap.String("id", state.Route.ID), zap.Bool("found", state.Detail.Found))
	}
	c.logger.Debug("View evaluated", fields...)
	return state
}
