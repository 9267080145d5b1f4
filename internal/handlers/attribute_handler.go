package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"attribute-browser/internal/catalog"
	"attribute-browser/internal/models"
)

// Constants for pagination of the attribute list
const (
	DefaultAttributeLimit = 50
	MaxAttributeLimit     = 500
)

// listAttributesHandler godoc
// @Summary List attributes
// @Description Search attributes by free text and effect type. Results keep the numeric id order.
// @Tags attributes
// @Produce  json
// @Param   q       query  string  false  "Free-text query, matched case-insensitively against name, class and description, or exactly against id"
// @Param   effect  query  string  false  "Effect type, 'none' for records without one, or 'all'"  default(all)
// @Param   limit   query  int     false  "Maximum number of items to return"  default(50)
// @Param   offset  query  int     false  "Number of matching items to skip"  default(0)
// @Success 200 {object} models.AttributeListResponse "Matching attributes; count is the total before pagination"
// @Failure 400 {object} models.APIError "Bad Request (e.g., non-numeric limit - see 'code' for VALIDATION_ERROR)"
// @Failure 503 {object} models.APIError "Service Unavailable (the attribute document failed to load)"
// @Router /api/v1/attributes [get]
func (a *API) listAttributesHandler(c *gin.Context) {
	if !a.requireCatalog(c) {
		return
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultAttributeLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid limit parameter: not a number.", gin.H{"limit": limitStr})
		return
	}
	if limit <= 0 {
		limit = DefaultAttributeLimit
	} else if limit > MaxAttributeLimit {
		limit = MaxAttributeLimit
	}

	offsetStr := c.DefaultQuery("offset", "0")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid offset parameter: not a number.", gin.H{"offset": offsetStr})
		return
	}
	if offset < 0 {
		offset = 0
	}

	result := a.controller.Catalog().Search(catalog.Query{
		Text:   c.Query("q"),
		Effect: c.DefaultQuery("effect", models.EffectAll),
	})

	start := min(offset, result.Count)
	end := min(start+limit, result.Count)
	RespondWithSuccess(c, http.StatusOK, models.AttributeListResponse{
		Count: result.Count,
		Items: result.Records[start:end],
	})
}

// getAttributeHandler godoc
// @Summary Get an attribute by id
// @Description Get a single normalized attribute, including its original source record.
// @Tags attributes
// @Produce  json
// @Param   attribute_id  path  string  true  "Attribute id (the source document key)"
// @Success 200 {object} models.AttributeRecord "The attribute"
// @Failure 404 {object} models.APIError "Not Found (see 'code' for ATTRIBUTE_NOT_FOUND)"
// @Failure 503 {object} models.APIError "Service Unavailable (the attribute document failed to load)"
// @Router /api/v1/attributes/{attribute_id} [get]
func (a *API) getAttributeHandler(c *gin.Context) {
	if !a.requireCatalog(c) {
		return
	}

	attributeID := c.Param("attribute_id")
	attribute, ok := a.controller.Catalog().Lookup(attributeID)
	if !ok {
		RespondWithError(c, http.StatusNotFound, models.ErrorCodeAttributeNotFound, "Attribute not found", gin.H{"attribute_id": attributeID})
		return
	}
	RespondWithSuccess(c, http.StatusOK, attribute)
}

// listEffectsHandler godoc
// @Summary List effect filter options
// @Description 'all' followed by each distinct effect type in first-seen order, with 'none' for records without one.
// @Tags attributes
// @Produce  json
// @Success 200 {array} string "Effect options"
// @Failure 503 {object} models.APIError "Service Unavailable (the attribute document failed to load)"
// @Router /api/v1/effects [get]
func (a *API) listEffectsHandler(c *gin.Context) {
	if !a.requireCatalog(c) {
		return
	}
	RespondWithSuccess(c, http.StatusOK, a.controller.Catalog().EffectOptions())
}
