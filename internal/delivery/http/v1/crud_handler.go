package v1

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// CrudHandler serves list, get-by-id and create for one entity E whose
// transfer model is M. Status codes on faults are fixed per endpoint:
// list answers 500, get and create answer 400.
type CrudHandler[E any, M domain.Model[E]] struct {
	resource  string
	repo      domain.Repository[E]
	validator validation.Validator[M]
	log       *zap.Logger
}

func NewCrudHandler[E any, M domain.Model[E]](resource string, repo domain.Repository[E], validator validation.Validator[M], log *zap.Logger) *CrudHandler[E, M] {
	if repo == nil || validator == nil || log == nil {
		panic("crud handler " + resource + ": repository, validator and logger are required")
	}
	return &CrudHandler[E, M]{
		resource:  resource,
		repo:      repo,
		validator: validator,
		log:       log.With(zap.String("resource", resource)),
	}
}

// Register mounts the three routes on group.
func (h *CrudHandler[E, M]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
}

// List godoc
// @Summary      List records
// @Description  Fetch every record of the resource
// @Tags         resources
// @Produce      json
// @Param        resource  path      string  true  "Resource (email-types, industry-types, job-statuses, person-names, accounts)"
// @Success      200       {array}   object
// @Failure      500       {object}  response.GlobalErrorResponse
// @Router       /{resource} [get]
func (h *CrudHandler[E, M]) List(c *gin.Context) {
	h.log.Info("Triggering HTTP GET request")

	entities, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("An error occurred while fetching all entities", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.ErrInternalServer, err.Error())
		return
	}
	if entities == nil {
		entities = []E{}
	}

	response.Success(c, http.StatusOK, entities)
}

// Get godoc
// @Summary      Get a record
// @Description  Fetch one record by its identifier; 404 with an empty body when absent
// @Tags         resources
// @Produce      json
// @Param        resource  path      string  true  "Resource"
// @Param        id        path      int     true  "Identifier"
// @Success      200       {object}  object
// @Failure      400       {object}  response.GlobalErrorResponse
// @Failure      404
// @Router       /{resource}/{id} [get]
func (h *CrudHandler[E, M]) Get(c *gin.Context) {
	h.log.Info("Triggering HTTP GET request", zap.String("id", c.Param("id")))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrSystemException, fmt.Sprintf("The value '%s' is not a valid identifier.", c.Param("id")))
		return
	}

	entity, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.log.Error("An error occurred while fetching the data", zap.Int64("id", id), zap.Error(err))
		response.Error(c, http.StatusBadRequest, response.ErrSystemException, err.Error())
		return
	}

	response.Success(c, http.StatusOK, entity)
}

// Create godoc
// @Summary      Create a record
// @Description  Validate the body and persist it; a missing or null body answers 400 with an empty body
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resource  path      string  true  "Resource"
// @Param        body      body      object  true  "Transfer model"
// @Success      200       {object}  object
// @Failure      400       {object}  response.ValidationErrorResponse
// @Router       /{resource} [post]
func (h *CrudHandler[E, M]) Create(c *gin.Context) {
	h.log.Info("Triggering HTTP POST request")

	model, err := decodeBody[M](c.Request.Body)
	if err != nil {
		h.log.Warn("Malformed request body", zap.Error(err))
		response.Error(c, http.StatusBadRequest, response.ErrSystemException, err.Error())
		return
	}
	if model == nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	result := h.validator.Validate(*model)
	if !result.IsValid() {
		response.Validation(c, http.StatusBadRequest, result)
		return
	}

	entity, err := (*model).ToEntity()
	if err != nil {
		h.log.Error("Error occurred while creating the entity", zap.Error(err))
		response.Error(c, http.StatusBadRequest, response.ErrSystemException, err.Error())
		return
	}

	created, err := h.repo.Add(c.Request.Context(), entity)
	if err != nil {
		h.log.Error("Error occurred while creating the entity", zap.Error(err))
		response.Error(c, http.StatusBadRequest, response.ErrSystemException, err.Error())
		return
	}

	response.Success(c, http.StatusOK, created)
}

// decodeBody returns nil for an empty body or a JSON null.
func decodeBody[M any](body io.Reader) (*M, error) {
	if body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var model *M
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	return model, nil
}
