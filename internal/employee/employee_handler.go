package employee

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/nirajdighe005/alj-java-challenge/internal/shared/apperror"
	"github.com/nirajdighe005/alj-java-challenge/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("employee.handler")}
}

// writeServiceError is the single point where service failures become HTTP
// responses.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Error("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString("request_id")),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Exception(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) writeInvalidFields(c *gin.Context, fields []string) {
	h.logger.Warn("employee request validation failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString("request_id")),
		zap.Strings("fields", fields),
	)
	response.InvalidFields(c, http.StatusBadRequest, strings.Join(fields, ","))
}

// pathID parses and bounds-checks the employeeId path segment.
func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("employeeId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		h.writeInvalidFields(c, []string{"employeeId"})
		return 0, false
	}
	return id, true
}

// GetAll godoc
// @Summary Get All Employees in the System.
// @Description List of Employees in System
// @Tags Employee Service
// @Produce json
// @Success 200 {object} employee.BulkEmployeeView
// @Failure 500 {object} response.VoidResponse
// @Security BasicAuth
// @Router /employees [get]
func (h *Handler) GetAll(c *gin.Context) {
	h.logger.Debug("http list employees", zap.String("request_id", c.GetString("request_id")))

	bulk, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bulk)
}

// GetByID godoc
// @Summary Get Employee Information on the basis of ID
// @Description Employee Information of given ID
// @Tags Employee Service
// @Produce json
// @Param employeeId path int true "Employee ID" minimum(1)
// @Success 200 {object} employee.EmployeeView
// @Failure 400 {object} response.VoidResponse
// @Failure 500 {object} response.VoidResponse
// @Security BasicAuth
// @Router /employees/{employeeId} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	h.logger.Debug("http get employee", zap.Int64("employee_id", id))

	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Create godoc
// @Summary Create a new employee with given information
// @Description Add a employee to the system
// @Tags Employee Service
// @Accept json
// @Produce json
// @Param employee body employee.EmployeeInfo true "Employee to create"
// @Success 201 {object} response.VoidResponse
// @Failure 400 {object} response.VoidResponse
// @Failure 500 {object} response.VoidResponse
// @Security BasicAuth
// @Router /employees [post]
func (h *Handler) Create(c *gin.Context) {
	var info EmployeeInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		h.logger.Warn("http create employee malformed body", zap.Error(err))
		response.Malformed(c, http.StatusBadRequest, err.Error())
		return
	}
	if fields := apperror.FieldViolations(&info); len(fields) > 0 {
		h.writeInvalidFields(c, fields)
		return
	}
	h.logger.Debug("http create employee", zap.String("name", info.Name))

	msg, err := h.service.Create(c.Request.Context(), info)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// Update godoc
// @Summary Update an existing Employee Record.
// @Description Update the employee record of the given id.
// @Tags Employee Service
// @Accept json
// @Produce json
// @Param employee body employee.EmployeeView true "Employee record to replace"
// @Success 200 {object} response.VoidResponse
// @Failure 400 {object} response.VoidResponse
// @Failure 500 {object} response.VoidResponse
// @Security BasicAuth
// @Router /employees [put]
func (h *Handler) Update(c *gin.Context) {
	var view EmployeeView
	if err := c.ShouldBindJSON(&view); err != nil {
		h.logger.Warn("http update employee malformed body", zap.Error(err))
		response.Malformed(c, http.StatusBadRequest, err.Error())
		return
	}
	if fields := apperror.FieldViolations(&view); len(fields) > 0 {
		h.writeInvalidFields(c, fields)
		return
	}
	h.logger.Debug("http update employee", zap.Int64("employee_id", view.ID))

	msg, err := h.service.Update(c.Request.Context(), view)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// Delete godoc
// @Summary Delete an existing Employee Record.
// @Description Delete the employee record of the given employee ID.
// @Tags Employee Service
// @Produce json
// @Param employeeId path int true "Employee ID" minimum(1)
// @Success 200 {object} response.VoidResponse
// @Failure 400 {object} response.VoidResponse
// @Failure 500 {object} response.VoidResponse
// @Security BasicAuth
// @Router /employees/{employeeId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	h.logger.Debug("http delete employee", zap.Int64("employee_id", id))

	msg, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}
