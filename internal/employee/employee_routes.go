package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee endpoints. Authorization is enforced
// globally by the rule-table middleware, not per route.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:employeeId", handler.GetByID)
		employees.POST("", handler.Create)
		employees.PUT("", handler.Update)
		employees.DELETE("/:employeeId", handler.Delete)
	}
}
