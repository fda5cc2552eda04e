package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.POST("", handler.Create)
		employees.GET("/summary", handler.GetSalarySummary)
		employees.GET("/:id", handler.GetByID)
		employees.DELETE("/:id", handler.Delete)
		employees.PUT("/:id/salary", handler.UpdateSalary)
		employees.PUT("/:id/position", handler.UpdatePosition)
	}
}
