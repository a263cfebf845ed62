package web

import (
	_ "embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

const dashboardTemplate = "dashboard.html"

//go:embed templates/dashboard.html
var dashboardHTML string

func NewRouter(ctrl *Controller) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), Logger())

	router.SetHTMLTemplate(template.Must(template.New(dashboardTemplate).Parse(dashboardHTML)))

	router.GET("/", ctrl.Index)
	router.POST("/refresh", ctrl.RefreshForm)
	router.GET("/chart.svg", ctrl.Chart)
	router.GET("/healthz", ctrl.Healthz)

	api := router.Group("/api")
	{
		api.GET("/report", ctrl.GetReport)
		api.POST("/refresh", ctrl.Refresh)
		api.GET("/report.xlsx", ctrl.Export)
	}

	return router
}
