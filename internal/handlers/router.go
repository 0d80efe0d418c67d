package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every endpoint under /api. Shared between main and
// the handler tests.
func NewRouter(users *UserHandler, jobs *JobHandler, applications *ApplicationHandler) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		// User Routes
		api.POST("/users", users.CreateUser)
		api.GET("/users", users.GetUsers)

		// Job Routes. Static segments (poster, dashboard) sit beside the
		// :id param; save/unsave reuse :id so the route tree stays happy.
		api.POST("/jobs", jobs.CreateJob)
		api.GET("/jobs", jobs.GetJobs)
		api.GET("/jobs/poster/:posterId", jobs.GetJobsByPoster)
		api.GET("/jobs/dashboard/stats/:posterId", jobs.GetDashboardStats)
		api.GET("/jobs/:id", jobs.GetJob)
		api.PUT("/jobs/:id", jobs.UpdateJob)
		api.DELETE("/jobs/:id", jobs.DeleteJob)
		api.POST("/jobs/:id/save", jobs.SaveJob)
		api.POST("/jobs/:id/unsave", jobs.UnsaveJob)

		// Application Routes
		api.POST("/applications", applications.CreateApplication)
		api.GET("/applications/:jobId", applications.GetApplications)
	}
	return r
}
