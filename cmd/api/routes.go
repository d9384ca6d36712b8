package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.RequestIDMiddleware())
	r.Use(app.LoggingMiddleware())
	r.Use(app.CORSMiddleware())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", app.Handler.Health)
		v1.GET("/models", app.Handler.Models)
		v1.GET("/status/rate-limits", app.Handler.RateLimitStatus)

		// interview routes
		v1.POST("/interview/next-question", app.Handler.NextQuestion)
		v1.POST("/interview/analyze", app.Handler.Analyze)

		// session routes
		v1.POST("/sessions", app.Handler.SaveSession)
		v1.GET("/sessions", app.Handler.ListSessions)
		v1.GET("/sessions/:id", app.Handler.GetSession)
		v1.PUT("/sessions/:id", app.Handler.UpdateSession)
		v1.DELETE("/sessions/:id", app.Handler.DeleteSession)
	}

	return r
}
