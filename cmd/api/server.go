package main

import (
	"log"
	"net/http"
	"time"
)

func (app *application) serve() error {
	server := &http.Server{
		Addr:         app.Config.GetServerAddr(),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		// Generation calls can take up to the gateway timeout to settle.
		WriteTimeout: app.Config.Generator.Timeout + 15*time.Second,
	}

	log.Printf("Starting server on %s", server.Addr)

	return server.ListenAndServe()
}
