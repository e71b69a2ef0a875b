package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware echoes the caller's request id or mints a new one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin/",
	"/favicon",
	"/privacy",
	"/healthz",
	"/go/",
}

func shouldTrack(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// visitorTrackingMiddleware records page views in the background. Asset,
// admin and redirect paths are skipped, and so is any request carrying
// "DNT: 1".
func (a *App) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !shouldTrack(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, userAgent := c.ClientIP(), c.GetHeader("User-Agent")
		a.tracking.Add(1)
		go func() {
			defer a.tracking.Done()
			a.trackVisit(ip, userAgent, path)
		}()
		c.Next()
	}
}

// waitForTracking blocks until every background visit write has finished.
func (a *App) waitForTracking() {
	a.tracking.Wait()
}

func (a *App) trackVisit(ip, userAgent, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.store.RecordVisit(ctx, ip, userAgent, path); err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}
