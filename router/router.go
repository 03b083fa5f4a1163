package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Setup builds the engine and mounts all resource routes.
func Setup(client *mongo.Client, db string) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	AirlineRoutes(r, client, db)
	BookingRoutes(r, client, db)

	return r
}
