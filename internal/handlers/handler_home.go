package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router / [get]
func getHome(c *gin.Context) {
	respond(c, http.StatusOK, "Blog Backend API is running", nil)
}
