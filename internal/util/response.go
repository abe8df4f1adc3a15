package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the payload merged into the success envelope.
type Response map[string]interface{}

func envelope(data Response) gin.H {
	out := gin.H{"success": true}
	for k, v := range data {
		out[k] = v
	}
	return out
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, envelope(data))
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, data Response) {
	c.JSON(http.StatusCreated, envelope(data))
}

// Fail writes the error envelope with the given status.
// Every handler catches at its own boundary; nothing propagates past gin uncaught.
func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"message": msg,
	})
}
