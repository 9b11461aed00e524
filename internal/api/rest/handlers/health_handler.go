package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck обработчик для проверки работоспособности сервиса
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// Root корневой маршрут, доступен только после basic-auth
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "hello world!"})
}
