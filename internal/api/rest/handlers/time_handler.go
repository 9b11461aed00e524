package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// countryTimezones таблица основных часовых поясов по ISO-коду страны
var countryTimezones = map[string]string{
	"AR": "America/Argentina/Buenos_Aires",
	"BR": "America/Sao_Paulo",
	"CA": "America/Toronto",
	"CL": "America/Santiago",
	"CN": "Asia/Shanghai",
	"CO": "America/Bogota",
	"DE": "Europe/Berlin",
	"EC": "America/Guayaquil",
	"ES": "Europe/Madrid",
	"FR": "Europe/Paris",
	"GB": "Europe/London",
	"IN": "Asia/Kolkata",
	"JP": "Asia/Tokyo",
	"MX": "America/Mexico_City",
	"PE": "America/Lima",
	"RU": "Europe/Moscow",
	"US": "America/New_York",
	"UY": "America/Montevideo",
	"VE": "America/Caracas",
}

// CurrentTime возвращает текущее время в стране по ее ISO-коду
func CurrentTime(c *gin.Context) {
	iso := strings.ToUpper(c.Param("iso_code"))

	tzName, ok := countryTimezones[iso]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timezone code"})
		return
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load timezone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"current_hour": time.Now().In(loc)})
}
