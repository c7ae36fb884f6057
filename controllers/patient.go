package controllers

import (
	"net/http"

	"github.com/langhamerm/EasyRx/services"

	"github.com/gin-gonic/gin"
)

func Patient(router *gin.Engine) {
	router.GET("/patient", FetchAllPatients)
	router.GET("/populateduser", FetchPopulatedPatients)
}

func FetchAllPatients(c *gin.Context) {
	patients, err := services.FetchAllPatients(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func FetchPopulatedPatients(c *gin.Context) {
	patients, err := services.PopulatePatients(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}
