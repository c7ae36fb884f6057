package controllers

import (
	"net/http"

	"github.com/langhamerm/EasyRx/config/logger"
	"github.com/langhamerm/EasyRx/services"
	"github.com/langhamerm/EasyRx/util"

	"github.com/gin-gonic/gin"
)

func Prescription(router *gin.Engine) {
	router.GET("/rx", FetchAllPrescriptions)
	router.POST("/submit", SubmitPrescription)
}

func FetchAllPrescriptions(c *gin.Context) {
	prescriptions, err := services.FetchAllPrescriptions(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

// SubmitPrescription answers with the updated patient, or null when the
// title named no patient.
func SubmitPrescription(c *gin.Context) {
	data, err := bindFields(c)
	if err != nil {
		logger.Log.WithError(err).Warn("Error from bindFields")
		fail(c, err)
		return
	}
	patient, err := services.SubmitPrescription(c, data)
	if err != nil {
		fail(c, err)
		return
	}
	if patient == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// fail keeps the 200 status and puts the error in the body.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusOK, util.FailedResponse(err))
}
