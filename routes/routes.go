package routes

import (
	"github.com/langhamerm/EasyRx/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, publicDir string) {
	controllers.Health(r)
	controllers.Prescription(r)
	controllers.Patient(r)
	controllers.Static(r, publicDir)
}
