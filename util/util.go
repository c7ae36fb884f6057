package util

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names. Overridden from config at startup.
var (
	PatientCollection      = "patients"
	PrescriptionCollection = "rxes"
)

const (
	SEED_PATIENT_NAME = "Bark Wanghamer"
	SEED_PATIENT_DOB  = "03.19.1993"
	SEED_DOB_LAYOUT   = "01.02.2006"
)

var (
	ErrPersistence     = errors.New("persistence operation failed")
	ErrInvalidBody     = errors.New("request body must be a JSON object or urlencoded form")
	ErrInvalidLinkMode = errors.New("link mode must be one of fragments, reference")
)

// FailedResponse is the body written for any failed request. The status code
// is left at 200 so existing clients keep inspecting the body.
func FailedResponse(err error) gin.H {
	return gin.H{
		"name":    ErrorName(err),
		"message": err.Error(),
	}
}

func ErrorName(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var serverErr mongo.ServerError
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, ErrInvalidBody):
		return "SyntaxError"
	case mongo.IsTimeout(err):
		return "MongoTimeoutError"
	case mongo.IsNetworkError(err):
		return "MongoNetworkError"
	case errors.As(err, &serverErr):
		return "MongoServerError"
	case errors.Is(err, ErrPersistence):
		return "MongoError"
	default:
		return "Error"
	}
}
