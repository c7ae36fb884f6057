package services

import (
	"context"
	"fmt"

	"github.com/langhamerm/EasyRx/config/db"
	"github.com/langhamerm/EasyRx/config/logger"
	"github.com/langhamerm/EasyRx/models"
	"github.com/langhamerm/EasyRx/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
* Copy every submitted field, dropping any caller _id
* Generate the _id and the version key
* Insert into the prescription collection
* Return the stored document
 */
func CreatePrescription(ctx context.Context, fields map[string]interface{}) (models.Prescription, error) {
	rx := models.Prescription{}
	for key, value := range fields {
		if key == models.FieldID {
			continue
		}
		rx[key] = value
	}
	rx[models.FieldID] = primitive.NewObjectID()
	rx[models.FieldVersion] = 0

	collection := db.OpenCollections(util.PrescriptionCollection)
	if _, err := db.CreateOne(ctx, collection, rx); err != nil {
		logger.Log.WithError(err).Error("Error from createOne(prescription)")
		return nil, fmt.Errorf("%w: insert prescription: %w", util.ErrPersistence, err)
	}
	return rx, nil
}

func FetchAllPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	collection := db.OpenCollections(util.PrescriptionCollection)
	prescriptions, err := db.FindAll[models.Prescription](ctx, collection, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Error from findAll(prescriptions)")
		return nil, fmt.Errorf("%w: find prescriptions: %w", util.ErrPersistence, err)
	}
	return prescriptions, nil
}
