package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/langhamerm/EasyRx/config/db"
	"github.com/langhamerm/EasyRx/config/logger"
	"github.com/langhamerm/EasyRx/models"
	"github.com/langhamerm/EasyRx/util"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LinkMode string

const (
	// LinkFragments pushes {rxNum} and {refills} documents onto scripts.
	// Populate cannot resolve these entries and passes them through.
	LinkFragments LinkMode = "fragments"
	// LinkReference pushes the prescription _id so populate can resolve it.
	LinkReference LinkMode = "reference"
)

var linkMode = LinkFragments

func ParseLinkMode(value string) (LinkMode, error) {
	switch LinkMode(value) {
	case LinkFragments, LinkReference:
		return LinkMode(value), nil
	}
	return "", fmt.Errorf("%w: %q", util.ErrInvalidLinkMode, value)
}

func SetLinkMode(mode LinkMode) {
	linkMode = mode
}

func CurrentLinkMode() LinkMode {
	return linkMode
}

// ScriptEntries returns what a link appends to scripts for rx.
func ScriptEntries(mode LinkMode, rx models.Prescription) []interface{} {
	if mode == LinkReference {
		if id, ok := rx.ID(); ok {
			return []interface{}{id}
		}
	}
	return []interface{}{
		bson.M{models.FieldRxNum: rx[models.FieldRxNum]},
		bson.M{models.FieldRefills: rx[models.FieldRefills]},
	}
}

func FetchAllPatients(ctx context.Context) ([]models.Patient, error) {
	collection := db.OpenCollections(util.PatientCollection)
	patients, err := db.FindAll[models.Patient](ctx, collection, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Error from findAll(patients)")
		return nil, fmt.Errorf("%w: find patients: %w", util.ErrPersistence, err)
	}
	for i := range patients {
		patients[i].Normalize()
	}
	return patients, nil
}

/*
* Find the first patient with the given name
* Append the script entries for the current link mode
* Return the patient as it is after the update
* No match is not an error: the result is nil
 */
func LinkPrescriptionToPatient(ctx context.Context, patientName string, rx models.Prescription) (*models.Patient, error) {
	collection := db.OpenCollections(util.PatientCollection)
	filter := bson.M{"name": patientName}
	update := bson.M{
		"$push": bson.M{
			"scripts": bson.M{"$each": ScriptEntries(linkMode, rx)},
		},
	}

	patient := models.Patient{}
	err := db.FindOneAndUpdate(ctx, collection, filter, update, &patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		logger.WithField("name", patientName).Info("No patient matched, prescription left unlinked")
		return nil, nil
	}
	if err != nil {
		logger.Log.WithError(err).Error("Error from findOneAndUpdate(patient)")
		return nil, fmt.Errorf("%w: link prescription: %w", util.ErrPersistence, err)
	}
	patient.Normalize()
	return &patient, nil
}

/*
* Load every patient
* Collect the ObjectIDs held in their scripts
* Fetch those prescriptions with a single $in query
* Build a copy of each patient with ids swapped for documents
* Ids with no prescription are dropped, other entries pass through
 */
func PopulatePatients(ctx context.Context) ([]models.Patient, error) {
	patients, err := FetchAllPatients(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[primitive.ObjectID]bool{}
	ids := []primitive.ObjectID{}
	for _, patient := range patients {
		for _, id := range patient.ScriptIDs() {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return patients, nil
	}

	collection := db.OpenCollections(util.PrescriptionCollection)
	filter := bson.M{"_id": bson.M{"$in": ids}}
	prescriptions, err := db.FindAll[models.Prescription](ctx, collection, filter)
	if err != nil {
		logger.Log.WithError(err).Error("Error from findAll(populate prescriptions)")
		return nil, fmt.Errorf("%w: populate scripts: %w", util.ErrPersistence, err)
	}
	byID := make(map[primitive.ObjectID]models.Prescription, len(prescriptions))
	for _, rx := range prescriptions {
		if id, ok := rx.ID(); ok {
			byID[id] = rx
		}
	}

	populated := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		scripts := make([]interface{}, 0, len(patient.Scripts))
		for _, entry := range patient.Scripts {
			id, isID := entry.(primitive.ObjectID)
			if !isID {
				scripts = append(scripts, entry)
				continue
			}
			if rx, ok := byID[id]; ok {
				scripts = append(scripts, rx)
			}
		}
		view := patient
		view.Scripts = scripts
		populated = append(populated, view)
	}
	return populated, nil
}

/*
* Create the prescription first
* Link it to the patient named by the title field
* A failed link leaves the prescription orphaned
 */
func SubmitPrescription(ctx context.Context, fields map[string]interface{}) (*models.Patient, error) {
	rx, err := CreatePrescription(ctx, fields)
	if err != nil {
		logger.Log.WithError(err).Error("Error from createPrescription")
		return nil, err
	}
	patient, err := LinkPrescriptionToPatient(ctx, patientNameFrom(fields), rx)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"prescription": rx[models.FieldID],
			"error":        err,
		}).Error("Prescription created but not linked")
		return nil, err
	}
	return patient, nil
}

// patientNameFrom reads the lookup name from the title field. Non-string
// titles are compared in their printed form; a missing title matches nobody.
func patientNameFrom(fields map[string]interface{}) string {
	switch title := fields[models.FieldTitle].(type) {
	case nil:
		return ""
	case string:
		return title
	default:
		return fmt.Sprint(title)
	}
}
