package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/langhamerm/EasyRx/config/db"
	"github.com/langhamerm/EasyRx/config/logger"
	"github.com/langhamerm/EasyRx/models"
	"github.com/langhamerm/EasyRx/util"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var scheduler *cron.Cron

/*
* Look the seed patient up by name
* Insert it only when missing, so restarts do not duplicate it
* Return the stored patient and whether it was created now
 */
func SeedPatient(ctx context.Context) (*models.Patient, bool, error) {
	coll := db.OpenCollections(util.PatientCollection)

	existing := models.Patient{}
	err := db.FindOne(ctx, coll, bson.M{"name": util.SEED_PATIENT_NAME}, &existing)
	if err == nil {
		existing.Normalize()
		return &existing, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, fmt.Errorf("%w: find seed patient: %w", util.ErrPersistence, err)
	}

	dob, err := time.Parse(util.SEED_DOB_LAYOUT, util.SEED_PATIENT_DOB)
	if err != nil {
		return nil, false, err
	}
	patient := models.Patient{
		ID:      primitive.NewObjectID(),
		Name:    util.SEED_PATIENT_NAME,
		Dob:     dob,
		Scripts: []interface{}{},
	}
	if _, err := db.CreateOne(ctx, coll, patient); err != nil {
		return nil, false, fmt.Errorf("%w: insert seed patient: %w", util.ErrPersistence, err)
	}
	return &patient, true, nil
}

// RunSeed seeds and logs the outcome. Failures never stop the server.
func RunSeed(ctx context.Context) {
	patient, created, err := SeedPatient(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Error seeding patient")
		return
	}
	logger.WithFields(logrus.Fields{
		"id":      patient.ID.Hex(),
		"name":    patient.Name,
		"dob":     patient.Dob.Format("2006-01-02"),
		"created": created,
	}).Info("Seed patient ready")
}

/*
* Collect every prescription id referenced from any patient
* Find prescriptions outside that set
* Those were created by a submit whose link never pointed at them
 */
func AuditOrphanedPrescriptions(ctx context.Context) ([]primitive.ObjectID, error) {
	patients, err := db.FindAll[models.Patient](ctx, db.OpenCollections(util.PatientCollection), nil,
		options.Find().SetProjection(bson.M{"scripts": 1}))
	if err != nil {
		return nil, fmt.Errorf("%w: find patients: %w", util.ErrPersistence, err)
	}
	linked := []primitive.ObjectID{}
	for _, patient := range patients {
		linked = append(linked, patient.ScriptIDs()...)
	}

	filter := bson.M{"_id": bson.M{"$nin": linked}}
	orphans, err := db.FindAll[models.Prescription](ctx, db.OpenCollections(util.PrescriptionCollection), filter,
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("%w: find orphaned prescriptions: %w", util.ErrPersistence, err)
	}
	ids := make([]primitive.ObjectID, 0, len(orphans))
	for _, rx := range orphans {
		if id, ok := rx.ID(); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func RunOrphanAudit(ctx context.Context) {
	ids, err := AuditOrphanedPrescriptions(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Error auditing orphaned prescriptions")
		return
	}
	if len(ids) == 0 {
		logger.Log.Info("No orphaned prescriptions")
		return
	}
	logger.WithField("count", len(ids)).Warn("Prescriptions not referenced by any patient")
}

func StartOrphanAudit(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		logger.Log.Info("Running orphaned prescription audit...")
		RunOrphanAudit(context.Background())
	})
	if err != nil {
		return fmt.Errorf("orphan audit schedule %q: %w", schedule, err)
	}
	c.Start()
	scheduler = c
	return nil
}

// StopScheduler stops scheduling new runs and waits for a running one.
func StopScheduler(ctx context.Context) {
	if scheduler == nil {
		return
	}
	select {
	case <-scheduler.Stop().Done():
	case <-ctx.Done():
	}
	scheduler = nil
}
