package migrations

import (
	"context"

	"github.com/langhamerm/EasyRx/config/db"
	"github.com/langhamerm/EasyRx/config/logger"
	"github.com/langhamerm/EasyRx/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePatientNameIndex backs the lookup-by-name used when linking. It is
// not unique: duplicate names are allowed and the first match wins.
func CreatePatientNameIndex(ctx context.Context) error {
	coll := db.OpenCollections(util.PatientCollection)
	name, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("name_1"),
	})
	if err != nil {
		return err
	}
	logger.WithField("index", name).Info("Migration applied: patient name index")
	return nil
}
