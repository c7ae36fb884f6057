package migrations

import (
	"context"

	"github.com/langhamerm/EasyRx/config/db"
	"github.com/langhamerm/EasyRx/config/logger"
	"github.com/langhamerm/EasyRx/util"

	"go.mongodb.org/mongo-driver/bson"
)

func AddScriptsField(ctx context.Context) error {
	coll := db.OpenCollections(util.PatientCollection)
	result, err := db.UpdateMany(ctx, coll,
		bson.M{"scripts": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"scripts": bson.A{}}},
	)
	if err != nil {
		return err
	}
	logger.WithField("updated", result.ModifiedCount).Info("Migration applied: scripts backfilled")
	return nil
}
