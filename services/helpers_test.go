package services

import (
	"time"

	"github.com/langhamerm/EasyRx/config/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var mockOpts = mtest.NewOptions().ClientType(mtest.Mock)

// useMockDB points the package-level database at the mock deployment for the
// duration of one subtest.
func useMockDB(mt *mtest.T) {
	previous := db.DB
	db.DB = mt.DB
	mt.Cleanup(func() { db.DB = previous })
}

func useLinkMode(mt *mtest.T, mode LinkMode) {
	previous := linkMode
	SetLinkMode(mode)
	mt.Cleanup(func() { SetLinkMode(previous) })
}

func patientDoc(id primitive.ObjectID, scripts bson.A) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Bark Wanghamer"},
		{Key: "dob", Value: primitive.NewDateTimeFromTime(time.Date(1993, 3, 19, 0, 0, 0, 0, time.UTC))},
		{Key: "scripts", Value: scripts},
		{Key: "__v", Value: int32(0)},
	}
}

func findAndModifyResponse(doc interface{}) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "value", Value: doc})
}
