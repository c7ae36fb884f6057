package migrations

import (
	"context"
	"testing"

	"github.com/langhamerm/EasyRx/config/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestRun(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("applies every migration in order", func(mt *mtest.T) {
		previous := db.DB
		db.DB = mt.DB
		mt.Cleanup(func() { db.DB = previous })
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}, bson.E{Key: "nModified", Value: int32(1)}),
			mtest.CreateSuccessResponse(),
		)

		require.NoError(mt, Run(context.Background()))

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		assert.Equal(mt, "update", events[0].CommandName)
		update := events[0].Command.Lookup("updates").Array().Index(0).Value().Document()
		assert.False(mt, update.Lookup("q", "scripts", "$exists").Boolean())
		assert.True(mt, update.Lookup("multi").Boolean())

		assert.Equal(mt, "createIndexes", events[1].CommandName)
		index := events[1].Command.Lookup("indexes").Array().Index(0).Value().Document()
		assert.Equal(mt, "name_1", index.Lookup("name").StringValue())
		_, err := index.LookupErr("unique")
		assert.Error(mt, err)
	})

	mt.Run("stops at the first failure", func(mt *mtest.T) {
		previous := db.DB
		db.DB = mt.DB
		mt.Cleanup(func() { db.DB = previous })
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad", Name: "BadValue"}))

		err := Run(context.Background())

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "001_add_scripts_field")
		assert.Len(mt, mt.GetAllStartedEvents(), 1)
	})
}
