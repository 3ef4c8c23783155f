package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Gautam3767/Website_Onboarding_Backend/models"
)

func newMockStore(mt *mtest.T) *MongoSubmissionStore {
	s := NewSubmissionStore(mt.Coll)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestMongoSubmissionStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create returns generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		s := newMockStore(mt)

		sub := &models.Submission{WebsiteType: "Portfolio", Email: "a@b.com"}
		id, err := s.Create(context.Background(), sub)
		require.NoError(mt, err)

		oid, err := primitive.ObjectIDFromHex(id)
		require.NoError(mt, err)
		assert.Equal(mt, oid, sub.ID)
		assert.Equal(mt, []string{}, sub.Features)
		assert.Equal(mt, s.now(), sub.CreatedAt)
		assert.Equal(mt, sub.CreatedAt, sub.UpdatedAt)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "insert", started.CommandName)
	})

	mt.Run("create wraps write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		s := newMockStore(mt)

		id, err := s.Create(context.Background(), &models.Submission{})
		require.Error(mt, err)
		assert.Empty(mt, id)
		assert.Contains(mt, err.Error(), "insert submission")
	})

	mt.Run("update existing submission", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		s := newMockStore(mt)

		name := "Acme"
		err := s.UpdateBranding(context.Background(), primitive.NewObjectID().Hex(), models.Branding{BrandName: &name})
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)
	})

	mt.Run("update unknown id is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		s := newMockStore(mt)

		err := s.UpdateBranding(context.Background(), primitive.NewObjectID().Hex(), models.Branding{})
		assert.True(mt, errors.Is(err, ErrNotFound))
	})

	mt.Run("update wraps store errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "write failed",
		}))
		s := newMockStore(mt)

		id := primitive.NewObjectID().Hex()
		err := s.UpdateBranding(context.Background(), id, models.Branding{})
		require.Error(mt, err)
		assert.False(mt, errors.Is(err, ErrNotFound))
		assert.Contains(mt, err.Error(), "update submission "+id)
	})

	mt.Run("invalid id never reaches the server", func(mt *mtest.T) {
		s := newMockStore(mt)

		err := s.UpdateBranding(context.Background(), "client-42", models.Branding{})
		assert.True(mt, errors.Is(err, ErrNotFound))
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("ping", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, newMockStore(mt).Ping(context.Background()))
	})
}
