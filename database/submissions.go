package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Gautam3767/Website_Onboarding_Backend/models"
)

// ErrNotFound is returned when no submission matches the given identifier.
var ErrNotFound = errors.New("submission not found")

// Context timeout for single-document operations
const dbTimeout = 5 * time.Second

// SubmissionStore persists onboarding submissions.
type SubmissionStore interface {
	// Create inserts sub and returns its generated identifier (hex ObjectID).
	Create(ctx context.Context, sub *models.Submission) (string, error)
	// UpdateBranding overwrites the branding fields of submission id.
	// It returns ErrNotFound if no submission has that id.
	UpdateBranding(ctx context.Context, id string, b models.Branding) error
	Ping(ctx context.Context) error
}

// MongoSubmissionStore implements SubmissionStore over one collection.
type MongoSubmissionStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewSubmissionStore(coll *mongo.Collection) *MongoSubmissionStore {
	return &MongoSubmissionStore{coll: coll, now: time.Now}
}

func (s *MongoSubmissionStore) Create(ctx context.Context, sub *models.Submission) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	now := s.now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if sub.Features == nil {
		sub.Features = []string{}
	}

	res, err := s.coll.InsertOne(ctx, sub)
	if err != nil {
		return "", fmt.Errorf("insert submission: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert submission: unexpected id type %T", res.InsertedID)
	}
	sub.ID = oid
	return oid.Hex(), nil
}

func (s *MongoSubmissionStore) UpdateBranding(ctx context.Context, id string, b models.Branding) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An id that cannot exist in the collection is reported like an unknown one.
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	res, err := s.coll.UpdateByID(ctx, oid, brandingUpdate(b, s.now()))
	if err != nil {
		return fmt.Errorf("update submission %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoSubmissionStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return s.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// brandingUpdate sets exactly the five branding fields plus updatedAt.
// Intake fields are never part of the update document.
func brandingUpdate(b models.Branding, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"brandName":        b.BrandName,
			"logoUrl":          b.LogoURL,
			"colorPreferences": b.ColorPreferences,
			"additionalImages": b.AdditionalImages,
			"contactInfo":      b.ContactInfo,
			"updatedAt":        now,
		},
	}
}
