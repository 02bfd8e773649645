// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/youpick/backend/models"
)

const connectTimeout = 10 * time.Second

// Collection names, matching the original document layout.
const (
	hangoutsCollection = "hangouts"
	usersCollection    = "user_documents"
)

// Connect opens a MongoDB client and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx,
		options.Client().ApplyURI(uri),
		options.Client().SetConnectTimeout(connectTimeout),
		options.Client().SetServerSelectionTimeout(connectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}
	return client, nil
}

// Mongo implements hangout.Store on a MongoDB database. All mutations
// are field-scoped conditional updates: counters move with $inc,
// membership with guarded $push/$addToSet, and the Pending → Finalized
// flip with a status-conditioned $set, so concurrent writers never
// overwrite each other's unrelated fields.
type Mongo struct {
	hangouts *mongo.Collection
	users    *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		hangouts: db.Collection(hangoutsCollection),
		users:    db.Collection(usersCollection),
	}
}

func (m *Mongo) InsertHangout(ctx context.Context, h *models.Hangout) (primitive.ObjectID, error) {
	res, err := m.hangouts.InsertOne(ctx, h)
	if err != nil {
		return primitive.NilObjectID, upstream("insert hangout", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert hangout: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *Mongo) FindHangoutByCode(ctx context.Context, code int) (*models.Hangout, error) {
	var h models.Hangout
	err := m.hangouts.FindOne(ctx, bson.M{"hangoutCode": code}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrHangoutNotFound
	}
	if err != nil {
		return nil, upstream("find hangout", err)
	}
	return &h, nil
}

func (m *Mongo) FindHangoutsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Hangout, error) {
	cursor, err := m.hangouts.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, upstream("find hangouts", err)
	}
	defer cursor.Close(ctx)

	var hangouts []models.Hangout
	if err := cursor.All(ctx, &hangouts); err != nil {
		return nil, upstream("decode hangouts", err)
	}
	return hangouts, nil
}

func (m *Mongo) AddParticipant(ctx context.Context, code int, participantID, email string) error {
	// $push keeps the id and email arrays positionally parallel; the
	// $ne guard is what makes the membership a set.
	filter := bson.M{
		"hangoutCode":    code,
		"voteStatus":     models.StatusPending,
		"idParticipants": bson.M{"$ne": participantID},
		"$expr": bson.M{"$and": bson.A{
			bson.M{"$lt": bson.A{bson.M{"$size": "$idParticipants"}, "$numParticipants"}},
			bson.M{"$lt": bson.A{"$votedNum", "$numParticipants"}},
		}},
	}
	update := bson.M{
		"$push": bson.M{
			"idParticipants":    participantID,
			"emailParticipants": email,
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	res, err := m.hangouts.UpdateOne(ctx, filter, update)
	if err != nil {
		return upstream("add participant", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrConcurrentUpdate
	}
	return nil
}

func (m *Mongo) ReduceCapacity(ctx context.Context, code int) error {
	filter := bson.M{
		"hangoutCode": code,
		"voteStatus":  models.StatusPending,
		"$expr": bson.M{"$and": bson.A{
			bson.M{"$gt": bson.A{"$numParticipants", "$votedNum"}},
			bson.M{"$gt": bson.A{"$numParticipants", bson.M{"$size": "$idParticipants"}}},
		}},
	}
	update := bson.M{
		"$inc": bson.M{"numParticipants": -1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	res, err := m.hangouts.UpdateOne(ctx, filter, update)
	if err != nil {
		return upstream("reduce capacity", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrConcurrentUpdate
	}
	return nil
}

func (m *Mongo) IncrementSlotVotes(ctx context.Context, code int, options []int) error {
	inc := bson.M{}
	for _, i := range options {
		inc[fmt.Sprintf("dates.%d.votes", i)] = 1
		inc[fmt.Sprintf("times.%d.votes", i)] = 1
	}

	filter := bson.M{"hangoutCode": code, "voteStatus": models.StatusPending}
	update := bson.M{"$inc": inc, "$set": bson.M{"updatedAt": time.Now()}}

	res, err := m.hangouts.UpdateOne(ctx, filter, update)
	if err != nil {
		return upstream("increment slot votes", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrConcurrentUpdate
	}
	return nil
}

func (m *Mongo) RecordBallot(ctx context.Context, code int, activityIdx []int) error {
	inc := bson.M{"votedNum": 1}
	for _, i := range activityIdx {
		key := fmt.Sprintf("activities.%d.votes", i)
		if n, ok := inc[key].(int); ok {
			inc[key] = n + 1
		} else {
			inc[key] = 1
		}
	}

	filter := bson.M{
		"hangoutCode": code,
		"voteStatus":  models.StatusPending,
		"$expr":       bson.M{"$lt": bson.A{"$votedNum", "$numParticipants"}},
	}
	update := bson.M{"$inc": inc, "$set": bson.M{"updatedAt": time.Now()}}

	res, err := m.hangouts.UpdateOne(ctx, filter, update)
	if err != nil {
		return upstream("record ballot", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrConcurrentUpdate
	}
	return nil
}

func (m *Mongo) Finalize(ctx context.Context, code int, out models.Outcome) (bool, error) {
	filter := bson.M{"hangoutCode": code, "voteStatus": models.StatusPending}
	update := bson.M{"$set": bson.M{
		"voteStatus":    models.StatusFinalized,
		"finalDate":     out.FinalDate,
		"finalTime":     out.FinalTime,
		"finalActivity": out.FinalActivity,
		"finalLocation": out.FinalLocation,
		"updatedAt":     time.Now(),
	}}

	res, err := m.hangouts.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, upstream("finalize hangout", err)
	}
	return res.MatchedCount > 0, nil
}

func (m *Mongo) InsertUser(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	res, err := m.users.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, upstream("insert user", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *Mongo) FindUserByAuthID(ctx context.Context, authID string) (*models.User, error) {
	return m.findUser(ctx, bson.M{"authId": authID})
}

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findUser(ctx, bson.M{"email": email})
}

func (m *Mongo) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	err := m.users.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, upstream("find user", err)
	}
	return &u, nil
}

func (m *Mongo) UpdateUserFields(ctx context.Context, authID string, fields map[string]any) error {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	res, err := m.users.UpdateOne(ctx, bson.M{"authId": authID}, bson.M{"$set": set})
	if err != nil {
		return upstream("update user", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (m *Mongo) AppendUserHangout(ctx context.Context, authID string, hangoutID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"hangoutIds": hangoutID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}

	res, err := m.users.UpdateOne(ctx, bson.M{"authId": authID}, update)
	if err != nil {
		return upstream("append user hangout", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func upstream(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, models.ErrUpstreamUnavailable, err)
}
