package mongo

import (
	"context"
	"errors"
	"time"

	"habitquest/internal/models"
	"habitquest/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepo wraps the users collection
type UserRepo struct{ col *mongo.Collection }

// NewUserRepo ensures the unique email index and returns the repository
func NewUserRepo(c *Client) (*UserRepo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}

	col := db.Collection("users")
	r := &UserRepo{col: col}

	_, _ = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return r, nil
}

// Insert creates a new account. A duplicate email maps to ErrEmailTaken.
func (r *UserRepo) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repositories.ErrEmailTaken
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

// FindByEmail retrieves an account by its exact email (case-sensitive).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID retrieves an account by its hex object id.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrUserNotFound
	}
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProgress writes the progression fields of the merged account state
// back to the store in a single $set and returns the updated document.
func (r *UserRepo) UpdateProgress(ctx context.Context, id string, user *models.User) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrUserNotFound
	}

	patch := bson.M{
		"xp":           user.XP,
		"level":        user.Level,
		"streak":       user.Streak,
		"lastAction":   user.LastAction,
		"achievements": user.Achievements,
		"totalPoints":  user.TotalPoints,
		"updatedAt":    time.Now().UTC(),
	}

	var updated models.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": patch}, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, err
	}
	return &updated, nil
}
