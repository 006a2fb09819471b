package repository

import (
	"context"
	"time"

	"quiz-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// storedQuiz wraps a received quiz with its arrival time so "last received"
// and the recent-history listing survive restarts.
type storedQuiz struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ReceivedAt time.Time          `bson:"received_at"`
	Quiz       models.Quiz        `bson:"quiz"`
}

// QuizRepository is the Mongo-backed quiz store. The performance ledger is
// deliberately not persisted here; only quiz payloads are durable.
type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) Add(ctx context.Context, quiz models.Quiz) error {
	_, err := r.Col.InsertOne(ctx, storedQuiz{
		ReceivedAt: time.Now().UTC(),
		Quiz:       quiz,
	})
	return err
}

// Last returns the most recently received quiz; ok is false when none has
// arrived yet.
func (r *QuizRepository) Last(ctx context.Context) (models.Quiz, bool, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "received_at", Value: -1}})
	var doc storedQuiz
	err := r.Col.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Quiz{}, false, nil
	}
	if err != nil {
		return models.Quiz{}, false, err
	}
	return doc.Quiz, true, nil
}

// History returns up to limit quizzes, oldest of the kept window first.
func (r *QuizRepository) History(ctx context.Context, limit int) ([]models.Quiz, error) {
	if limit <= 0 {
		return []models.Quiz{}, nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "received_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []storedQuiz
	for cur.Next(ctx) {
		var doc storedQuiz
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	// Newest-first from Mongo, chronological for callers.
	quizzes := make([]models.Quiz, len(docs))
	for i, doc := range docs {
		quizzes[len(docs)-1-i] = doc.Quiz
	}
	return quizzes, nil
}

func (r *QuizRepository) Count(ctx context.Context) (int, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (r *QuizRepository) Clear(ctx context.Context) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{})
	return err
}
