package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skillbridge/internal/model"
)

// QuestionRepo handles MongoDB operations for seeded assessment questions
type QuestionRepo interface {
	ListByLanguage(ctx context.Context, language string) ([]model.Question, error)
	// ReplaceLanguage atomically swaps the stored catalog for one language.
	// Used by the seed command; re-running it never duplicates questions.
	ReplaceLanguage(ctx context.Context, language string, questions []model.Question) error
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("assessment_questions"),
	}
}

func (r *questionRepo) ListByLanguage(ctx context.Context, language string) ([]model.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"language": language}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []questionDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	questions := make([]model.Question, len(docs))
	for i, d := range docs {
		questions[i] = d.Question
	}
	return questions, nil
}

func (r *questionRepo) ReplaceLanguage(ctx context.Context, language string, questions []model.Question) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"language": language}); err != nil {
		return err
	}

	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		q.Language = language
		docs[i] = questionDoc{Question: q, Position: i}
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// questionDoc stores the catalog position so retrieval preserves order.
type questionDoc struct {
	model.Question `bson:",inline"`
	Position       int `bson:"position"`
}
