package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"climatewise/internal/catalog"
	"climatewise/internal/model"
)

// CatalogRepo handles MongoDB operations for the seeded catalog. The
// runtime reads the whole catalog once at startup; the only write path is
// the idempotent seed command.
type CatalogRepo interface {
	Count(ctx context.Context, kind catalog.Kind) (int64, error)
	LoadQuestions(ctx context.Context) ([]model.QuestionDefinition, error)
	LoadRecommendations(ctx context.Context) ([]model.RecommendationEntry, error)
	LoadFacts(ctx context.Context) ([]model.FactEntry, error)
	SeedQuestions(ctx context.Context, questions []model.QuestionDefinition) error
	SeedRecommendations(ctx context.Context, recs []model.RecommendationEntry) error
	SeedFacts(ctx context.Context, facts []model.FactEntry) error
}

type catalogRepo struct {
	db *mongo.Database
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) Count(ctx context.Context, kind catalog.Kind) (int64, error) {
	return r.db.Collection(string(kind)).CountDocuments(ctx, bson.M{})
}

func (r *catalogRepo) LoadQuestions(ctx context.Context) ([]model.QuestionDefinition, error) {
	cursor, err := r.db.Collection(string(catalog.KindQuestion)).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.QuestionDefinition
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *catalogRepo) LoadRecommendations(ctx context.Context) ([]model.RecommendationEntry, error) {
	cursor, err := r.db.Collection(string(catalog.KindRecommendation)).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []model.RecommendationEntry
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *catalogRepo) LoadFacts(ctx context.Context) ([]model.FactEntry, error) {
	cursor, err := r.db.Collection(string(catalog.KindFact)).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var facts []model.FactEntry
	if err := cursor.All(ctx, &facts); err != nil {
		return nil, err
	}
	return facts, nil
}

func (r *catalogRepo) SeedQuestions(ctx context.Context, questions []model.QuestionDefinition) error {
	docs := make([]interface{}, len(questions))
	for i := range questions {
		docs[i] = questions[i]
	}
	_, err := r.db.Collection(string(catalog.KindQuestion)).InsertMany(ctx, docs)
	return err
}

func (r *catalogRepo) SeedRecommendations(ctx context.Context, recs []model.RecommendationEntry) error {
	docs := make([]interface{}, len(recs))
	for i := range recs {
		docs[i] = recs[i]
	}
	_, err := r.db.Collection(string(catalog.KindRecommendation)).InsertMany(ctx, docs)
	return err
}

func (r *catalogRepo) SeedFacts(ctx context.Context, facts []model.FactEntry) error {
	docs := make([]interface{}, len(facts))
	for i := range facts {
		docs[i] = facts[i]
	}
	_, err := r.db.Collection(string(catalog.KindFact)).InsertMany(ctx, docs)
	return err
}
