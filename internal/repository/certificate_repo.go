package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"climatewise/internal/model"
)

// CertificateRepo handles MongoDB operations for certificates. The
// certificate code is the document id, so verification is a point lookup.
type CertificateRepo interface {
	Create(ctx context.Context, cert *model.CertificateRecord) error
	GetByCode(ctx context.Context, code string) (*model.CertificateRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.CertificateRecord, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type certificateRepo struct {
	collection *mongo.Collection
}

// NewCertificateRepo creates a new certificate repository
func NewCertificateRepo(db *mongo.Database) CertificateRepo {
	return &certificateRepo{
		collection: db.Collection("certificates"),
	}
}

func (r *certificateRepo) Create(ctx context.Context, cert *model.CertificateRecord) error {
	_, err := r.collection.InsertOne(ctx, cert)
	return err
}

func (r *certificateRepo) GetByCode(ctx context.Context, code string) (*model.CertificateRecord, error) {
	var cert model.CertificateRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": code}).Decode(&cert)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *certificateRepo) GetByUserID(ctx context.Context, userID string) ([]*model.CertificateRecord, error) {
	opts := options.Find().SetSort(bson.M{"completedAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var certs []*model.CertificateRecord
	if err := cursor.All(ctx, &certs); err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *certificateRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
