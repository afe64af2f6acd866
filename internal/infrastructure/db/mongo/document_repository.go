package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/courtflow/case-management/internal/core/domain"
)

const collectionDocuments = "documents"

type DocumentRepository struct {
	col *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{col: db.Collection(collectionDocuments)}
}

type documentDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CaseID     primitive.ObjectID `bson:"case_id"`
	FileName   string             `bson:"file_name"`
	FilePath   string             `bson:"file_path"`
	UploadedAt time.Time          `bson:"uploaded_at"`
}

func (d *documentDoc) toDomain() *domain.Document {
	return &domain.Document{
		ID:         d.ID.Hex(),
		CaseID:     d.CaseID.Hex(),
		FileName:   d.FileName,
		FilePath:   d.FilePath,
		UploadedAt: d.UploadedAt,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	caseOID, err := primitive.ObjectIDFromHex(d.CaseID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad case id %q", domain.ErrValidation, d.CaseID)
	}

	doc := documentDoc{
		CaseID:     caseOID,
		FileName:   d.FileName,
		FilePath:   d.FilePath,
		UploadedAt: d.UploadedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *DocumentRepository) ListByCase(ctx context.Context, caseID string) ([]*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	caseOID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return nil, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"case_id": caseOID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Document
	for cur.Next(ctx) {
		var doc documentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *DocumentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "case_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
