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

const collectionJudgments = "judgments"

type JudgmentRepository struct {
	col *mongo.Collection
}

func NewJudgmentRepository(db *mongo.Database) *JudgmentRepository {
	return &JudgmentRepository{col: db.Collection(collectionJudgments)}
}

type judgmentDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CaseID       primitive.ObjectID `bson:"case_id"`
	JudgmentText string             `bson:"judgment_text"`
	Verdict      string             `bson:"verdict"`
	JudgeID      primitive.ObjectID `bson:"judge_id"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d *judgmentDoc) toDomain() *domain.Judgment {
	return &domain.Judgment{
		ID:           d.ID.Hex(),
		CaseID:       d.CaseID.Hex(),
		JudgmentText: d.JudgmentText,
		Verdict:      d.Verdict,
		JudgeID:      d.JudgeID.Hex(),
		CreatedAt:    d.CreatedAt,
	}
}

func (r *JudgmentRepository) Create(ctx context.Context, j *domain.Judgment) (*domain.Judgment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	caseOID, err := primitive.ObjectIDFromHex(j.CaseID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad case id %q", domain.ErrValidation, j.CaseID)
	}
	judgeOID, err := primitive.ObjectIDFromHex(j.JudgeID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad judge id %q", domain.ErrValidation, j.JudgeID)
	}

	doc := judgmentDoc{
		CaseID:       caseOID,
		JudgmentText: j.JudgmentText,
		Verdict:      j.Verdict,
		JudgeID:      judgeOID,
		CreatedAt:    time.Now().UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert judgment: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *JudgmentRepository) ListByCase(ctx context.Context, caseID string) ([]*domain.Judgment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	caseOID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return nil, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"case_id": caseOID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list judgments: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Judgment
	for cur.Next(ctx) {
		var doc judgmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode judgment: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *JudgmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "case_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
