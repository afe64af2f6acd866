package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

const collectionCases = "cases"

type CaseRepository struct {
	col *mongo.Collection
}

func NewCaseRepository(db *mongo.Database) *CaseRepository {
	return &CaseRepository{col: db.Collection(collectionCases)}
}

type caseDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	CaseNumber           string             `bson:"case_number,omitempty"`
	Title                string             `bson:"title"`
	Description          string             `bson:"description,omitempty"`
	PartiesInvolved      string             `bson:"parties_involved,omitempty"`
	FiledByName          string             `bson:"filed_by_name"`
	Status               string             `bson:"status"`
	RegistrationNotes    string             `bson:"registration_notes,omitempty"`
	RegisteredBy         string             `bson:"registered_by,omitempty"`
	RegisteredByName     string             `bson:"registered_by_name,omitempty"`
	SubmittedToRegistrar bool               `bson:"submitted_to_registrar"`
	SubmittedBy          string             `bson:"submitted_by,omitempty"`
	SubmittedByName      string             `bson:"submitted_by_name,omitempty"`
	AssignedJudge        string             `bson:"assigned_judge,omitempty"`
	AssignedJudgeName    string             `bson:"assigned_judge_name,omitempty"`
	EndorsedBy           string             `bson:"endorsed_by,omitempty"`
	RegistrarName        string             `bson:"registrar_name,omitempty"`
	CreatedAt            time.Time          `bson:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at"`
}

func (d *caseDoc) toDomain() *domain.Case {
	return &domain.Case{
		ID:                   d.ID.Hex(),
		CaseNumber:           d.CaseNumber,
		Title:                d.Title,
		Description:          d.Description,
		PartiesInvolved:      d.PartiesInvolved,
		FiledByName:          d.FiledByName,
		Status:               domain.CaseStatus(d.Status),
		RegistrationNotes:    d.RegistrationNotes,
		RegisteredBy:         d.RegisteredBy,
		RegisteredByName:     d.RegisteredByName,
		SubmittedToRegistrar: d.SubmittedToRegistrar,
		SubmittedBy:          d.SubmittedBy,
		SubmittedByName:      d.SubmittedByName,
		AssignedJudge:        d.AssignedJudge,
		AssignedJudgeName:    d.AssignedJudgeName,
		EndorsedBy:           d.EndorsedBy,
		RegistrarName:        d.RegistrarName,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := caseDoc{
		CaseNumber:           c.CaseNumber,
		Title:                c.Title,
		Description:          c.Description,
		PartiesInvolved:      c.PartiesInvolved,
		FiledByName:          c.FiledByName,
		Status:               string(c.Status),
		RegistrationNotes:    c.RegistrationNotes,
		RegisteredBy:         c.RegisteredBy,
		RegisteredByName:     c.RegisteredByName,
		SubmittedToRegistrar: c.SubmittedToRegistrar,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert case: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CaseRepository) FindByID(ctx context.Context, id string) (*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCaseNotFound
	}

	var doc caseDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("find case: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns cases newest first. Zero-value filter fields are ignored.
func (r *CaseRepository) List(ctx context.Context, filter ports.ListCasesFilter) ([]*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.RegisteredBy != "" {
		query["registered_by"] = filter.RegisteredBy
	}
	if filter.AssignedJudge != "" {
		query["assigned_judge"] = filter.AssignedJudge
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Case
	for cur.Next(ctx) {
		var doc caseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode case: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// Update applies patch in a single findOneAndUpdate so concurrent lifecycle
// calls cannot interleave partial writes. updated_at is always bumped.
func (r *CaseRepository) Update(ctx context.Context, id string, patch ports.CasePatch) (*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCaseNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.RegistrationNotes != nil {
		set["registration_notes"] = *patch.RegistrationNotes
	}
	if patch.RegisteredByName != nil {
		set["registered_by_name"] = *patch.RegisteredByName
	}
	if patch.SubmittedToRegistrar != nil {
		set["submitted_to_registrar"] = *patch.SubmittedToRegistrar
	}
	if patch.SubmittedBy != nil {
		set["submitted_by"] = *patch.SubmittedBy
	}
	if patch.SubmittedByName != nil {
		set["submitted_by_name"] = *patch.SubmittedByName
	}
	if patch.AssignedJudge != nil {
		set["assigned_judge"] = *patch.AssignedJudge
	}
	if patch.AssignedJudgeName != nil {
		set["assigned_judge_name"] = *patch.AssignedJudgeName
	}
	if patch.EndorsedBy != nil {
		set["endorsed_by"] = *patch.EndorsedBy
	}
	if patch.RegistrarName != nil {
		set["registrar_name"] = *patch.RegistrarName
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc caseDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("update case: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CaseRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCaseNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *CaseRepository) Count(ctx context.Context, status domain.CaseStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if status != "" {
		query["status"] = string(status)
	}
	return r.col.CountDocuments(ctx, query)
}

// EnsureIndexes creates the indexes backing the list filters.
func (r *CaseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_judge", Value: 1}}},
		{Keys: bson.D{{Key: "registered_by", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
