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
)

const collectionNotifications = "notifications"

type NotificationRepository struct {
	col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{col: db.Collection(collectionNotifications)}
}

// notificationDoc stores user_id and case_id as ObjectIDs so the case summary
// can be joined with a plain $lookup.
type notificationDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	UserID  primitive.ObjectID `bson:"user_id"`
	CaseID  primitive.ObjectID `bson:"case_id"`
	Title   string             `bson:"title"`
	Message string             `bson:"message"`
	Status  string             `bson:"status"`
	SentAt  time.Time          `bson:"sent_at"`
}

type notificationRow struct {
	notificationDoc `bson:",inline"`
	Case            []caseDoc `bson:"case"`
}

func (d *notificationDoc) toDomain() *domain.Notification {
	return &domain.Notification{
		ID:      d.ID.Hex(),
		UserID:  d.UserID.Hex(),
		CaseID:  d.CaseID.Hex(),
		Title:   d.Title,
		Message: d.Message,
		Status:  domain.NotificationStatus(d.Status),
		SentAt:  d.SentAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userOID, err := primitive.ObjectIDFromHex(n.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id %q", domain.ErrValidation, n.UserID)
	}
	caseOID, err := primitive.ObjectIDFromHex(n.CaseID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad case id %q", domain.ErrValidation, n.CaseID)
	}

	doc := notificationDoc{
		UserID:  userOID,
		CaseID:  caseOID,
		Title:   n.Title,
		Message: n.Message,
		Status:  string(n.Status),
		SentAt:  n.SentAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrNotificationExists
		}
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *NotificationRepository) FindByUserAndCase(ctx context.Context, userID, caseID string) (*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrNotificationNotFound
	}
	caseOID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return nil, domain.ErrNotificationNotFound
	}

	var doc notificationDoc
	err = r.col.FindOne(ctx, bson.M{"user_id": userOID, "case_id": caseOID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("find notification: %w", err)
	}
	return doc.toDomain(), nil
}

// ListByUser returns the user's notifications newest first with the case
// summary joined in.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userOID}}},
		{{Key: "$sort", Value: bson.D{{Key: "sent_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionCases,
			"localField":   "case_id",
			"foreignField": "_id",
			"as":           "case",
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Notification
	for cur.Next(ctx) {
		var row notificationRow
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		n := row.toDomain()
		if len(row.Case) > 0 {
			c := row.Case[0]
			n.Case = &domain.CaseSummary{
				ID:         c.ID.Hex(),
				CaseNumber: c.CaseNumber,
				Title:      c.Title,
				Status:     domain.CaseStatus(c.Status),
			}
		}
		out = append(out, n)
	}
	return out, cur.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotificationNotFound
	}

	update := bson.M{"$set": bson.M{"status": string(domain.NotificationRead)}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc notificationDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique (user_id, case_id) index that makes
// assignment notifications idempotent under concurrent endorsement.
func (r *NotificationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "case_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "sent_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
