package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/courtflow/case-management/internal/core/domain"
)

const collectionSchedules = "schedules"

type ScheduleRepository struct {
	col *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{col: db.Collection(collectionSchedules)}
}

// scheduleDoc keeps the date and the "15:04" wall-clock string as separate
// fields, matching the wire contract. case_id and assigned_judge are
// ObjectIDs for the $lookup joins.
type scheduleDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CaseID        primitive.ObjectID `bson:"case_id"`
	AssignedJudge primitive.ObjectID `bson:"assigned_judge"`
	StartDate     time.Time          `bson:"start_date"`
	StartTime     string             `bson:"start_time"`
	EndDate       time.Time          `bson:"end_date"`
	EndTime       string             `bson:"end_time"`
	Room          string             `bson:"room"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
}

type scheduleRow struct {
	scheduleDoc `bson:",inline"`
	Case        []caseDoc `bson:"case"`
	Judge       []userDoc `bson:"judge"`
}

func (d *scheduleDoc) toDomain() domain.Schedule {
	return domain.Schedule{
		ID:            d.ID.Hex(),
		CaseID:        d.CaseID.Hex(),
		AssignedJudge: d.AssignedJudge.Hex(),
		StartDate:     d.StartDate,
		StartTime:     d.StartTime,
		EndDate:       d.EndDate,
		EndTime:       d.EndTime,
		Room:          d.Room,
		Status:        domain.ScheduleStatus(d.Status),
	}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	caseOID, err := primitive.ObjectIDFromHex(s.CaseID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad case id %q", domain.ErrValidation, s.CaseID)
	}
	judgeOID, err := primitive.ObjectIDFromHex(s.AssignedJudge)
	if err != nil {
		return nil, fmt.Errorf("%w: bad judge id %q", domain.ErrValidation, s.AssignedJudge)
	}

	doc := scheduleDoc{
		CaseID:        caseOID,
		AssignedJudge: judgeOID,
		StartDate:     s.StartDate,
		StartTime:     s.StartTime,
		EndDate:       s.EndDate,
		EndTime:       s.EndTime,
		Room:          s.Room,
		Status:        string(s.Status),
		CreatedAt:     time.Now().UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	out := doc.toDomain()
	return &out, nil
}

// List returns hearings sorted ascending by start date then start time, with
// the case and judge records joined in. Empty judgeID returns every hearing.
func (r *ScheduleRepository) List(ctx context.Context, judgeID string) ([]*domain.HearingView, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{}
	if judgeID != "" {
		judgeOID, err := primitive.ObjectIDFromHex(judgeID)
		if err != nil {
			return nil, nil
		}
		match["assigned_judge"] = judgeOID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "start_date", Value: 1}, {Key: "start_time", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionCases,
			"localField":   "case_id",
			"foreignField": "_id",
			"as":           "case",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionUsers,
			"localField":   "assigned_judge",
			"foreignField": "_id",
			"as":           "judge",
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.HearingView
	for cur.Next(ctx) {
		var row scheduleRow
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode schedule: %w", err)
		}
		view := &domain.HearingView{Schedule: row.toDomain()}
		if len(row.Case) > 0 {
			c := row.Case[0]
			view.Case = &domain.CaseSummary{
				ID:         c.ID.Hex(),
				CaseNumber: c.CaseNumber,
				Title:      c.Title,
				Status:     domain.CaseStatus(c.Status),
			}
		}
		if len(row.Judge) > 0 {
			j := row.Judge[0]
			view.Judge = &domain.JudgeSummary{
				ID:       j.ID.Hex(),
				Fullname: j.Fullname,
				Email:    j.Email,
			}
		}
		out = append(out, view)
	}
	return out, cur.Err()
}

// EnsureIndexes creates the indexes backing the judge-scoped listing.
func (r *ScheduleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "assigned_judge", Value: 1}}},
		{Keys: bson.D{{Key: "start_date", Value: 1}, {Key: "start_time", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
