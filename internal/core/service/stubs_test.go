package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests. They mirror the contracts of
// the Mongo repositories (clone on read/write, sentinel errors, sort orders).
// ---------------------------------------------------------------------------

type stubCaseRepo struct {
	byID      map[string]*domain.Case
	seq       int
	createErr error
	updateErr error
	deleteErr error
}

func newStubCaseRepo() *stubCaseRepo {
	return &stubCaseRepo{byID: make(map[string]*domain.Case)}
}

func (r *stubCaseRepo) Create(_ context.Context, c *domain.Case) (*domain.Case, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *c
	clone.ID = fmt.Sprintf("case-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCaseRepo) FindByID(_ context.Context, id string) (*domain.Case, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCaseRepo) List(_ context.Context, filter ports.ListCasesFilter) ([]*domain.Case, error) {
	var out []*domain.Case
	for _, c := range r.byID {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.RegisteredBy != "" && c.RegisteredBy != filter.RegisteredBy {
			continue
		}
		if filter.AssignedJudge != "" && c.AssignedJudge != filter.AssignedJudge {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubCaseRepo) Update(_ context.Context, id string, patch ports.CasePatch) (*domain.Case, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.RegistrationNotes != nil {
		c.RegistrationNotes = *patch.RegistrationNotes
	}
	if patch.RegisteredByName != nil {
		c.RegisteredByName = *patch.RegisteredByName
	}
	if patch.SubmittedToRegistrar != nil {
		c.SubmittedToRegistrar = *patch.SubmittedToRegistrar
	}
	if patch.SubmittedBy != nil {
		c.SubmittedBy = *patch.SubmittedBy
	}
	if patch.SubmittedByName != nil {
		c.SubmittedByName = *patch.SubmittedByName
	}
	if patch.AssignedJudge != nil {
		c.AssignedJudge = *patch.AssignedJudge
	}
	if patch.AssignedJudgeName != nil {
		c.AssignedJudgeName = *patch.AssignedJudgeName
	}
	if patch.EndorsedBy != nil {
		c.EndorsedBy = *patch.EndorsedBy
	}
	if patch.RegistrarName != nil {
		c.RegistrarName = *patch.RegistrarName
	}
	clone := *c
	return &clone, nil
}

func (r *stubCaseRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCaseNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubCaseRepo) Count(_ context.Context, status domain.CaseStatus) (int64, error) {
	var n int64
	for _, c := range r.byID {
		if status == "" || c.Status == status {
			n++
		}
	}
	return n, nil
}

type stubUserRepo struct {
	byID map[string]*domain.User
	seq  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.byID {
		if u.Role == role {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Fullname != nil {
		u.Fullname = *patch.Fullname
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, u := range r.byID {
		out[u.Role]++
	}
	return out, nil
}

func (r *stubUserRepo) Recent(_ context.Context, limit int) ([]*domain.User, error) {
	users, _ := r.List(context.Background())
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type stubNotificationRepo struct {
	byPair    map[string]*domain.Notification // userID + "|" + caseID
	seq       int
	createErr error
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{byPair: make(map[string]*domain.Notification)}
}

func pairKey(userID, caseID string) string { return userID + "|" + caseID }

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	key := pairKey(n.UserID, n.CaseID)
	if _, ok := r.byPair[key]; ok {
		return nil, domain.ErrNotificationExists
	}
	r.seq++
	clone := *n
	clone.ID = fmt.Sprintf("notif-%d", r.seq)
	r.byPair[key] = &clone
	out := clone
	return &out, nil
}

func (r *stubNotificationRepo) FindByUserAndCase(_ context.Context, userID, caseID string) (*domain.Notification, error) {
	n, ok := r.byPair[pairKey(userID, caseID)]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.byPair {
		if n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) (*domain.Notification, error) {
	for _, n := range r.byPair {
		if n.ID == id {
			n.Status = domain.NotificationRead
			clone := *n
			return &clone, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

type stubScheduleRepo struct {
	items     []*domain.HearingView
	seq       int
	createErr error
}

func (r *stubScheduleRepo) Create(_ context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *s
	clone.ID = fmt.Sprintf("sched-%d", r.seq)
	r.items = append(r.items, &domain.HearingView{Schedule: clone})
	out := clone
	return &out, nil
}

func (r *stubScheduleRepo) List(_ context.Context, judgeID string) ([]*domain.HearingView, error) {
	var out []*domain.HearingView
	for _, v := range r.items {
		if judgeID != "" && v.AssignedJudge != judgeID {
			continue
		}
		clone := *v
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt().Before(out[j].StartAt()) })
	return out, nil
}

type stubJudgmentRepo struct {
	items     []*domain.Judgment
	seq       int
	createErr error
}

func (r *stubJudgmentRepo) Create(_ context.Context, j *domain.Judgment) (*domain.Judgment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *j
	clone.ID = fmt.Sprintf("judg-%d", r.seq)
	r.items = append(r.items, &clone)
	out := clone
	return &out, nil
}

func (r *stubJudgmentRepo) ListByCase(_ context.Context, caseID string) ([]*domain.Judgment, error) {
	var out []*domain.Judgment
	for _, j := range r.items {
		if j.CaseID == caseID {
			clone := *j
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubEndorseGuard struct {
	seen    map[string]bool
	seenErr error
	markErr error
	marked  []string
}

func newStubEndorseGuard() *stubEndorseGuard {
	return &stubEndorseGuard{seen: make(map[string]bool)}
}

func (g *stubEndorseGuard) Seen(_ context.Context, judgeID, caseID string) (bool, error) {
	if g.seenErr != nil {
		return false, g.seenErr
	}
	return g.seen[pairKey(judgeID, caseID)], nil
}

func (g *stubEndorseGuard) Mark(_ context.Context, judgeID, caseID string) error {
	if g.markErr != nil {
		return g.markErr
	}
	key := pairKey(judgeID, caseID)
	g.seen[key] = true
	g.marked = append(g.marked, key)
	return nil
}
