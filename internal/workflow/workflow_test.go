package workflow

import (
	"math/rand"
	"testing"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/rulebook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roles(reviewers []domain.Reviewer) []string {
	res := make([]string, 0, len(reviewers))
	for _, r := range reviewers {
		res = append(res, r.Role)
	}
	return res
}

func pendingReservation(reviewerRoles ...string) *domain.Reservation {
	res := &domain.Reservation{
		ID:             "r1",
		GuestEmail:     "guest@iitrpr.ac.in",
		Status:         domain.StatusPending,
		StepsCompleted: domain.StepSubmitted,
	}
	for _, role := range reviewerRoles {
		res.Reviewers = append(res.Reviewers, domain.Reviewer{Role: role, Status: domain.StatusPending})
	}
	return res
}

func TestChainBuilder_Build_ESA(t *testing.T) {
	b := NewChainBuilder(rulebook.Default())

	chain, err := b.Build(domain.CategoryESA, "DIRECTOR", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "DIRECTOR"}, roles(chain))
	for _, r := range chain {
		assert.Equal(t, domain.StatusPending, r.Status)
		assert.Empty(t, r.Comments)
	}

	_, err = b.Build(domain.CategoryESA, "DIRECTOR,CHAIRMAN", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChainBuilder_Build_BRB1(t *testing.T) {
	b := NewChainBuilder(rulebook.Default())

	chain, err := b.Build(domain.CategoryBRB1, "DEAN STUDENT AFFAIRS, REGISTRAR", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "DEAN STUDENT AFFAIRS", "REGISTRAR"}, roles(chain))

	_, err = b.Build(domain.CategoryBRB1, "DEAN STUDENT AFFAIRS", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChainBuilder_Build_Subroles(t *testing.T) {
	b := NewChainBuilder(rulebook.Default())

	chain, err := b.Build(domain.CategoryBRB1, "DEAN,HOD", "STUDENT AFFAIRS,COMPUTER SCIENCE")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "DEAN STUDENT AFFAIRS", "HOD COMPUTER SCIENCE"}, roles(chain))
}

func TestChainBuilder_Build_EmptyReviewers(t *testing.T) {
	b := NewChainBuilder(rulebook.Default())

	_, err := b.Build(domain.CategoryBRB2, " , ", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChainBuilder_BuildForAdmin_SkipsRules(t *testing.T) {
	b := NewChainBuilder(rulebook.Default())

	chain, err := b.BuildForAdmin("DIRECTOR,CHAIRMAN,HOD", "Select,,PHYSICS")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "DIRECTOR", "CHAIRMAN", "HOD PHYSICS"}, roles(chain))

	chain, err = b.BuildForAdmin("", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN"}, roles(chain))
}

func TestChainBuilder_BuildForAdmin_RejectsUnknownAuthority(t *testing.T) {
	b := NewChainBuilder(rulebook.Default())

	for _, reviewers := range []string{"DEAN", "DIRECTR", "HOD ASTROLOGY", "CASHIER", "DIRECTOR,REGISTRAR,JANITOR"} {
		t.Run(reviewers, func(t *testing.T) {
			_, err := b.BuildForAdmin(reviewers, "")
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestChainBuilder_StoresCanonicalRoles(t *testing.T) {
	b := NewChainBuilder(rulebook.Default())

	chain, err := b.Build(domain.CategoryBRB1, "dean student affairs, Associate_Dean hostel management", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "DEAN STUDENT AFFAIRS", "ASSOCIATE DEAN HOSTEL MANAGEMENT"}, roles(chain))

	chain, err = b.Build(domain.CategoryBRB1, "dean,hod", "student  affairs,computer science")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "DEAN STUDENT AFFAIRS", "HOD COMPUTER SCIENCE"}, roles(chain))

	chain, err = b.BuildForAdmin("Associate_Dean hostel management,admin", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "ASSOCIATE DEAN HOSTEL MANAGEMENT"}, roles(chain))

	chain, err = b.Rebuild(domain.CategoryBRB2, nil, "chairman", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "CHAIRMAN"}, roles(chain))
}

func TestChainBuilder_Rebuild(t *testing.T) {
	b := NewChainBuilder(rulebook.Default())
	existing := []domain.Reviewer{
		{Role: "ADMIN", Status: domain.StatusApproved},
		{Role: "CHAIRMAN", Status: domain.StatusRejected, Comments: "no"},
	}

	chain, err := b.Rebuild(domain.CategoryBRB2, existing, "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "CHAIRMAN"}, roles(chain))
	for _, r := range chain {
		assert.Equal(t, domain.StatusPending, r.Status)
		assert.Equal(t, EditedComment, r.Comments)
	}

	chain, err = b.Rebuild(domain.CategoryBRA, existing, "REGISTRAR", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "REGISTRAR"}, roles(chain))

	_, err = b.Rebuild(domain.CategoryBRA, existing, "CHAIRMAN", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAggregate_Property(t *testing.T) {
	statuses := []domain.Status{domain.StatusPending, domain.StatusApproved, domain.StatusRejected, domain.StatusHold}
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		n := 1 + rnd.Intn(5)
		reviewers := make([]domain.Reviewer, n)
		anyRejected, allApproved := false, true
		for j := range reviewers {
			s := statuses[rnd.Intn(len(statuses))]
			reviewers[j] = domain.Reviewer{Role: "R", Status: s}
			if s == domain.StatusRejected {
				anyRejected = true
			}
			if s != domain.StatusApproved {
				allApproved = false
			}
		}

		got := Aggregate(reviewers)
		switch {
		case anyRejected:
			assert.Equal(t, domain.StatusRejected, got)
		case allApproved:
			assert.Equal(t, domain.StatusApproved, got)
		default:
			assert.Equal(t, domain.StatusPending, got)
		}
	}
}

func TestPendingDelta(t *testing.T) {
	assert.Equal(t, -1, PendingDelta(domain.StatusPending, domain.StatusApproved))
	assert.Equal(t, -1, PendingDelta(domain.StatusPending, domain.StatusRejected))
	assert.Equal(t, 1, PendingDelta(domain.StatusRejected, domain.StatusPending))
	assert.Equal(t, 1, PendingDelta(domain.StatusApproved, domain.StatusPending))
	assert.Equal(t, 0, PendingDelta(domain.StatusApproved, domain.StatusRejected))
	assert.Equal(t, 0, PendingDelta(domain.StatusPending, domain.StatusPending))
}

func TestReview_ApproveAll(t *testing.T) {
	res := pendingReservation("ADMIN", "DIRECTOR")

	effects, err := Review(res, domain.Principal{Role: "ADMIN"}, Action{Kind: ActionApprove, Comments: "ok"})
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, domain.StepAdminApproved, res.StepsCompleted)

	effects, err = Review(res, domain.Principal{Role: "DIRECTOR"}, Action{Kind: ActionApprove})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, res.Status)
	assert.Equal(t, domain.StepAdminApproved, res.StepsCompleted)

	require.Len(t, effects, 3)
	assert.Equal(t, AdjustPending{Email: "guest@iitrpr.ac.in", Delta: -1}, effects[0])
	rec, ok := effects[1].(RecordNotification)
	require.True(t, ok)
	assert.Equal(t, "DIRECTOR", rec.Notification.Sender)
	assert.Equal(t, "r1", rec.Notification.ReservationID)
	assert.Contains(t, rec.Notification.Message, "APPROVED")
	notify, ok := effects[2].(Notify)
	require.True(t, ok)
	assert.Equal(t, []string{"guest@iitrpr.ac.in"}, notify.Message.To)
}

func TestReview_ApproveIdempotent(t *testing.T) {
	once := pendingReservation("ADMIN", "DEAN STUDENT AFFAIRS", "REGISTRAR")
	twice := pendingReservation("ADMIN", "DEAN STUDENT AFFAIRS", "REGISTRAR")
	p := domain.Principal{Role: "DEAN"}
	a := Action{Kind: ActionApprove, Comments: "fine"}

	_, err := Review(once, p, a)
	require.NoError(t, err)
	_, err = Review(twice, p, a)
	require.NoError(t, err)
	_, err = Review(twice, p, a)
	require.NoError(t, err)

	assert.Equal(t, once.Reviewers, twice.Reviewers)
	assert.Equal(t, once.Status, twice.Status)
	assert.Len(t, twice.Reviewers, 3)
}

func TestReview_AdminWithoutEntryIdempotent(t *testing.T) {
	res := pendingReservation("CHAIRMAN")
	p := domain.Principal{Role: "ADMIN"}

	_, err := Review(res, p, Action{Kind: ActionApprove})
	require.NoError(t, err)
	_, err = Review(res, p, Action{Kind: ActionApprove})
	require.NoError(t, err)

	assert.Equal(t, []string{"CHAIRMAN", "ADMIN"}, roles(res.Reviewers))
}

func TestReview_Reject(t *testing.T) {
	res := pendingReservation("ADMIN", "CHAIRMAN")

	effects, err := Review(res, domain.Principal{Role: "CHAIRMAN"}, Action{Kind: ActionReject})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, res.Status)
	assert.Equal(t, "Rejection Reason: No reason provided", res.Reviewers[1].Comments)
	assert.Contains(t, effects, Effect(AdjustPending{Email: res.GuestEmail, Delta: -1}))
}

func TestReview_HoldKeepsPending(t *testing.T) {
	res := pendingReservation("ADMIN", "REGISTRAR")

	effects, err := Review(res, domain.Principal{Role: "REGISTRAR"}, Action{Kind: ActionHold, Comments: "wait"})
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, domain.StatusHold, res.Reviewers[1].Status)
	assert.Equal(t, "wait", res.Reviewers[1].Comments)
}

func TestReview_ChairmanRevertsRejection(t *testing.T) {
	res := pendingReservation("ADMIN", "CHAIRMAN")
	res.Reviewers[0].Status = domain.StatusApproved
	res.Reviewers[1].Status = domain.StatusRejected
	res.Status = domain.StatusRejected

	effects, err := Review(res, domain.Principal{Role: "CHAIRMAN"}, Action{Kind: ActionApprove, Comments: "reconsidered"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, res.Reviewers[1].Status)
	assert.Equal(t, domain.StatusPending, res.Reviewers[0].Status)
	assert.Equal(t, "Reverted by Chairman, needs review again: reconsidered", res.Reviewers[0].Comments)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, domain.StepSubmitted, res.StepsCompleted)
	assert.Contains(t, effects, Effect(AdjustPending{Email: res.GuestEmail, Delta: 1}))
}

func TestReview_RevertOnlyForChairman(t *testing.T) {
	res := pendingReservation("ADMIN", "REGISTRAR")
	res.Reviewers[0].Status = domain.StatusApproved
	res.Reviewers[1].Status = domain.StatusRejected
	res.Status = domain.StatusRejected

	_, err := Review(res, domain.Principal{Role: "REGISTRAR"}, Action{Kind: ActionApprove})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, res.Reviewers[0].Status)
	assert.Equal(t, domain.StatusApproved, res.Status)
}

func TestReview_Forbidden(t *testing.T) {
	res := pendingReservation("ADMIN", "CHAIRMAN")

	_, err := Review(res, domain.Principal{Role: "DIRECTOR"}, Action{Kind: ActionApprove})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = Review(res, domain.Principal{Role: "USER"}, Action{Kind: ActionReject})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReview_DeanDoesNotMatchAssociateDean(t *testing.T) {
	res := pendingReservation("ADMIN", "ASSOCIATE DEAN INFRASTRUCTURE")

	_, err := Review(res, domain.Principal{Role: "DEAN"}, Action{Kind: ActionApprove})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = Review(res, domain.Principal{Role: "ASSOCIATE_DEAN"}, Action{Kind: ActionApprove})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, res.Reviewers[1].Status)
}

func TestReview_QualifiedPrincipal(t *testing.T) {
	res := pendingReservation("ADMIN", "HOD COMPUTER SCIENCE")

	_, err := Review(res, domain.Principal{Role: "HOD PHYSICS"}, Action{Kind: ActionApprove})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = Review(res, domain.Principal{Role: "HOD COMPUTER SCIENCE"}, Action{Kind: ActionApprove})
	require.NoError(t, err)
}
