package workflow

import (
	"fmt"
	"html"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

type ActionKind string

const (
	ActionApprove ActionKind = "approve"
	ActionReject  ActionKind = "reject"
	ActionHold    ActionKind = "hold"
)

type Action struct {
	Kind ActionKind
	// Comments for approve and hold, the reason for reject.
	Comments string
}

// Effect is a side effect requested by a transition.
type Effect interface {
	effect()
}

// AdjustPending moves the guest's pending request counter.
type AdjustPending struct {
	Email string
	Delta int
}

// RecordNotification appends an inbox record to the guest account.
type RecordNotification struct {
	Notification domain.Notification
}

// Notify sends an external message, best effort.
type Notify struct {
	Message domain.Message
}

func (AdjustPending) effect()      {}
func (RecordNotification) effect() {}
func (Notify) effect()             {}

// Aggregate folds reviewer states into the overall status.
func Aggregate(reviewers []domain.Reviewer) domain.Status {
	if len(reviewers) == 0 {
		return domain.StatusPending
	}
	approved := true
	for _, r := range reviewers {
		if r.Status == domain.StatusRejected {
			return domain.StatusRejected
		}
		if r.Status != domain.StatusApproved {
			approved = false
		}
	}
	if approved {
		return domain.StatusApproved
	}
	return domain.StatusPending
}

// Steps is 2 once the ADMIN reviewer approved, else 1.
func Steps(reviewers []domain.Reviewer) int {
	for _, r := range reviewers {
		if domain.ParseRole(r.Role).Kind == domain.RoleAdmin && r.Status == domain.StatusApproved {
			return domain.StepAdminApproved
		}
	}
	return domain.StepSubmitted
}

// PendingDelta is the counter move for an overall status change.
func PendingDelta(from, to domain.Status) int {
	switch {
	case from == to:
		return 0
	case !from.Settled() && to.Settled():
		return -1
	case from.Settled() && !to.Settled():
		return 1
	}
	return 0
}

// Authorized reports whether the principal may review the reservation.
func Authorized(res *domain.Reservation, p domain.Principal) bool {
	role := p.ParsedRole()
	if role.Kind == domain.RoleAdmin {
		return true
	}
	return res.ReviewerFor(role) != nil
}

// Review applies one reviewer action to res in place and recomputes the
// overall status and progress.
func Review(res *domain.Reservation, p domain.Principal, a Action) ([]Effect, error) {
	if !Authorized(res, p) {
		return nil, domain.ErrForbidden
	}

	role := p.ParsedRole()
	var status domain.Status
	switch a.Kind {
	case ActionApprove:
		status = domain.StatusApproved
	case ActionReject:
		status = domain.StatusRejected
	case ActionHold:
		status = domain.StatusHold
	default:
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrValidation, a.Kind)
	}

	reverting := false
	if a.Kind == ActionApprove && role.Kind == domain.RoleChairman {
		if r := res.Reviewer(domain.RoleChairman); r != nil && r.Status == domain.StatusRejected {
			reverting = true
		}
	}

	comments := a.Comments
	if a.Kind == ActionReject {
		comments = "Rejection Reason: " + orDefault(a.Comments, "No reason provided")
	}

	found := false
	for i := range res.Reviewers {
		if !domain.ParseRole(res.Reviewers[i].Role).Matches(role) {
			continue
		}
		found = true
		res.Reviewers[i].Status = status
		if comments != "" {
			res.Reviewers[i].Comments = comments
		}
	}
	if !found && role.Kind == domain.RoleAdmin && a.Kind != ActionHold {
		res.Reviewers = append(res.Reviewers, domain.Reviewer{
			Role:     string(domain.RoleAdmin),
			Status:   status,
			Comments: comments,
		})
	}

	if reverting {
		note := "Reverted by Chairman, needs review again: " + a.Comments
		if admin := res.Reviewer(domain.RoleAdmin); admin != nil {
			admin.Status = domain.StatusPending
			admin.Comments = note
		} else {
			res.Reviewers = append(res.Reviewers, domain.Reviewer{
				Role:     string(domain.RoleAdmin),
				Status:   domain.StatusPending,
				Comments: "Added by Chairman after reverting rejection: " + a.Comments,
			})
		}
	}

	before := res.Status
	res.Status = Aggregate(res.Reviewers)
	res.StepsCompleted = Steps(res.Reviewers)

	if before == res.Status {
		return nil, nil
	}

	detail := orDefault(a.Comments, "No comments")
	if a.Kind == ActionReject {
		detail = "Reason: " + orDefault(a.Comments, "No reason provided")
	}
	return StatusChanged(res, before, p.Role, detail), nil
}

// StatusChanged lists the effects of an overall status move from before to
// res.Status.
func StatusChanged(res *domain.Reservation, before domain.Status, sender, detail string) []Effect {
	if before == res.Status {
		return nil
	}

	var effects []Effect
	if d := PendingDelta(before, res.Status); d != 0 {
		effects = append(effects, AdjustPending{Email: res.GuestEmail, Delta: d})
	}

	msg := fmt.Sprintf("Reservation Status changed to %s - %s", res.Status, detail)
	effects = append(effects,
		RecordNotification{Notification: domain.Notification{
			UserEmail:     res.GuestEmail,
			Message:       msg,
			Sender:        sender,
			ReservationID: res.ID,
		}},
		Notify{Message: domain.Message{
			To:      []string{res.GuestEmail},
			Subject: "Reservation status updated",
			HTML:    fmt.Sprintf("<div>Your reservation status is now %s</div><br><div>Comments: %s</div>", res.Status, html.EscapeString(detail)),
		}},
	)
	return effects
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
