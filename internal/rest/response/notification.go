package response

import "github.com/Guyuepp/go-clean-social/domain"

type Notification struct {
	ID         int64  `json:"id"`
	ActorID    int64  `json:"actor_id"`
	Verb       string `json:"verb"`
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
	Read       bool   `json:"read"`
	CreatedAt  string `json:"created_at"`
}

func NewNotificationsFromDomain(ns []domain.Notification) []Notification {
	res := make([]Notification, len(ns))
	for i, n := range ns {
		res[i] = Notification{
			ID:         n.ID,
			ActorID:    n.ActorID,
			Verb:       n.Verb,
			TargetType: n.TargetType,
			TargetID:   n.TargetID,
			Read:       n.Read,
			CreatedAt:  n.CreatedAt.Format(DateTimeFormat),
		}
	}
	return res
}
