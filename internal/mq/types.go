package mq

import (
	"accorcia/internal/model"
)

// VisitMessage carries a visit notification between instances
type VisitMessage struct {
	Topic string           `json:"topic"`
	Event model.VisitEvent `json:"event"`
}
