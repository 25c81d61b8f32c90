package service

import "envrt-site/internal/model"

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastLead(lead *model.Lead)
}
