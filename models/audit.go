package models

import "time"

// AuditEntry records a mutating request made by an authenticated user.
type AuditEntry struct {
	ID        string    `bson:"id" json:"id"`
	ActorID   string    `bson:"actorId" json:"actorId"`
	Method    string    `bson:"method" json:"method"`
	Path      string    `bson:"path" json:"path"`
	Status    int       `bson:"status" json:"status"`
	ClientIP  string    `bson:"clientIp" json:"clientIp"`
	LatencyMS int64     `bson:"latencyMs" json:"latencyMs"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
