package transport

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/camara-go/camara/models"
)

// QualityOnDemandBasePath is the default mount point of the QoD API.
const QualityOnDemandBasePath = "/quality-on-demand/v1"

// QualityOnDemand manages QoD sessions.
type QualityOnDemand struct {
	c    *Client
	base string
}

// NewQualityOnDemand returns a QoD client mounted at QualityOnDemandBasePath.
func NewQualityOnDemand(c *Client) *QualityOnDemand {
	return &QualityOnDemand{c: c, base: QualityOnDemandBasePath}
}

func (q *QualityOnDemand) sessionPath(id uuid.UUID) string { return q.base + "/sessions/" + id.String() }

// CreateSession requests a new session.
func (q *QualityOnDemand) CreateSession(ctx context.Context, req models.CreateSession) (models.SessionInfo, error) {
	return Call(ctx, q.c, http.MethodPost, q.base+"/sessions", models.CreateSessionSchema(), req, models.SessionInfoSchema())
}

// GetSession fetches a session by id.
func (q *QualityOnDemand) GetSession(ctx context.Context, id uuid.UUID) (models.SessionInfo, error) {
	return Call[struct{}](ctx, q.c, http.MethodGet, q.sessionPath(id), nil, struct{}{}, models.SessionInfoSchema())
}

// DeleteSession releases a session.
func (q *QualityOnDemand) DeleteSession(ctx context.Context, id uuid.UUID) error {
	_, err := Call[struct{}, struct{}](ctx, q.c, http.MethodDelete, q.sessionPath(id), nil, struct{}{}, nil)
	return err
}
