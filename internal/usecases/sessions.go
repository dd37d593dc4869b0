package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// StartSession opens a questionnaire session with a fresh generation budget.
type StartSession interface {
	Execute(ctx context.Context) (domain.Session, error)
}

// StartSessionImpl is the implementation of the StartSession use case.
type StartSessionImpl struct {
	cache CacheManager
}

// NewStartSessionImpl creates a new StartSessionImpl.
func NewStartSessionImpl(cm CacheManager) StartSessionImpl {
	return StartSessionImpl{cache: cm}
}

// Execute creates the session.
func (ss StartSessionImpl) Execute(ctx context.Context) (domain.Session, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	id, err := uuid.NewRandom()
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Session{}, fmt.Errorf("failed to generate session id: %w", err)
	}
	return ss.cache.StartSession(id.String()), nil
}

// GetSession returns the state of a session, including its remaining budget.
type GetSession interface {
	Query(ctx context.Context, sessionID string) (domain.Session, error)
}

// GetSessionImpl is the implementation of the GetSession use case.
type GetSessionImpl struct {
	cache CacheManager
}

// NewGetSessionImpl creates a new GetSessionImpl.
func NewGetSessionImpl(cm CacheManager) GetSessionImpl {
	return GetSessionImpl{cache: cm}
}

// Query returns a *domain.NotFoundErr for unknown sessions.
func (gs GetSessionImpl) Query(ctx context.Context, sessionID string) (domain.Session, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	return lookupSession(gs.cache, sessionID)
}

func lookupSession(cm CacheManager, sessionID string) (domain.Session, error) {
	session, ok := cm.Session(sessionID)
	if !ok {
		return domain.Session{}, domain.NewNotFoundErr(fmt.Sprintf("session %s not found", sessionID))
	}
	return session, nil
}

// InitSessions registers the session use cases.
type InitSessions struct {
	CacheManager CacheManager `resolve:""`
}

// Initialize registers StartSession and GetSession in the dependency container.
func (i InitSessions) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[StartSession](NewStartSessionImpl(i.CacheManager))
	depend.Register[GetSession](NewGetSessionImpl(i.CacheManager))
	return ctx, nil
}
