package access

import "context"

type actorKey struct{}

// WithActor stores the authenticated actor on ctx.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by the authentication middleware.
func ActorFromContext(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || actor.UserID == "" {
		return Actor{}, ErrUnauthenticated
	}
	return actor, nil
}
