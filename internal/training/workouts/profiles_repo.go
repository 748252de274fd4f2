package workouts

import (
	"context"
	"errors"
	"time"

	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	gocache "github.com/patrickmn/go-cache"
)

var ErrProfileNotFound = errors.New("profile not found")

const (
	profileCacheExpiration = 10 * time.Minute
	profileCacheCleanup    = 30 * time.Minute
)

// ProfilesRepo reads user profiles. Display names change rarely but
// get read on every finished session (log denormalization) and on
// every leaderboard refresh, so results are cached.
type ProfilesRepo struct {
	db    *pgxpool.Pool
	cache *gocache.Cache
}

func NewProfilesRepo(db *pgxpool.Pool) *ProfilesRepo {
	return &ProfilesRepo{
		db:    db,
		cache: gocache.New(profileCacheExpiration, profileCacheCleanup),
	}
}

func (r *ProfilesRepo) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cached, found := r.cache.Get(userID); found {
		profile := cached.(Profile)
		return &profile, nil
	}

	profile := &Profile{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, name, COALESCE(avatar, '')
			FROM profile
			WHERE id = $1;
		`, userID).
		Scan(&profile.ID, &profile.Name, &profile.Avatar)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	r.cache.Set(userID, *profile, gocache.DefaultExpiration)
	return profile, nil
}
