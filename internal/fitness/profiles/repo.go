package profiles

import (
	"context"
	"errors"
	"time"

	"github.com/fitstride/fitstride/internal/fitness/metrics"
	"github.com/fitstride/fitstride/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	var p Profile
	err = r.db.QueryRow(ctx, `
		SELECT user_id, age, weight_kg, height_cm, gender, fitness_level, bmi, bmr, updated_at
			FROM user_profile
			WHERE user_id = $1;`,
		userID,
	).Scan(
		&p.UserID, &p.Age, &p.WeightKg, &p.HeightCm, &p.Gender,
		&p.FitnessLevel, &p.BMI, &p.BMR, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save upserts the profile. The derived BMI and BMR fields are
// recomputed here from the incoming values, whatever the caller set.
func (r *Repo) Save(ctx context.Context, profile Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", profile.UserID))

	profile.BMI = metrics.ComputeBMI(profile.WeightKg, profile.HeightCm)
	profile.BMR = metrics.ComputeBMR(profile.WeightKg, profile.HeightCm, profile.Age, profile.Gender)
	profile.UpdatedAt = time.Now()

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_profile
			(user_id, age, weight_kg, height_cm, gender, fitness_level, bmi, bmr, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			age = EXCLUDED.age,
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			gender = EXCLUDED.gender,
			fitness_level = EXCLUDED.fitness_level,
			bmi = EXCLUDED.bmi,
			bmr = EXCLUDED.bmr,
			updated_at = EXCLUDED.updated_at;`,
		profile.UserID, profile.Age, profile.WeightKg, profile.HeightCm,
		profile.Gender, profile.FitnessLevel, profile.BMI, profile.BMR, profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
