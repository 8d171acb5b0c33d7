package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, id string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, username, bio, level, current_xp, xp_to_next_level, streak_days, chronotype
		FROM profiles
		WHERE id = ?
	`, id)

	var p Profile
	var chrono sql.NullString
	if err := row.Scan(&p.ID, &p.Email, &p.Username, &p.Bio, &p.Level, &p.CurrentXP, &p.XPToNext, &p.StreakDays, &chrono); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	if chrono.Valid {
		v := chrono.String
		p.Chronotype = &v
	}
	return &p, nil
}

// GetOrCreate returns the profile for id, inserting the level-1 default row
// if none exists yet. A missing row is "not yet created", never an error.
func (r *ProfileRepo) GetOrCreate(ctx context.Context, id, email, username string) (*Profile, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, email, username, level, current_xp, xp_to_next_level, streak_days)
		VALUES (?, ?, ?, 1, 0, 100, 0)
	`, id, email, username); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *ProfileRepo) UpdateProgress(ctx context.Context, id string, patch ProfileProgressPatch) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET level = ?, current_xp = ?, xp_to_next_level = ?, streak_days = ?
		WHERE id = ?
	`, patch.Level, patch.CurrentXP, patch.XPToNext, patch.StreakDays, id)
	if err != nil {
		return fmt.Errorf("profile update progress: %w", err)
	}
	return nil
}

func (r *ProfileRepo) UpdateSettings(ctx context.Context, id string, patch ProfileSettingsPatch) error {
	set := ""
	var args []any
	if patch.Username != nil {
		set += "username = ?, "
		args = append(args, *patch.Username)
	}
	if patch.Bio != nil {
		set += "bio = ?, "
		args = append(args, *patch.Bio)
	}
	if patch.Chronotype != nil {
		set += "chronotype = ?, "
		args = append(args, *patch.Chronotype)
	}
	if set == "" {
		return nil
	}
	set = set[:len(set)-2]
	args = append(args, id)

	_, err := r.db.ExecContext(ctx, `UPDATE profiles SET `+set+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("profile update settings: %w", err)
	}
	return nil
}
