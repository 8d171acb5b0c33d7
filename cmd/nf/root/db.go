package root

import (
	"context"
	"fmt"
	"strings"

	"neurofocus/internal/config"
	"neurofocus/internal/engine"
	"neurofocus/internal/sound"
	"neurofocus/internal/storage"
)

func openStore(ctx context.Context, cfg config.Config) (*storage.Store, func(), error) {
	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return storage.NewStore(db), cleanup, nil
}

// openSession loads the full user session (profile, tasks, ledger) with the
// sound notifier wired in. Loading runs the daily reset sweep and the streak
// reconcile.
func openSession(ctx context.Context, cfg config.Config) (*engine.Session, *storage.Store, func(), error) {
	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	sess, err := engine.Load(ctx, store, engine.Identity{UserID: cfg.UserID, Email: cfg.UserEmail},
		engine.WithNotifier(sound.NewPlayer(cfg.SoundEnabled, cfg.SoundVolume)))
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return sess, store, cleanup, nil
}

// findTaskID resolves a user-typed reference to a task ID: exact ID, unique
// ID prefix, or unique case-insensitive title match.
func findTaskID(sess *engine.Session, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("task reference is required")
	}

	var byPrefix, byTitle []string
	lower := strings.ToLower(ref)
	for _, t := range sess.Tasks() {
		if t.ID == ref {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			byPrefix = append(byPrefix, t.ID)
		}
		if strings.ToLower(t.Title) == lower {
			byTitle = append(byTitle, t.ID)
		}
	}

	for _, matches := range [][]string{byPrefix, byTitle} {
		switch len(matches) {
		case 0:
		case 1:
			return matches[0], nil
		default:
			return "", fmt.Errorf("reference %q is ambiguous (%d matches)", ref, len(matches))
		}
	}
	return "", fmt.Errorf("no task matches %q", ref)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
