package systems

import (
	"context"

	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/shared/session"
	"github.com/automoto/flapper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateCollisions ends the run when the bird touches a pipe and scores
// each checkpoint the bird flies through.
func NewUpdateCollisions(ctx context.Context, sess *session.Session) ecs.System {
	return func(e *ecs.ECS) {
		birdEntry, ok := tags.Bird.First(e.World)
		if !ok {
			return
		}
		bird := components.Bird.Get(birdEntry)
		if !bird.Alive {
			return
		}
		obj := components.Object.Get(birdEntry)

		check := obj.Check(0, 0, tags.ResolvPipe, tags.ResolvCheckpoint)
		if check == nil {
			return
		}

		for _, pipeEntry := range entriesTouching(check, tags.ResolvPipe) {
			pipe := components.Pipe.Get(pipeEntry)
			if pipe.Rect.TouchesCircle(bird.Position.X, bird.Position.Y, bird.Radius) {
				killBird(ctx, e, sess, birdEntry, cfg.SoundHit)
				return
			}
		}

		for _, cpEntry := range entriesTouching(check, tags.ResolvCheckpoint) {
			checkpoint := components.Checkpoint.Get(cpEntry)
			if checkpoint.Passed {
				continue
			}
			if !checkpoint.Rect.TouchesCircle(bird.Position.X, bird.Position.Y, bird.Radius) {
				continue
			}
			checkpoint.Passed = true
			sess.AddScore()
			PlaySFX(e, cfg.SoundScore)
		}
	}
}

// entriesTouching returns the entities behind the broad-phase candidates with tag.
func entriesTouching(check *resolv.Collision, tag string) []*donburi.Entry {
	objs := check.ObjectsByTags(tag)
	entries := make([]*donburi.Entry, 0, len(objs))
	for _, o := range objs {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
