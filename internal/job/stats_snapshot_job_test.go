package job

import (
	"RunBriefing/internal/repository"
	"RunBriefing/internal/service"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestStatsSnapshotJobRun(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := repository.NewStatRepo(rdb)
	svc := service.NewStatService(repo)
	ctx := context.Background()

	if _, err := svc.TrackView(ctx, "briefing-2024-01-15"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.TrackView(ctx, "briefing-2024-01-15"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.TrackView(ctx, "briefing-2024-01-16"); err != nil {
		t.Fatal(err)
	}

	NewStatsSnapshotJob(svc).Run()

	top, err := repo.TopViewed(ctx, 10)
	if err != nil {
		t.Fatalf("TopViewed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("ranking has %d entries, want 2", len(top))
	}
	if top[0].PostID != "briefing-2024-01-15" || top[0].Views != 2 {
		t.Errorf("top[0] = %+v", top[0])
	}
}
