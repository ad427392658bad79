package repository

import (
	"RunBriefing/internal/model"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRepo(t *testing.T) (StatRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStatRepo(rdb), mr
}

func TestIncrStatField(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		got, err := repo.IncrStatField(ctx, "briefing-2024-01-15", "views")
		if err != nil {
			t.Fatalf("IncrStatField: %v", err)
		}
		if got != int64(i) {
			t.Errorf("increment %d returned %d", i, got)
		}
	}
}

func TestGetStats(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	t.Run("untouched post reads as zero", func(t *testing.T) {
		stats, err := repo.GetStats(ctx, "briefing-2024-01-01")
		if err != nil {
			t.Fatalf("GetStats: %v", err)
		}
		if stats.Views != 0 || stats.Helpful != 0 || stats.NotHelpful != 0 {
			t.Errorf("expected zeros, got %+v", stats)
		}
	})

	t.Run("reads incremented fields", func(t *testing.T) {
		if _, err := repo.IncrStatField(ctx, "briefing-2024-01-02", "helpful"); err != nil {
			t.Fatalf("IncrStatField: %v", err)
		}
		stats, err := repo.GetStats(ctx, "briefing-2024-01-02")
		if err != nil {
			t.Fatalf("GetStats: %v", err)
		}
		if stats.Helpful != 1 || stats.Views != 0 || stats.NotHelpful != 0 {
			t.Errorf("unexpected stats %+v", stats)
		}
	})

	t.Run("non numeric values coerced to zero", func(t *testing.T) {
		mr.HSet("stats:briefing-2024-01-03", "views", "garbage")
		mr.HSet("stats:briefing-2024-01-03", "helpful", "3")
		stats, err := repo.GetStats(ctx, "briefing-2024-01-03")
		if err != nil {
			t.Fatalf("GetStats: %v", err)
		}
		if stats.Views != 0 {
			t.Errorf("garbage views = %d, want 0", stats.Views)
		}
		if stats.Helpful != 3 {
			t.Errorf("helpful = %d, want 3", stats.Helpful)
		}
	})
}

func TestMarkVoted(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.MarkVoted(ctx, "briefing-2024-01-15", "1.2.3.4")
	if err != nil {
		t.Fatalf("MarkVoted: %v", err)
	}
	if !first {
		t.Fatal("first mark should succeed")
	}

	second, err := repo.MarkVoted(ctx, "briefing-2024-01-15", "1.2.3.4")
	if err != nil {
		t.Fatalf("MarkVoted: %v", err)
	}
	if second {
		t.Fatal("second mark within window should fail")
	}

	voted, err := repo.HasVoted(ctx, "briefing-2024-01-15", "1.2.3.4")
	if err != nil {
		t.Fatalf("HasVoted: %v", err)
	}
	if !voted {
		t.Error("HasVoted should report the marker")
	}

	// 其他 IP / 其他帖子不受影响
	if ok, _ := repo.MarkVoted(ctx, "briefing-2024-01-15", "5.6.7.8"); !ok {
		t.Error("different ip should mark independently")
	}
	if ok, _ := repo.MarkVoted(ctx, "briefing-2024-01-16", "1.2.3.4"); !ok {
		t.Error("different post should mark independently")
	}

	// 窗口过期后可再次投票
	mr.FastForward(24*time.Hour + time.Second)
	again, err := repo.MarkVoted(ctx, "briefing-2024-01-15", "1.2.3.4")
	if err != nil {
		t.Fatalf("MarkVoted after expiry: %v", err)
	}
	if !again {
		t.Error("mark should succeed after the 24h window expired")
	}
}

func TestScanStatKeys(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	// 超过单页 COUNT，验证游标翻页
	want := make(map[string]bool, 250)
	for i := 0; i < 250; i++ {
		key := fmt.Sprintf("stats:briefing-2024-01-%03d", i)
		mr.HSet(key, "views", "1")
		want[key] = true
	}
	// 不应被扫出的键
	mr.Set("vote:briefing-2024-01-001:1.2.3.4", "1")
	mr.HSet("stats:other", "views", "1")

	keys, err := repo.ScanStatKeys(ctx)
	if err != nil {
		t.Fatalf("ScanStatKeys: %v", err)
	}
	if len(keys) != len(want) {
		t.Fatalf("scanned %d keys, want %d", len(keys), len(want))
	}
	for _, key := range keys {
		if !want[key] {
			t.Errorf("unexpected key %q", key)
		}
	}
}

func TestTopViewed(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	stats := []*model.PostStats{
		{PostID: "briefing-2024-01-01", Views: 5},
		{PostID: "briefing-2024-01-02", Views: 50},
		{PostID: "briefing-2024-01-03", Views: 20},
	}
	if err := repo.RebuildTopViewed(ctx, stats); err != nil {
		t.Fatalf("RebuildTopViewed: %v", err)
	}

	top, err := repo.TopViewed(ctx, 2)
	if err != nil {
		t.Fatalf("TopViewed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].PostID != "briefing-2024-01-02" || top[0].Views != 50 {
		t.Errorf("top[0] = %+v", top[0])
	}
	if top[1].PostID != "briefing-2024-01-03" || top[1].Views != 20 {
		t.Errorf("top[1] = %+v", top[1])
	}

	// 重建覆盖旧数据
	if err := repo.RebuildTopViewed(ctx, stats[:1]); err != nil {
		t.Fatalf("RebuildTopViewed: %v", err)
	}
	top, err = repo.TopViewed(ctx, 10)
	if err != nil {
		t.Fatalf("TopViewed: %v", err)
	}
	if len(top) != 1 || top[0].PostID != "briefing-2024-01-01" {
		t.Errorf("rebuild did not replace the ranking: %+v", top)
	}
}

func TestRebuildTopViewedEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.RebuildTopViewed(ctx, nil); err != nil {
		t.Fatalf("RebuildTopViewed(nil): %v", err)
	}
	top, err := repo.TopViewed(ctx, 10)
	if err != nil {
		t.Fatalf("TopViewed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("expected empty ranking, got %+v", top)
	}
}
