package progression

import "testing"

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{-10, 1},
		{0, 1},
		{1, 1},
		{249, 1},
		{250, 2},
		{499, 2},
		{500, 3},
		{2250, 10},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := LevelForXP(0)
	for xp := 1; xp <= 5000; xp++ {
		cur := LevelForXP(xp)
		if cur < prev {
			t.Fatalf("LevelForXP decreased at xp=%d: %d -> %d", xp, prev, cur)
		}
		if cur > prev+1 {
			t.Fatalf("LevelForXP jumped at xp=%d: %d -> %d", xp, prev, cur)
		}
		if xp%XPPerLevel == 0 && cur != prev+1 {
			t.Fatalf("LevelForXP did not increase at band boundary xp=%d", xp)
		}
		prev = cur
	}
}

func TestXPToNextLevel(t *testing.T) {
	for xp := 0; xp <= 2000; xp++ {
		got := XPToNextLevel(xp)
		if got < 1 || got > XPPerLevel {
			t.Fatalf("XPToNextLevel(%d) = %d, out of range [1, %d]", xp, got, XPPerLevel)
		}
		if LevelForXP(xp+got) != LevelForXP(xp)+1 {
			t.Fatalf("adding XPToNextLevel(%d) did not advance exactly one level", xp)
		}
	}
}

func TestProgressFraction(t *testing.T) {
	if got := ProgressFraction(0); got != 0 {
		t.Errorf("ProgressFraction(0) = %f, want 0", got)
	}
	if got := ProgressFraction(125); got != 0.5 {
		t.Errorf("ProgressFraction(125) = %f, want 0.5", got)
	}
	for xp := 0; xp <= 2000; xp += 7 {
		got := ProgressFraction(xp)
		if got < 0 || got >= 1 {
			t.Fatalf("ProgressFraction(%d) = %f, out of range [0, 1)", xp, got)
		}
	}
}

func TestUnlocked(t *testing.T) {
	ids := Unlocked(Stats{XP: 1100, Streak: 7})
	want := map[string]bool{"welcome": true, "week-warrior": true, "level-5": true}
	for id := range want {
		if !contains(ids, id) {
			t.Errorf("expected %q to be unlocked, got %v", id, ids)
		}
	}
	if contains(ids, "level-10") {
		t.Errorf("level-10 should not unlock at xp=1100")
	}
	if contains(ids, "month-streak") {
		t.Errorf("month-streak should not unlock at streak=7")
	}
}

func TestUnlockedCountThresholds(t *testing.T) {
	s := Stats{JournalEntries: 10, MoodCheckins: 7, TasksCompleted: 50, Logins: 1}
	ids := Unlocked(s)
	for _, id := range []string{"journal-master", "mood-tracker", "task-master", "first-login"} {
		if !contains(ids, id) {
			t.Errorf("expected %q to be unlocked, got %v", id, ids)
		}
	}
}

func TestNewlyUnlocked(t *testing.T) {
	have := []string{"welcome", "week-warrior"}
	fresh := NewlyUnlocked(Stats{XP: 1250, Streak: 10}, have)

	if contains(fresh, "welcome") || contains(fresh, "week-warrior") {
		t.Errorf("NewlyUnlocked returned already-owned ids: %v", fresh)
	}
	if !contains(fresh, "level-5") {
		t.Errorf("expected level-5 in newly unlocked, got %v", fresh)
	}

	if got := NewlyUnlocked(Stats{XP: 1250, Streak: 10}, append(have, fresh...)); len(got) != 0 {
		t.Errorf("second diff should be empty, got %v", got)
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Catalog {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
