package progression

// Stats is the snapshot of account activity that achievement predicates are
// evaluated against. Level is derived from XP, never taken from the caller.
// The action counters (journal, mood, tasks, logins) are tracked by the
// activity layer and default to zero when the caller does not know them.
type Stats struct {
	XP             int
	Streak         int
	JournalEntries int
	MoodCheckins   int
	TasksCompleted int
	Logins         int
}

// Achievement is one entry of the fixed unlock catalog.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Rarity      string
	Unlock      func(Stats) bool
}

// Catalog is the full achievement set. Order matches display order.
var Catalog = []Achievement{
	{
		ID:          "welcome",
		Title:       "Welcome Aboard!",
		Description: "Created your account",
		Rarity:      "common",
		Unlock:      func(Stats) bool { return true },
	},
	{
		ID:          "first-login",
		Title:       "First Steps",
		Description: "Logged in for the first time",
		Rarity:      "common",
		Unlock:      func(s Stats) bool { return s.Logins >= 1 },
	},
	{
		ID:          "week-warrior",
		Title:       "Week Warrior",
		Description: "Maintained a 7-day streak",
		Rarity:      "rare",
		Unlock:      func(s Stats) bool { return s.Streak >= 7 },
	},
	{
		ID:          "level-5",
		Title:       "Rising Star",
		Description: "Reached level 5",
		Rarity:      "uncommon",
		Unlock:      func(s Stats) bool { return LevelForXP(s.XP) >= 5 },
	},
	{
		ID:          "level-10",
		Title:       "Dedicated",
		Description: "Reached level 10",
		Rarity:      "rare",
		Unlock:      func(s Stats) bool { return LevelForXP(s.XP) >= 10 },
	},
	{
		ID:          "mood-tracker",
		Title:       "Emotional Intelligence",
		Description: "Logged mood for 7 days",
		Rarity:      "uncommon",
		Unlock:      func(s Stats) bool { return s.MoodCheckins >= 7 },
	},
	{
		ID:          "journal-master",
		Title:       "Storyteller",
		Description: "Wrote 10 journal entries",
		Rarity:      "rare",
		Unlock:      func(s Stats) bool { return s.JournalEntries >= 10 },
	},
	{
		ID:          "task-master",
		Title:       "Task Master",
		Description: "Completed 50 daily tasks",
		Rarity:      "epic",
		Unlock:      func(s Stats) bool { return s.TasksCompleted >= 50 },
	},
	{
		ID:          "month-streak",
		Title:       "Consistency King",
		Description: "Maintained a 30-day streak",
		Rarity:      "legendary",
		Unlock:      func(s Stats) bool { return s.Streak >= 30 },
	},
}

// Unlocked evaluates the catalog and returns every achievement id whose
// predicate holds for the given stats.
func Unlocked(s Stats) []string {
	var ids []string
	for _, a := range Catalog {
		if a.Unlock(s) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// NewlyUnlocked returns the unlocked ids that are not already in have.
// Achievements are persisted on unlock, so this diff is what an update
// appends to the stored set.
func NewlyUnlocked(s Stats, have []string) []string {
	owned := make(map[string]bool, len(have))
	for _, id := range have {
		owned[id] = true
	}
	var fresh []string
	for _, a := range Catalog {
		if !owned[a.ID] && a.Unlock(s) {
			fresh = append(fresh, a.ID)
		}
	}
	return fresh
}
