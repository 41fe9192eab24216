package progression

// XPPerLevel is the width of each level band. Levels are linear: level 1
// covers 0-249 XP, level 2 covers 250-499, and so on.
const XPPerLevel = 250

// LevelForXP maps cumulative XP to a level. Negative XP is treated as zero.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPToNextLevel returns how much XP is missing until the next level.
// The result is always in [1, XPPerLevel].
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return LevelForXP(xp)*XPPerLevel - xp
}

// ProgressFraction returns how far into the current level band the given XP
// sits, in [0, 1).
func ProgressFraction(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	return float64(xp%XPPerLevel) / float64(XPPerLevel)
}
