package mirror

type indicatorSets struct {
	High []string
	Low  []string
}

var dimensionContent = map[Dimension]indicatorSets{
	Recognition: {
		High: []string{
			"Names the opposite mode in others without judgment",
			"Notices when a problem needs the mirror skillset",
			"Recruits deliberately for the missing cognition",
		},
		Low: []string{
			"Reads the opposite mode as a character flaw",
			"Hires for comfort rather than for the gap",
			"Surprised by conflicts the mirror would have predicted",
		},
	},
	Translation: {
		High: []string{
			"Re-frames own proposals in the mirror's language before presenting",
			"Meetings with opposite-mode partners end in decisions, not stalemates",
			"Can argue the mirror's position convincingly",
		},
		Low: []string{
			"Repeats the same framing louder when not landing",
			"Opposite-mode colleagues report feeling unheard",
			"Proposals die in rooms the mirror dominates",
		},
	},
	Integration: {
		High: []string{
			"Builds workflows that carry both modes' requirements",
			"Holds structure and momentum in the same plan",
			"Revises own defaults after mirror feedback",
		},
		Low: []string{
			"Plans encode only the native mode's priorities",
			"Mirror input treated as scope creep",
			"Oscillates between modes instead of combining them",
		},
	},
	Governance: {
		High: []string{
			"Decision rights explicitly split across both modes",
			"Tracks paired metrics so neither mode's wins hide the other's losses",
			"Escalation paths defined before conflicts occur",
		},
		Low: []string{
			"Native mode holds all the vetoes",
			"Single-lens metrics reward one mode's behavior only",
			"Conflicts resolve by seniority, not by design",
		},
	},
	ConflictRecovery: {
		High: []string{
			"Repairs cross-mode ruptures within days, not quarters",
			"Post-conflict reviews change process, not just feelings",
			"Keeps mirror relationships through hard disagreements",
		},
		Low: []string{
			"Cross-mode conflicts end in exits or silence",
			"Same fight recurs with new people in the same seats",
			"Avoids the mirror after a rupture instead of renegotiating",
		},
	},
}

var developmentRecommendations = map[Band][]string{
	BandVeryLow: {
		"Start with recognition only: keep a two-week log of moments you dismissed the opposite mode",
		"Do not restructure anything yet; awareness precedes governance",
		"Find one trusted opposite-mode peer and ask them to narrate their reasoning on a live decision",
	},
	BandLow: {
		"Practice translation: rewrite one proposal per week in the mirror's language before sharing it",
		"Invite an opposite-mode reviewer into one recurring meeting",
		"Name the mode conflict out loud the next time a discussion stalls",
	},
	BandModerate: {
		"Formalize what you already do informally: give the mirror mode a standing seat in planning",
		"Add one paired KPI so both modes' outcomes are visible together",
		"Run a post-mortem on your last cross-mode conflict and change one process from it",
	},
	BandHigh: {
		"Move from personal skill to structure: split decision rights by mode where stakes are high",
		"Mentor someone low on the scale; teaching translation deepens it",
		"Chair one forum where you hold the minority mode's position deliberately",
	},
	BandMastery: {
		"Your leverage is now institutional: design governance others inherit",
		"Rotate chairing roles across modes and audit the paired KPIs quarterly",
		"Document your translation patterns; they are transferable IP",
	},
}
