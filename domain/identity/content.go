package identity

// coreNarrative bundles the static per-type narrative content
type coreNarrative struct {
	ConstructSignals []string
	Strengths        []string
	BlindSpots       []string
	FailureModes     []string
	BestContexts     []string
	EDNAAdaptations  []string
	CoreStatement    string
}

// ResultLineTemplates holds the one-line summary shown on the result page,
// keyed by core type. Exported because the report renderer and the result
// page both reference the exact template string.
var ResultLineTemplates = map[CoreType]string{
	CoreArchitect: "You build the machine before you switch it on: your edge is the system nobody else bothered to design.",
	CoreAlchemist: "You move before the map exists: your edge is the momentum and belief you generate in other people.",
	CoreBlurred:   "You sit between the blueprint and the spark: your edge is range, and your work is learning when to use which.",
}

var coreContent = map[CoreType]coreNarrative{
	CoreArchitect: {
		ConstructSignals: []string{
			"Reaches for structure before action",
			"Trusts documented process over improvisation",
			"Measures progress against a pre-built plan",
			"Prefers decisions with reversible, modeled outcomes",
		},
		Strengths: []string{
			"Designs systems that run without the founder in the room",
			"Spots sequencing problems before they become expensive",
			"Holds quality bars under delivery pressure",
			"Turns vague goals into operating cadences",
		},
		BlindSpots: []string{
			"Mistakes planning motion for market motion",
			"Under-invests in narrative and social proof",
			"Waits for complete data when 70% would do",
			"Reads emotional signals late, if at all",
		},
		FailureModes: []string{
			"Ships the system and starves the story",
			"Optimizes a process the market no longer wants",
			"Delegates vision work that only the founder can do",
		},
		BestContexts: []string{
			"Scaling a proven offer past founder capacity",
			"Operational turnarounds with measurable waste",
			"Products where reliability is the brand",
		},
		EDNAAdaptations: []string{
			"Pair every build sprint with one visibility sprint",
			"Put a storyteller in the room before launch decisions",
			"Cap research phases with hard calendar deadlines",
		},
		CoreStatement: "You are an **Architect**. You convert ambiguity into structure, and your businesses compound because the systems you leave behind keep working. Your growth edge is everything that cannot be diagrammed: narrative, velocity, and the deals that close on energy rather than evidence.",
	},
	CoreAlchemist: {
		ConstructSignals: []string{
			"Starts moving before the plan is finished",
			"Trusts felt sense of momentum over dashboards",
			"Sells the vision before the product exists",
			"Recruits believers rather than hires for roles",
		},
		Strengths: []string{
			"Creates demand from a story and a stage",
			"Finds non-obvious deals through relationships",
			"Recovers fast from public failure",
			"Energizes teams through uncertain stretches",
		},
		BlindSpots: []string{
			"Confuses excitement with validated demand",
			"Leaves operational debt for future-self",
			"Abandons working machines for newer shinier ones",
			"Under-prices the cost of constant reinvention",
		},
		FailureModes: []string{
			"Launches outrun fulfillment until trust erodes",
			"The business stays founder-shaped and cannot scale",
			"Cash follows attention and both are volatile",
		},
		BestContexts: []string{
			"Zero-to-one launches and new market entry",
			"Brand and audience-led businesses",
			"Partnerships that need conviction to close",
		},
		EDNAAdaptations: []string{
			"Install one operator with veto power over launches",
			"Keep a weekly metrics ritual you do not skip",
			"Finish or formally kill projects before starting new ones",
		},
		CoreStatement: "You are an **Alchemist**. You turn belief into momentum and momentum into revenue, often before anything is formally built. Your growth edge is the unglamorous machine: retention, fulfillment, and the systems that let a win repeat without you re-performing it.",
	},
	CoreBlurred: {
		ConstructSignals: []string{
			"Switches between planning and improvising by context",
			"Comfortable holding two competing strategies",
			"Answers shift depending on the venture imagined",
			"Neither structure nor momentum feels like home",
		},
		Strengths: []string{
			"Translates between operators and visionaries",
			"Adapts style to what the business stage needs",
			"Sees merit in opposing approaches early",
			"Less dogmatic under strategy conflict",
		},
		BlindSpots: []string{
			"Range can read as indecision to a team",
			"Risk of copying whichever strong voice is loudest",
			"May never build deep identity-level conviction",
		},
		FailureModes: []string{
			"Strategy whiplash as context switches compound",
			"Hires expect a lane and get ambiguity",
			"Defers identity work that the next stage requires",
		},
		BestContexts: []string{
			"Bridging roles between product and growth",
			"Second-in-command to a strongly typed founder",
			"Ventures in transition between stages",
		},
		EDNAAdaptations: []string{
			"Declare a primary mode per quarter and commit publicly",
			"Use the subtype layer to find your stable anchor",
			"Re-test after a major venture change, not before",
		},
		CoreStatement: "Your signal is **Blurred**: the architect and alchemist pulls in your answers are close enough that neither dominates. That is information, not a failure to classify. Your range is real, and so is the cost of never choosing a default mode.",
	},
}
