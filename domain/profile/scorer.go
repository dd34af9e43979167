// Package profile implements the aggregate scorer: the pure function from a
// complete answer map to the merged E-DNA result. No hidden state, no
// randomness, no clock reads; repeated invocation on identical input yields
// an identical result.
package profile

import (
	"edna/domain/bank"
	"edna/domain/belief"
	"edna/domain/capability"
	"edna/domain/drive"
	"edna/domain/identity"
	"edna/domain/mirror"
	"edna/domain/subtype"
)

// AnswerMap is the flat question-id → selected-option-value mapping built
// up by the quiz flow. Last write wins when a question is re-answered.
type AnswerMap map[bank.QuestionID]string

// l1PointsPerAnswer scales Layer 1 tallies onto the 0–100 count scale the
// asymmetry threshold of 30 was calibrated against. Ten questions at ten
// points each: a 7–3 split scores 70/30 and classifies; a 6–4 split scores
// 60/40 and lands blurred.
const l1PointsPerAnswer = 10

// Score derives the full result from the answer map. Unanswered questions
// simply contribute nothing to their layer; the function is total.
func Score(answers AnswerMap) Result {
	architectCount, alchemistCount := tallyLayer1(answers)
	coreIdentity := identity.GenerateCoreIdentityProfile(architectCount, alchemistCount)

	subtypeProfile := subtype.Resolve(coreIdentity.Type, layer2Tags(answers, coreIdentity.Type))
	mirrorProfile := mirror.GenerateProfile(layer3Scores(answers), coreIdentity.Type)
	driveProfile := drive.GenerateProfile(layer6Answers(answers))
	beliefProfile := belief.Resolve(layer7Tags(answers))

	return Result{
		CoreIdentity:    coreIdentity,
		Subtype:         subtypeProfile,
		MirrorAwareness: mirrorProfile,
		Context:         layer4Context(answers),
		Neurodiversity:  capability.GenerateProfile(layer5Traits(answers)),
		Drive:           driveProfile,
		MetaBeliefs:     beliefProfile,
	}
}

// tallyLayer1 counts tagged selections and scales them onto the count
// scale the classifier threshold expects.
func tallyLayer1(answers AnswerMap) (architect, alchemist int) {
	for _, q := range bank.Layer1() {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := q.Option(value)
		if !ok {
			continue
		}
		switch opt.Tag {
		case bank.TagArchitect:
			architect++
		case bank.TagAlchemist:
			alchemist++
		}
	}
	return architect * l1PointsPerAnswer, alchemist * l1PointsPerAnswer
}

func layer2Tags(answers AnswerMap, coreType identity.CoreType) []subtype.Subtype {
	var tags []subtype.Subtype
	for _, q := range bank.Layer2(coreType) {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if opt, ok := q.Option(value); ok {
			tags = append(tags, subtype.Subtype(opt.Tag))
		}
	}
	return tags
}

// layer3Scores averages the selected option weights per mirror dimension.
// A dimension with no answered questions scores zero.
func layer3Scores(answers AnswerMap) mirror.Scores {
	sums := make(map[mirror.Dimension]float64)
	counts := make(map[mirror.Dimension]int)
	for _, q := range bank.Layer3() {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if opt, ok := q.Option(value); ok {
			sums[q.Dimension] += float64(opt.Weight)
			counts[q.Dimension]++
		}
	}

	mean := func(d mirror.Dimension) float64 {
		if counts[d] == 0 {
			return 0
		}
		return sums[d] / float64(counts[d])
	}
	return mirror.Scores{
		Recognition:      mean(mirror.Recognition),
		Translation:      mean(mirror.Translation),
		Integration:      mean(mirror.Integration),
		Governance:       mean(mirror.Governance),
		ConflictRecovery: mean(mirror.ConflictRecovery),
	}
}

func layer4Context(answers AnswerMap) map[string]string {
	context := make(map[string]string)
	for _, q := range bank.Layer4() {
		if value, ok := answers[q.ID]; ok {
			if _, valid := q.Option(value); valid {
				context[string(q.ID)] = value
			}
		}
	}
	return context
}

// layer5Traits activates a trait when at least two of its screener
// questions were affirmed.
func layer5Traits(answers AnswerMap) capability.Traits {
	affirms := make(map[string]int)
	for _, q := range bank.Layer5() {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if opt, ok := q.Option(value); ok && opt.Tag == bank.TagAffirm {
			affirms[q.Trait]++
		}
	}
	const activation = 2
	return capability.Traits{
		ADHD:     affirms[bank.TraitADHD] >= activation,
		Dyslexia: affirms[bank.TraitDyslexia] >= activation,
		Autism:   affirms[bank.TraitAutism] >= activation,
		Sensory:  affirms[bank.TraitSensory] >= activation,
	}
}

func layer6Answers(answers AnswerMap) (mindset, risk, energy string) {
	for _, q := range bank.Layer6() {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if _, valid := q.Option(value); !valid {
			continue
		}
		switch q.Axis {
		case bank.AxisMindset:
			mindset = value
		case bank.AxisRisk:
			risk = value
		case bank.AxisEnergy:
			energy = value
		}
	}
	return mindset, risk, energy
}

func layer7Tags(answers AnswerMap) []belief.Belief {
	var tags []belief.Belief
	for _, q := range bank.Layer7() {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if opt, ok := q.Option(value); ok {
			tags = append(tags, belief.Belief(opt.Tag))
		}
	}
	return tags
}
