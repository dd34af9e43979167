package profile

import (
	"edna/domain/belief"
	"edna/domain/capability"
	"edna/domain/drive"
	"edna/domain/identity"
	"edna/domain/mirror"
	"edna/domain/subtype"
)

// Result is the aggregate E-DNA output: the merge of all layer profiles.
// Its field names are the wire contract toward presentation and export;
// recomputing from the same answer map yields a byte-identical JSON
// encoding.
type Result struct {
	CoreIdentity    identity.CoreIdentityProfile `json:"core_identity"`
	Subtype         subtype.Profile              `json:"subtype"`
	MirrorAwareness mirror.Profile               `json:"mirror_awareness"`
	Context         map[string]string            `json:"context"`
	Neurodiversity  capability.Profile           `json:"neurodiversity"`
	Drive           drive.Profile                `json:"mindset_risk_energy"`
	MetaBeliefs     belief.Profile               `json:"meta_beliefs"`
}
