package elsaturation

import (
	"github.com/nodeadmin/owl2-reasoner/ontology"
)

// ClassifyEL runs the completion-rule saturation classifier end to end:
// normalize, saturate, reduce. It only sees the EL fragment Normalize can
// express, so it is only a sound full classifier for ontologies that
// validate under profile.ProfileEL — Reasoner.Classify uses it as a fast
// path for exactly that case and falls back to the tableau-backed
// five-phase classifier (reasoner/classify) otherwise.
func ClassifyEL(ont *ontology.Ontology, workers int) (*ClassifiedHierarchy, ClassificationStats) {
	st, store := Normalize(ont)
	contexts := SaturateParallel(st, store, workers)
	tax := BuildTaxonomy(contexts, st)
	stats := MakeStats(st, 0, 0, 0, 0)
	return tax.ToJSON(contexts, st, stats), stats
}
