package classify

import "github.com/nodeadmin/owl2-reasoner/owlerr"

func errCycle(iri string) error {
	return owlerr.New(owlerr.KindInternalInvariant, "Classify", "class "+iri+" is its own transitive superclass")
}

func errContradiction(a, b string) error {
	return owlerr.New(owlerr.KindInternalInvariant, "Classify", "classes "+a+" and "+b+" are derived both subsuming and disjoint")
}
