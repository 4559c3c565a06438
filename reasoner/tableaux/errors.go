package tableaux

import "github.com/nodeadmin/owl2-reasoner/owlerr"

// errStepBudgetExceeded is surfaced as owlerr.KindResourceExceeded and
// must never be silently coerced to a boolean by a caller (spec.md §9's
// "clearest correctness trap").
func errStepBudgetExceeded(op string) error {
	return owlerr.New(owlerr.KindResourceExceeded, op, "tableau step budget exhausted")
}

func errCancelled(op string) error {
	return owlerr.New(owlerr.KindCancelled, op, "query cancelled by caller")
}

func errInternalInvariant(op, message string) error {
	return owlerr.New(owlerr.KindInternalInvariant, op, message)
}
