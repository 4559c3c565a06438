// Package profile validates an Ontology against the three structural OWL2
// profile fragments (EL, QL, RL) without invoking the tableau at all —
// each is a syntactic restriction checkable by walking axioms and class
// expressions. Grounded on Owl2ProfileValidator and the profile-specific
// violation catalogs of original_source/owl2-reasoner/src/profiles/{common,
// el/optimization,ql/optimization,rl/validator}.rs, adapted from Rust
// enums to Go integer-constant enums (Profile, ViolationSeverity,
// ViolationType).
package profile

import "github.com/nodeadmin/owl2-reasoner/ontology"

// Profile names the OWL2 structural fragment being checked against.
type Profile uint8

const (
	ProfileEL Profile = iota
	ProfileQL
	ProfileRL
)

func (p Profile) String() string {
	switch p {
	case ProfileEL:
		return "OWL2 EL"
	case ProfileQL:
		return "OWL2 QL"
	case ProfileRL:
		return "OWL2 RL"
	default:
		return "unknown profile"
	}
}

// ViolationSeverity mirrors ViolationSeverity in the original's
// profiles/common.rs: Error blocks compliance, Warning/Info do not.
type ViolationSeverity uint8

const (
	SeverityError ViolationSeverity = iota
	SeverityWarning
	SeverityInfo
)

func (s ViolationSeverity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// ViolationType enumerates the specific structural constructs each
// profile forbids, collapsed from the original's three separate
// per-profile enums into one shared type since Go idiomatically favors
// one flat enum with a doc comment grouping over three small ones here.
type ViolationType uint8

const (
	ViolationComplexSubclassAxiom ViolationType = iota
	ViolationDisjointClassesAxiom
	ViolationEquivalentClassesAxiom
	ViolationComplexPropertyRestriction
	ViolationDataPropertyRange
	ViolationTransitiveProperty
	ViolationAsymmetricProperty
	ViolationIrreflexiveProperty
	ViolationComplexCardinalityRestriction
	ViolationPropertyChainAxiom
	ViolationNominal
	ViolationDataComplementOf
	ViolationDataOneOf
	ViolationObjectComplementOf
	ViolationObjectOneOf
	ViolationObjectHasSelf
	ViolationComplexClassExpression
	ViolationUnsupportedConstruct
)

// Violation records one construct found incompatible with the profile
// being checked.
type Violation struct {
	Type             ViolationType
	Message          string
	AffectedEntities []ontology.IRI
	Severity         ViolationSeverity
}

// ValidationStatistics mirrors ValidationStatistics from
// profiles/common.rs in part: it records only the number of axioms
// checked and the number of violations found. No elapsed-time or memory
// figures are collected.
type ValidationStatistics struct {
	TotalAxiomsChecked int
	ViolationsFound    int
}

// Result is the outcome of validating one ontology against one profile.
type Result struct {
	Profile    Profile
	IsValid    bool
	Violations []Violation
	Statistics ValidationStatistics
}

func (r *Result) addError(vt ViolationType, msg string, entities ...ontology.IRI) {
	r.Violations = append(r.Violations, Violation{Type: vt, Message: msg, AffectedEntities: entities, Severity: SeverityError})
}

// Validate checks ont against profile, returning every violation found —
// it does not stop at the first one, so callers can report a complete
// compliance report in a single pass (spec.md §4.3's all-violations
// contract, as opposed to fail-fast).
func Validate(ont *ontology.Ontology, p Profile) *Result {
	r := &Result{Profile: p, IsValid: true}
	indexes := analyzeOntology(ont)

	switch p {
	case ProfileEL:
		validateEL(ont, indexes, r)
	case ProfileQL:
		validateQL(ont, indexes, r)
	case ProfileRL:
		validateRL(ont, indexes, r)
	}

	r.Statistics = ValidationStatistics{
		TotalAxiomsChecked: indexes.totalAxioms,
		ViolationsFound:    len(r.Violations),
	}
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			r.IsValid = false
			break
		}
	}
	return r
}

// ValidateAll runs Validate for all three profiles, the
// validate_all_profiles convenience method of the original.
func ValidateAll(ont *ontology.Ontology) []*Result {
	return []*Result{
		Validate(ont, ProfileEL),
		Validate(ont, ProfileQL),
		Validate(ont, ProfileRL),
	}
}

// MostRestrictiveProfile returns the first of EL, QL, RL (in that order,
// EL being the most restrictive) that ont fully satisfies, or ok=false if
// none do — get_most_restrictive_profile in the original.
func MostRestrictiveProfile(ont *ontology.Ontology) (Profile, bool) {
	for _, p := range []Profile{ProfileEL, ProfileQL, ProfileRL} {
		if Validate(ont, p).IsValid {
			return p, true
		}
	}
	return 0, false
}
