package profile

import "github.com/nodeadmin/owl2-reasoner/ontology"

// entitiesOf collects every IRI a class expression mentions — atomic
// class operands, the properties named by object/data restrictions, and
// nominal individuals — so a violation raised against ce can report
// exactly which entities triggered it (spec scenario: a DisjointClasses
// or unsupported-construct violation names the classes/properties
// involved, not just a bare message).
func entitiesOf(ce ontology.ClassExpression) []ontology.IRI {
	var out []ontology.IRI
	ontology.WalkClassExpression(ce, func(sub ontology.ClassExpression) {
		switch c := sub.(type) {
		case ontology.AtomicClass:
			out = append(out, c.IRI)
		case ontology.ObjectSomeValuesFrom:
			appendProperty(&out, c.Property)
		case ontology.ObjectAllValuesFrom:
			appendProperty(&out, c.Property)
		case ontology.ObjectHasValue:
			appendProperty(&out, c.Property)
			out = append(out, c.Individual.IRI)
		case ontology.ObjectCardinality:
			appendProperty(&out, c.Property)
		case ontology.ObjectHasSelf:
			appendProperty(&out, c.Property)
		case ontology.ObjectOneOf:
			for _, ind := range c.Individuals {
				out = append(out, ind.IRI)
			}
		case ontology.DataSomeValuesFrom:
			out = append(out, c.Property.Property.IRI)
		case ontology.DataAllValuesFrom:
			out = append(out, c.Property.Property.IRI)
		case ontology.DataHasValue:
			out = append(out, c.Property.Property.IRI)
		case ontology.DataCardinality:
			out = append(out, c.Property.Property.IRI)
		}
	})
	return out
}

// classesIRIs flattens entitiesOf across a list of class expressions,
// e.g. every operand of a DisjointClasses or EquivalentClasses axiom.
func classesIRIs(ces []ontology.ClassExpression) []ontology.IRI {
	var out []ontology.IRI
	for _, ce := range ces {
		out = append(out, entitiesOf(ce)...)
	}
	return out
}

func appendProperty(out *[]ontology.IRI, pe ontology.PropertyExpression) {
	if e, ok := pe.Named(); ok {
		*out = append(*out, e.IRI)
	}
}
