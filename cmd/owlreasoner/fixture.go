package main

import (
	"fmt"
	"os"

	"github.com/nodeadmin/owl2-reasoner/ontology"
	"gopkg.in/yaml.v3"
)

// fixture is a small declarative YAML shape for demoing the reasoner
// without needing a concrete syntax parser (Turtle/RDF/XML/Manchester are
// explicitly out of scope). It is not an ontology exchange format: it
// exists only to let this CLI build a toy Ontology from a flat file
// instead of hardcoding one in Go.
type fixture struct {
	Base             string              `yaml:"base"`
	Classes          []string            `yaml:"classes"`
	ObjectProperties []string            `yaml:"object_properties"`
	Individuals      []string            `yaml:"individuals"`
	Axioms           fixtureAxioms       `yaml:"axioms"`
}

type fixtureAxioms struct {
	SubClassOf         []fixturePair `yaml:"subclass_of"`
	EquivalentClasses  [][]string    `yaml:"equivalent_classes"`
	DisjointClasses    [][]string    `yaml:"disjoint_classes"`
	ClassAssertions    []fixturePair `yaml:"class_assertions"`
	SubObjectPropertyOf []fixturePair `yaml:"sub_object_property_of"`
	TransitiveProperties []string    `yaml:"transitive_properties"`
}

type fixturePair struct {
	Sub, Super           string `yaml:"sub,omitempty"`
	Individual, Class    string `yaml:"individual,omitempty"`
	Property, SuperProp  string `yaml:"property,omitempty"`
}

func loadFixture(path string) (*fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f fixture
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture YAML: %w", err)
	}
	if f.Base == "" {
		f.Base = "http://example.org/"
	}
	return &f, nil
}

// buildOntology expands every fixture name against Base and populates a
// fresh Ontology with the declared entities and axioms.
func buildOntology(f *fixture) (*ontology.Ontology, error) {
	ont := ontology.New()
	iri := func(name string) (ontology.IRI, error) { return ontology.NewIRI(f.Base + name) }

	atomic := func(name string) (ontology.ClassExpression, error) {
		i, err := iri(name)
		if err != nil {
			return nil, err
		}
		return ontology.AtomicClass{IRI: i}, nil
	}

	for _, name := range f.Classes {
		i, err := iri(name)
		if err != nil {
			return nil, err
		}
		ont.Declare(ontology.NewClass(i))
	}
	for _, name := range f.ObjectProperties {
		i, err := iri(name)
		if err != nil {
			return nil, err
		}
		ont.Declare(ontology.NewObjectProperty(i))
	}
	for _, name := range f.Individuals {
		i, err := iri(name)
		if err != nil {
			return nil, err
		}
		ont.Declare(ontology.NewNamedIndividual(i))
	}

	for _, p := range f.Axioms.SubClassOf {
		sub, err := atomic(p.Sub)
		if err != nil {
			return nil, err
		}
		super, err := atomic(p.Super)
		if err != nil {
			return nil, err
		}
		if err := ont.Add(ontology.SubClassOfAxiom{Sub: sub, Super: super}); err != nil {
			return nil, err
		}
	}
	for _, group := range f.Axioms.EquivalentClasses {
		classes := make([]ontology.ClassExpression, 0, len(group))
		for _, name := range group {
			ce, err := atomic(name)
			if err != nil {
				return nil, err
			}
			classes = append(classes, ce)
		}
		if err := ont.Add(ontology.EquivalentClassesAxiom{Classes: classes}); err != nil {
			return nil, err
		}
	}
	for _, group := range f.Axioms.DisjointClasses {
		classes := make([]ontology.ClassExpression, 0, len(group))
		for _, name := range group {
			ce, err := atomic(name)
			if err != nil {
				return nil, err
			}
			classes = append(classes, ce)
		}
		if err := ont.Add(ontology.DisjointClassesAxiom{Classes: classes}); err != nil {
			return nil, err
		}
	}
	for _, p := range f.Axioms.ClassAssertions {
		indIRI, err := iri(p.Individual)
		if err != nil {
			return nil, err
		}
		class, err := atomic(p.Class)
		if err != nil {
			return nil, err
		}
		if err := ont.Add(ontology.ClassAssertionAxiom{
			Individual: ontology.NewNamedIndividual(indIRI),
			Class:      class,
		}); err != nil {
			return nil, err
		}
	}
	for _, p := range f.Axioms.SubObjectPropertyOf {
		subIRI, err := iri(p.Property)
		if err != nil {
			return nil, err
		}
		supIRI, err := iri(p.SuperProp)
		if err != nil {
			return nil, err
		}
		sub := ontology.NamedProperty{Property: ontology.NewObjectProperty(subIRI)}
		sup := ontology.NamedProperty{Property: ontology.NewObjectProperty(supIRI)}
		if err := ont.Add(ontology.SubObjectPropertyOfAxiom{Chain: []ontology.PropertyExpression{sub}, Super: sup}); err != nil {
			return nil, err
		}
	}
	for _, name := range f.Axioms.TransitiveProperties {
		propIRI, err := iri(name)
		if err != nil {
			return nil, err
		}
		prop := ontology.NamedProperty{Property: ontology.NewObjectProperty(propIRI)}
		if err := ont.Add(ontology.TransitiveObjectProperty(prop)); err != nil {
			return nil, err
		}
	}

	return ont, nil
}
