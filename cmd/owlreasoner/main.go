package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nodeadmin/owl2-reasoner/reasoner"
	"github.com/nodeadmin/owl2-reasoner/reasoner/profile"
	"go.uber.org/zap"
)

func main() {
	input := flag.String("input", "", "Path to an ontology fixture (.yaml)")
	output := flag.String("output", "", "Path to output JSON file (default: stdout)")
	pretty := flag.Bool("pretty", false, "Pretty-print JSON output")
	doClassify := flag.Bool("classify", true, "Run classification")
	doConsistency := flag.Bool("consistent", true, "Check ontology consistency")
	profileName := flag.String("profile", "", "Validate against one profile: el, ql, or rl (default: most restrictive)")
	verbose := flag.Bool("v", false, "Verbose (debug) logging")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: owlreasoner -input <fixture.yaml> [-output <file>] [-pretty] [-profile el|ql|rl]")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
			os.Exit(1)
		}
		log = l
	}

	fmt.Fprintf(os.Stderr, "Loading fixture %s...\n", *input)
	f, err := loadFixture(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fixture: %v\n", err)
		os.Exit(1)
	}

	ont, err := buildOntology(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building ontology: %v\n", err)
		os.Exit(1)
	}

	cfg := reasoner.DefaultConfig()
	cfg.Logger = log
	r := reasoner.NewWithConfig(ont, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result := report{}

	start := time.Now()
	if *doConsistency {
		ok, err := r.IsConsistent(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error checking consistency: %v\n", err)
			os.Exit(1)
		}
		result.Consistent = &ok
	}

	if p, ok := resolveProfile(*profileName); ok {
		result.ProfileResult = r.ValidateProfile(p)
	} else if *profileName == "" {
		if best, found := r.MostRestrictiveProfile(); found {
			result.ProfileResult = r.ValidateProfile(best)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Unknown profile %q (want el, ql, or rl)\n", *profileName)
		os.Exit(1)
	}

	if *doClassify {
		h, err := r.Classify(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error classifying: %v\n", err)
			os.Exit(1)
		}
		for _, iri := range h.AllClasses() {
			result.Classes = append(result.Classes, classSummary{
				IRI:              iri,
				DirectSuperclasses: h.DirectSuperclasses(iri),
				Superclasses:     h.GetAllSuperclasses(iri),
				Equivalent:       h.GetEquivalentClasses(iri),
				Disjoint:         h.GetDisjointClasses(iri),
			})
		}
	}

	result.ElapsedMs = time.Since(start).Milliseconds()
	result.CacheStats = r.CacheStats()

	var out *os.File
	if *output == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
			os.Exit(1)
		}
		defer out.Close()
	}

	enc := json.NewEncoder(out)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func resolveProfile(name string) (profile.Profile, bool) {
	switch name {
	case "el":
		return profile.ProfileEL, true
	case "ql":
		return profile.ProfileQL, true
	case "rl":
		return profile.ProfileRL, true
	default:
		return 0, false
	}
}

// report is the CLI's flat JSON output shape: one snapshot of whichever
// queries the flags selected, plus timing and cache statistics.
type report struct {
	Consistent    *bool                   `json:"consistent,omitempty"`
	ProfileResult *profile.Result         `json:"profile_result,omitempty"`
	Classes       []classSummary          `json:"classes,omitempty"`
	ElapsedMs     int64                   `json:"elapsed_ms"`
	CacheStats    reasoner.CacheStatistics `json:"cache_stats"`
}

type classSummary struct {
	IRI                string   `json:"iri"`
	DirectSuperclasses []string `json:"direct_superclasses,omitempty"`
	Superclasses       []string `json:"superclasses,omitempty"`
	Equivalent         []string `json:"equivalent,omitempty"`
	Disjoint           []string `json:"disjoint,omitempty"`
}
