// Package prompt builds all LLM prompt text for the pipeline stages:
// triage, architect (file selection and solution proposal), code review,
// and the instruction document handed to the coding agent. Builders are
// stateless apart from the reference document store; all request state
// comes from parameters.
package prompt

import (
	"strings"

	"github.com/conveyor-dev/conveyor/pkg/refdocs"
)

// Stage names. These are also the lookup keys for operator-supplied
// system prompt overrides.
const (
	StageTriage     = "triage"
	StageArchitect  = "architect"
	StageCodeReview = "code_review"
)

// Builder composes prompt text for every stage.
type Builder struct {
	docs *refdocs.Store
}

// NewBuilder creates a Builder. docs may be nil, in which case reference
// document sections are omitted from the prompts that include them.
func NewBuilder(docs *refdocs.Store) *Builder {
	return &Builder{docs: docs}
}

func (b *Builder) productObjectives() string {
	if b.docs == nil {
		return ""
	}
	return b.docs.ProductObjectives()
}

func (b *Builder) salesPositioning() string {
	if b.docs == nil {
		return ""
	}
	return b.docs.SalesPositioning()
}

// referenceDocSections renders whichever reference documents are
// available, each under its own heading.
func (b *Builder) referenceDocSections() string {
	var sections []string
	if po := b.productObjectives(); po != "" {
		sections = append(sections, FormatReferenceDoc("Product Objectives", po))
	}
	if sp := b.salesPositioning(); sp != "" {
		sections = append(sections, FormatReferenceDoc("Sales Positioning", sp))
	}
	return strings.Join(sections, "\n\n")
}

// roleOrDefault picks the operator override when one is configured.
func roleOrDefault(override, fallback string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return fallback
}
