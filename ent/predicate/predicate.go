// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ArchitectReview is the predicate function for architectreview builders.
type ArchitectReview func(*sql.Selector)

// Attachment is the predicate function for attachment builders.
type Attachment func(*sql.Selector)

// CodeReview is the predicate function for codereview builders.
type CodeReview func(*sql.Selector)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Request is the predicate function for request builders.
type Request func(*sql.Selector)

// SystemPrompt is the predicate function for systemprompt builders.
type SystemPrompt func(*sql.Selector)

// TriageReview is the predicate function for triagereview builders.
type TriageReview func(*sql.Selector)
