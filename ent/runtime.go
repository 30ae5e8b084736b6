// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/attachment"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/project"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/schema"
	"github.com/conveyor-dev/conveyor/ent/systemprompt"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	architectreviewFields := schema.ArchitectReview{}.Fields()
	_ = architectreviewFields
	// architectreviewDescFilesAnalyzed is the schema descriptor for files_analyzed field.
	architectreviewDescFilesAnalyzed := architectreviewFields[7].Descriptor()
	// architectreview.DefaultFilesAnalyzed holds the default value on creation for the files_analyzed field.
	architectreview.DefaultFilesAnalyzed = architectreviewDescFilesAnalyzed.Default.(int)
	// architectreviewDescStep1PromptTokens is the schema descriptor for step1_prompt_tokens field.
	architectreviewDescStep1PromptTokens := architectreviewFields[9].Descriptor()
	// architectreview.DefaultStep1PromptTokens holds the default value on creation for the step1_prompt_tokens field.
	architectreview.DefaultStep1PromptTokens = architectreviewDescStep1PromptTokens.Default.(int)
	// architectreviewDescStep1CompletionTokens is the schema descriptor for step1_completion_tokens field.
	architectreviewDescStep1CompletionTokens := architectreviewFields[10].Descriptor()
	// architectreview.DefaultStep1CompletionTokens holds the default value on creation for the step1_completion_tokens field.
	architectreview.DefaultStep1CompletionTokens = architectreviewDescStep1CompletionTokens.Default.(int)
	// architectreviewDescStep2PromptTokens is the schema descriptor for step2_prompt_tokens field.
	architectreviewDescStep2PromptTokens := architectreviewFields[11].Descriptor()
	// architectreview.DefaultStep2PromptTokens holds the default value on creation for the step2_prompt_tokens field.
	architectreview.DefaultStep2PromptTokens = architectreviewDescStep2PromptTokens.Default.(int)
	// architectreviewDescStep2CompletionTokens is the schema descriptor for step2_completion_tokens field.
	architectreviewDescStep2CompletionTokens := architectreviewFields[12].Descriptor()
	// architectreview.DefaultStep2CompletionTokens holds the default value on creation for the step2_completion_tokens field.
	architectreview.DefaultStep2CompletionTokens = architectreviewDescStep2CompletionTokens.Default.(int)
	// architectreviewDescDurationMs is the schema descriptor for duration_ms field.
	architectreviewDescDurationMs := architectreviewFields[14].Descriptor()
	// architectreview.DefaultDurationMs holds the default value on creation for the duration_ms field.
	architectreview.DefaultDurationMs = architectreviewDescDurationMs.Default.(int64)
	// architectreviewDescCreatedAt is the schema descriptor for created_at field.
	architectreviewDescCreatedAt := architectreviewFields[19].Descriptor()
	// architectreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	architectreview.DefaultCreatedAt = architectreviewDescCreatedAt.Default.(func() time.Time)
	attachmentFields := schema.Attachment{}.Fields()
	_ = attachmentFields
	// attachmentDescCreatedAt is the schema descriptor for created_at field.
	attachmentDescCreatedAt := attachmentFields[5].Descriptor()
	// attachment.DefaultCreatedAt holds the default value on creation for the created_at field.
	attachment.DefaultCreatedAt = attachmentDescCreatedAt.Default.(func() time.Time)
	codereviewFields := schema.CodeReview{}.Fields()
	_ = codereviewFields
	// codereviewDescDesignCompliance is the schema descriptor for design_compliance field.
	codereviewDescDesignCompliance := codereviewFields[4].Descriptor()
	// codereview.DefaultDesignCompliance holds the default value on creation for the design_compliance field.
	codereview.DefaultDesignCompliance = codereviewDescDesignCompliance.Default.(bool)
	// codereviewDescSecurityPass is the schema descriptor for security_pass field.
	codereviewDescSecurityPass := codereviewFields[6].Descriptor()
	// codereview.DefaultSecurityPass holds the default value on creation for the security_pass field.
	codereview.DefaultSecurityPass = codereviewDescSecurityPass.Default.(bool)
	// codereviewDescCodingStandardsPass is the schema descriptor for coding_standards_pass field.
	codereviewDescCodingStandardsPass := codereviewFields[8].Descriptor()
	// codereview.DefaultCodingStandardsPass holds the default value on creation for the coding_standards_pass field.
	codereview.DefaultCodingStandardsPass = codereviewDescCodingStandardsPass.Default.(bool)
	// codereviewDescQualityScore is the schema descriptor for quality_score field.
	codereviewDescQualityScore := codereviewFields[10].Descriptor()
	// codereview.DefaultQualityScore holds the default value on creation for the quality_score field.
	codereview.DefaultQualityScore = codereviewDescQualityScore.Default.(int)
	// codereviewDescFilesChanged is the schema descriptor for files_changed field.
	codereviewDescFilesChanged := codereviewFields[11].Descriptor()
	// codereview.DefaultFilesChanged holds the default value on creation for the files_changed field.
	codereview.DefaultFilesChanged = codereviewDescFilesChanged.Default.(int)
	// codereviewDescLinesAdded is the schema descriptor for lines_added field.
	codereviewDescLinesAdded := codereviewFields[12].Descriptor()
	// codereview.DefaultLinesAdded holds the default value on creation for the lines_added field.
	codereview.DefaultLinesAdded = codereviewDescLinesAdded.Default.(int)
	// codereviewDescLinesRemoved is the schema descriptor for lines_removed field.
	codereviewDescLinesRemoved := codereviewFields[13].Descriptor()
	// codereview.DefaultLinesRemoved holds the default value on creation for the lines_removed field.
	codereview.DefaultLinesRemoved = codereviewDescLinesRemoved.Default.(int)
	// codereviewDescPromptTokens is the schema descriptor for prompt_tokens field.
	codereviewDescPromptTokens := codereviewFields[15].Descriptor()
	// codereview.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	codereview.DefaultPromptTokens = codereviewDescPromptTokens.Default.(int)
	// codereviewDescCompletionTokens is the schema descriptor for completion_tokens field.
	codereviewDescCompletionTokens := codereviewFields[16].Descriptor()
	// codereview.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	codereview.DefaultCompletionTokens = codereviewDescCompletionTokens.Default.(int)
	// codereviewDescDurationMs is the schema descriptor for duration_ms field.
	codereviewDescDurationMs := codereviewFields[18].Descriptor()
	// codereview.DefaultDurationMs holds the default value on creation for the duration_ms field.
	codereview.DefaultDurationMs = codereviewDescDurationMs.Default.(int64)
	// codereviewDescCreatedAt is the schema descriptor for created_at field.
	codereviewDescCreatedAt := codereviewFields[19].Descriptor()
	// codereview.DefaultCreatedAt holds the default value on creation for the created_at field.
	codereview.DefaultCreatedAt = codereviewDescCreatedAt.Default.(func() time.Time)
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescIsAgent is the schema descriptor for is_agent field.
	commentDescIsAgent := commentFields[4].Descriptor()
	// comment.DefaultIsAgent holds the default value on creation for the is_agent field.
	comment.DefaultIsAgent = commentDescIsAgent.Default.(bool)
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentFields[7].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescActive is the schema descriptor for active field.
	projectDescActive := projectFields[3].Descriptor()
	// project.DefaultActive holds the default value on creation for the active field.
	project.DefaultActive = projectDescActive.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	requestFields := schema.Request{}.Fields()
	_ = requestFields
	// requestDescTriageCount is the schema descriptor for triage_count field.
	requestDescTriageCount := requestFields[12].Descriptor()
	// request.DefaultTriageCount holds the default value on creation for the triage_count field.
	request.DefaultTriageCount = requestDescTriageCount.Default.(int)
	// requestDescArchitectCount is the schema descriptor for architect_count field.
	requestDescArchitectCount := requestFields[14].Descriptor()
	// request.DefaultArchitectCount holds the default value on creation for the architect_count field.
	request.DefaultArchitectCount = requestDescArchitectCount.Default.(int)
	// requestDescDeploymentRetryCount is the schema descriptor for deployment_retry_count field.
	requestDescDeploymentRetryCount := requestFields[26].Descriptor()
	// request.DefaultDeploymentRetryCount holds the default value on creation for the deployment_retry_count field.
	request.DefaultDeploymentRetryCount = requestDescDeploymentRetryCount.Default.(int)
	// requestDescBranchDeleted is the schema descriptor for branch_deleted field.
	requestDescBranchDeleted := requestFields[27].Descriptor()
	// request.DefaultBranchDeleted holds the default value on creation for the branch_deleted field.
	request.DefaultBranchDeleted = requestDescBranchDeleted.Default.(bool)
	// requestDescCreatedAt is the schema descriptor for created_at field.
	requestDescCreatedAt := requestFields[29].Descriptor()
	// request.DefaultCreatedAt holds the default value on creation for the created_at field.
	request.DefaultCreatedAt = requestDescCreatedAt.Default.(func() time.Time)
	// requestDescUpdatedAt is the schema descriptor for updated_at field.
	requestDescUpdatedAt := requestFields[30].Descriptor()
	// request.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	request.DefaultUpdatedAt = requestDescUpdatedAt.Default.(func() time.Time)
	// request.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	request.UpdateDefaultUpdatedAt = requestDescUpdatedAt.UpdateDefault.(func() time.Time)
	systempromptFields := schema.SystemPrompt{}.Fields()
	_ = systempromptFields
	// systempromptDescUpdatedAt is the schema descriptor for updated_at field.
	systempromptDescUpdatedAt := systempromptFields[2].Descriptor()
	// systemprompt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	systemprompt.DefaultUpdatedAt = systempromptDescUpdatedAt.Default.(func() time.Time)
	// systemprompt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	systemprompt.UpdateDefaultUpdatedAt = systempromptDescUpdatedAt.UpdateDefault.(func() time.Time)
	triagereviewFields := schema.TriageReview{}.Fields()
	_ = triagereviewFields
	// triagereviewDescIsDuplicate is the schema descriptor for is_duplicate field.
	triagereviewDescIsDuplicate := triagereviewFields[10].Descriptor()
	// triagereview.DefaultIsDuplicate holds the default value on creation for the is_duplicate field.
	triagereview.DefaultIsDuplicate = triagereviewDescIsDuplicate.Default.(bool)
	// triagereviewDescPromptTokens is the schema descriptor for prompt_tokens field.
	triagereviewDescPromptTokens := triagereviewFields[12].Descriptor()
	// triagereview.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	triagereview.DefaultPromptTokens = triagereviewDescPromptTokens.Default.(int)
	// triagereviewDescCompletionTokens is the schema descriptor for completion_tokens field.
	triagereviewDescCompletionTokens := triagereviewFields[13].Descriptor()
	// triagereview.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	triagereview.DefaultCompletionTokens = triagereviewDescCompletionTokens.Default.(int)
	// triagereviewDescDurationMs is the schema descriptor for duration_ms field.
	triagereviewDescDurationMs := triagereviewFields[15].Descriptor()
	// triagereview.DefaultDurationMs holds the default value on creation for the duration_ms field.
	triagereview.DefaultDurationMs = triagereviewDescDurationMs.Default.(int64)
	// triagereviewDescCreatedAt is the schema descriptor for created_at field.
	triagereviewDescCreatedAt := triagereviewFields[16].Descriptor()
	// triagereview.DefaultCreatedAt holds the default value on creation for the created_at field.
	triagereview.DefaultCreatedAt = triagereviewDescCreatedAt.Default.(func() time.Time)
}
