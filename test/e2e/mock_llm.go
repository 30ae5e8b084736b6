package e2e

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/conveyor-dev/conveyor/pkg/llm"
)

// LLMScriptEntry is one scripted completion. Err takes precedence over
// Content when both are set.
type LLMScriptEntry struct {
	Content string
	Err     error
}

// ScriptedLLMClient implements llm.Client with pre-scripted responses.
//
// Entries are consumed from two pools: per-stage routes (keyed on the
// request's stage label) and a sequential fallback used when a stage has
// no remaining routed entries. Stages that call the model more than once
// per pass (the architect selects files, then designs) consume routed
// entries in order.
type ScriptedLLMClient struct {
	mu sync.Mutex

	sequential []LLMScriptEntry
	seqIndex   int

	routes     map[string][]LLMScriptEntry
	routeIndex map[string]int

	captured []llm.Request
}

func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		routes:     make(map[string][]LLMScriptEntry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential appends entries to the fallback pool.
func (c *ScriptedLLMClient) AddSequential(entries ...LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sequential = append(c.sequential, entries...)
}

// AddRouted appends entries consumed only by calls for the given stage.
func (c *ScriptedLLMClient) AddRouted(stage string, entries ...LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes[stage] = append(c.routes[stage], entries...)
}

func (c *ScriptedLLMClient) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.captured = append(c.captured, req)

	entry, err := c.nextEntry(req.Stage)
	if err != nil {
		return nil, err
	}
	if entry.Err != nil {
		return nil, entry.Err
	}

	return &llm.Response{
		Content:          entry.Content,
		Model:            c.Model(),
		PromptTokens:     len(req.SystemPrompt+req.UserPrompt) / 4,
		CompletionTokens: len(entry.Content) / 4,
		Duration:         time.Millisecond,
	}, nil
}

func (c *ScriptedLLMClient) Provider() string { return "scripted" }
func (c *ScriptedLLMClient) Model() string    { return "scripted-model" }

// nextEntry prefers the stage's routed entries, then the sequential pool.
// Caller holds the lock.
func (c *ScriptedLLMClient) nextEntry(stage string) (LLMScriptEntry, error) {
	if entries := c.routes[stage]; c.routeIndex[stage] < len(entries) {
		entry := entries[c.routeIndex[stage]]
		c.routeIndex[stage]++
		return entry, nil
	}
	if c.seqIndex < len(c.sequential) {
		entry := c.sequential[c.seqIndex]
		c.seqIndex++
		return entry, nil
	}
	return LLMScriptEntry{}, fmt.Errorf(
		"ScriptedLLMClient: no more entries (stage=%q, sequential=%d/%d)",
		stage, c.seqIndex, len(c.sequential))
}

// CallCount returns how many completions were requested in total.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.captured)
}

// CallsFor returns how many completions were requested for one stage.
func (c *ScriptedLLMClient) CallsFor(stage string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, req := range c.captured {
		if req.Stage == stage {
			n++
		}
	}
	return n
}

// Captured returns a copy of every request seen, in call order.
func (c *ScriptedLLMClient) Captured() []llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]llm.Request, len(c.captured))
	copy(out, c.captured)
	return out
}
