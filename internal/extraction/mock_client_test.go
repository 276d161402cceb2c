package extraction

import (
	"context"
	"sync"
)

// scriptedClient returns canned responses (or errors) in order and records
// every prompt it receives.
type scriptedClient struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	prompts   []string
}

func (c *scriptedClient) Complete(_ context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	call := len(c.prompts)
	c.prompts = append(c.prompts, prompt)

	if call < len(c.errs) && c.errs[call] != nil {
		return "", c.errs[call]
	}
	if call < len(c.responses) {
		return c.responses[call], nil
	}
	return "", nil
}

func (c *scriptedClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.prompts)
}
