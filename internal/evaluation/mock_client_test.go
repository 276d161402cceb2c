package evaluation

import (
	"context"
	"sync"
)

// scriptedClient returns canned responses (or errors) in call order and
// records every prompt, enabling exact call-count assertions.
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
	// Past the script: repeat the last response.
	if len(c.responses) > 0 {
		return c.responses[len(c.responses)-1], nil
	}
	return "", nil
}

func (c *scriptedClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.prompts)
}
