package groq

import "context"

// IGroq defines the interface for the Groq LLM client
type IGroq interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}
