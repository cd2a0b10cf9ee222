package services

import "context"

// ChatSvcFacade proxies free-text questions to the LLM advisor.
// Implementations enforce a process-wide admission gate; a throttled call
// returns an AppError with status 429. Provider 429/401 pass through with
// their original status.
type ChatSvcFacade interface {
	Ask(ctx context.Context, message string) (string, error)
}
