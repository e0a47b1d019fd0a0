package categorizer

import "context"

// Classifier is the boundary contract for external classification services.
// Implementations are consulted only on the no-rule-matched path and must
// honor the context deadline; any failure mode is treated by the caller as
// "no category produced".
type Classifier interface {
	Classify(ctx context.Context, description string) (string, error)
}
