package interfaces

import (
	"context"

	"github.com/m-mizutani/inari/pkg/domain/model/agent"
)

// Agent is the capability contract every pluggable agent must satisfy: a
// single streaming query operation. The returned stream is lazy, finite and
// consumed exactly once by the caller; the call may block on the agent's own
// network or model I/O, so it must never run on a platform acknowledgement
// path.
type Agent interface {
	StreamQuery(ctx context.Context, query *agent.Query) (agent.Stream, error)
}
