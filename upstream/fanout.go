// ABOUTME: Concurrent fan-out of independent upstream calls for aggregated endpoints
// ABOUTME: Declarative per-call failure policy: required calls abort, optional calls default

package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrUnavailable marks a transport-level failure on a required call.
// Handlers translate it into a 502 response.
var ErrUnavailable = fmt.Errorf("upstream unavailable")

// Call describes one slot of an aggregated operation.
//
// Required calls abort the whole operation when they fail: a non-2xx
// response surfaces as *RequiredCallError (the handler forwards the
// upstream status and body verbatim) and a transport failure surfaces as
// ErrUnavailable. Optional calls never abort; any failure fills the slot
// with Default instead.
type Call struct {
	Request  Request
	Required bool
	Default  json.RawMessage
}

// RequiredCallError reports a required call that completed with a non-2xx
// status. The embedded result carries the upstream response to forward.
type RequiredCallError struct {
	Index  int
	Result Result
}

func (e *RequiredCallError) Error() string {
	return fmt.Sprintf("required upstream call %d returned status %d", e.Index, e.Result.Status)
}

// FanOut issues all calls concurrently and waits for every slot to settle.
// Results are returned in call order; the calls have no ordering
// dependency on each other. Slots filled from Default report the original
// failing status (or 0 for transport failure) so callers can still log it.
func FanOut(ctx context.Context, c *Client, calls []Call) ([]Result, error) {
	results := make([]Result, len(calls))

	g, ctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		g.Go(func() error {
			res, err := c.Do(ctx, call.Request)
			if err != nil {
				if call.Required {
					return fmt.Errorf("%w: %v", ErrUnavailable, err)
				}
				results[i] = Result{Data: call.Default, ContentType: "application/json"}
				return nil
			}
			if !res.OK() && !call.Required {
				results[i] = Result{Status: res.Status, Data: call.Default, ContentType: "application/json"}
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Required non-2xx responses are reported only after every call has
	// settled, so in-flight optional calls are never cancelled mid-way.
	for i, call := range calls {
		if call.Required && !results[i].OK() {
			return nil, &RequiredCallError{Index: i, Result: results[i]}
		}
	}

	return results, nil
}
