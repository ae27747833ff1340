package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leofalp/emcalc/providers/observability"
)

// Dispatcher routes a named operation and its JSON arguments to the matching
// tool in a catalog. The lookup happens before any argument is decoded, so an
// unknown name never reaches a tool.
type Dispatcher struct {
	catalog  *Catalog
	observer observability.Provider
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithObserver records a span, call counters and a duration histogram for
// every dispatch.
func WithObserver(observer observability.Provider) DispatcherOption {
	return func(d *Dispatcher) {
		d.observer = observer
	}
}

// NewDispatcher returns a Dispatcher over catalog. A nil catalog behaves as
// an empty one.
func NewDispatcher(catalog *Catalog, opts ...DispatcherOption) *Dispatcher {
	if catalog == nil {
		catalog = NewCatalog()
	}
	d := &Dispatcher{catalog: catalog}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Catalog returns the catalog the dispatcher routes into.
func (d *Dispatcher) Catalog() *Catalog {
	return d.catalog
}

// Dispatch calls the tool registered as name with inputJSON and returns its
// JSON output. Unknown names fail with [ErrUnknownTool].
func (d *Dispatcher) Dispatch(ctx context.Context, name, inputJSON string) (string, error) {
	t, ok := d.catalog.Get(name)
	if d.observer == nil {
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
		}
		return t.Call(ctx, inputJSON)
	}

	callID := uuid.NewString()
	ctx, span := d.observer.StartSpan(ctx, observability.SpanToolDispatch,
		observability.String(observability.AttrCallID, callID),
		observability.String(observability.AttrToolName, name),
	)
	defer span.End()

	nameAttr := observability.String(observability.AttrToolName, name)
	d.observer.Counter(observability.MetricToolCalls).Add(ctx, 1, nameAttr)

	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownTool, name)
		d.fail(ctx, span, err, nameAttr)
		return "", err
	}
	if unit := t.ToolInfo().Unit; unit != "" {
		span.SetAttributes(observability.String(observability.AttrToolUnit, unit))
	}

	start := time.Now()
	output, err := t.Call(ctx, inputJSON)
	elapsed := time.Since(start)
	d.observer.Histogram(observability.MetricToolDurationMs).Record(ctx, float64(elapsed.Microseconds())/1000, nameAttr)

	if err != nil {
		d.fail(ctx, span, err, nameAttr)
		return "", err
	}

	span.SetStatus(observability.StatusOK, "")
	d.observer.Debug(ctx, "Tool dispatched",
		observability.String(observability.AttrCallID, callID),
		nameAttr,
		observability.Duration(observability.AttrToolDuration, elapsed),
	)
	return output, nil
}

func (d *Dispatcher) fail(ctx context.Context, span observability.Span, err error, nameAttr observability.Attribute) {
	span.RecordError(err)
	span.SetStatus(observability.StatusError, err.Error())
	d.observer.Counter(observability.MetricToolErrors).Add(ctx, 1, nameAttr)
	d.observer.Warn(ctx, "Tool dispatch failed", nameAttr, observability.Error(err))
}
