package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"stock-check/core/identifier"
	"stock-check/core/ledger"
	"stock-check/core/metrics"
	"stock-check/core/reconcile"
	"stock-check/core/register"
	"stock-check/core/scan"

	"go.uber.org/zap"
)

// IDLayout formats session ids from their start time.
const IDLayout = "20060102_150405"

// Context is the explicit state of one operator session.
type Context struct {
	mu sync.Mutex

	index   *register.Index
	ledger  *ledger.Ledger
	pending *scan.Outcome

	cache   *reconcile.Cache
	logger  *zap.Logger
	metrics *metrics.Metrics
	loc     *time.Location
	now     func() time.Time
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithMetrics records scan and import counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Context) { c.metrics = m }
}

// WithLocation sets the timezone used for session ids and timestamps.
func WithLocation(loc *time.Location) Option {
	return func(c *Context) { c.loc = loc }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Context) { c.now = now }
}

// New creates a session with no register loaded. Every accepted scan is
// saved through persister; nil disables saving.
func New(persister ledger.Persister, opts ...Option) *Context {
	c := &Context{
		cache:  reconcile.NewCache(),
		logger: zap.NewNop(),
		loc:    time.Local,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ledger = ledger.New(c.newMeta("", ""), persister).WithClock(c.clock)
	return c
}

func (c *Context) clock() time.Time {
	return c.now().In(c.loc)
}

// newMeta starts a new session identity. Ids have one-second resolution, so
// a suffix keeps a new session from overwriting the one it replaces.
func (c *Context) newMeta(filename, previousID string) ledger.Meta {
	started := c.clock()
	id := started.Format(IDLayout)
	for n := 2; id == previousID; n++ {
		id = fmt.Sprintf("%s_%d", started.Format(IDLayout), n)
	}
	return ledger.Meta{SessionID: id, StartedAt: started, RegisterFilename: filename}
}

// ImportRegister validates the table, swaps in the new register and starts
// a fresh session. When the current ledger holds scans, confirm must be true.
// On error nothing changes.
func (c *Context) ImportRegister(ctx context.Context, filename string, table register.Table, confirm bool) (*ImportSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ledger.Len() > 0 && !confirm {
		return nil, ErrConfirmationRequired
	}

	idx, err := register.Build(filename, table)
	if err != nil {
		c.metrics.RegisterImported(false, 0)
		return nil, err
	}

	for _, col := range idx.Collisions() {
		c.logger.Warn("Duplicate serial in register, first row wins",
			zap.String("serial", col.Serial),
			zap.Int("kept_row", col.KeptRow),
			zap.Int("shadow_row", col.ShadowRow),
		)
	}

	previous := c.ledger.Meta().SessionID
	c.index = idx
	c.pending = nil
	c.ledger.Reset(c.newMeta(filename, previous))
	c.cache.Invalidate()
	c.metrics.RegisterImported(true, idx.Len())
	c.metrics.LedgerSize(0)

	c.logger.Info("Register imported",
		zap.String("file", filename),
		zap.Int("rows", idx.Len()),
		zap.Int("collisions", len(idx.Collisions())),
		zap.String("session_id", c.ledger.Meta().SessionID),
	)

	states := make(map[string]int)
	for s, n := range idx.StateCounts() {
		states[string(s)] = n
	}

	return &ImportSummary{
		SessionID:    c.ledger.Meta().SessionID,
		Filename:     filename,
		Rows:         idx.Len(),
		HasAssetTags: idx.HasAssetTags(),
		Collisions:   len(idx.Collisions()),
		States:       states,
	}, nil
}

// Scan processes one scanned value to completion. Input problems and
// duplicates are reported through Result.Kind, not as errors. When the save
// after an accepted scan fails, both the Result and a *ledger.PersistError
// are returned: the scan is recorded in memory but not yet durable.
func (c *Context) Scan(ctx context.Context, raw string) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index == nil {
		return nil, ErrNoRegister
	}
	if c.pending != nil {
		return nil, ErrDecisionPending
	}

	match, err := scan.Match(raw, c.index)
	if err != nil {
		res := rejected(err)
		c.metrics.ScanRecorded(string(res.Kind))
		return res, nil
	}

	out := scan.Classify(raw, match, c.clock())
	status, saveErr := c.ledger.Append(ctx, out)
	if status == ledger.Duplicate {
		c.metrics.ScanRecorded(string(KindDuplicate))
		return &Result{
			Kind:    KindDuplicate,
			Message: fmt.Sprintf("Item %s was already checked in this session", out.MatchedSerial),
			Serial:  out.MatchedSerial,
			Outcome: &out,
		}, nil
	}

	res := &Result{Serial: identifier.Canonical(raw), Outcome: &out}
	switch {
	case !out.Found:
		c.pending = &out
		res.Kind = KindNotFound
		res.Pending = true
		res.Message = fmt.Sprintf("Serial %s not found in the register: keep or discard it before scanning again", out.MatchedSerial)
	case out.RequiresAdjustment:
		res.Kind = KindAdjustment
		res.Message = fmt.Sprintf("Item %s is marked active and requires adjustment", out.MatchedSerial)
	case !out.State.IsOK():
		res.Kind = KindUnknownState
		res.Message = fmt.Sprintf("Item %s found, but its register state %q is not recognized: check it in the asset system", out.MatchedSerial, match.RawState)
	default:
		res.Kind = KindAccepted
		res.Message = fmt.Sprintf("Item %s verified: %s", out.MatchedSerial, out.State.Label())
	}

	c.metrics.ScanRecorded(string(res.Kind))
	c.metrics.LedgerSize(c.ledger.Len())

	if saveErr != nil {
		c.metrics.SaveFailed()
		c.logger.Error("Failed to save session after scan",
			zap.String("session_id", c.ledger.Meta().SessionID),
			zap.String("serial", out.MatchedSerial),
			zap.Error(saveErr),
		)
		return res, saveErr
	}
	return res, nil
}

func rejected(err error) *Result {
	msg := "Scan rejected"
	switch {
	case errors.Is(err, identifier.ErrEmptyInput):
		msg = "Empty scan: nothing was read"
	case errors.Is(err, identifier.ErrTooShort):
		msg = fmt.Sprintf("Serial looks incomplete (%v)", err)
	}
	return &Result{Kind: KindRejected, Message: msg}
}

// Keep resolves the pending not-found scan by keeping it in the ledger.
func (c *Context) Keep() (*scan.Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return nil, ErrNoPendingDecision
	}
	kept := c.pending
	c.pending = nil
	return kept, nil
}

// Discard resolves the pending not-found scan by removing it from the ledger
// and saving the result.
func (c *Context) Discard(ctx context.Context) (*scan.Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return nil, ErrNoPendingDecision
	}
	c.pending = nil

	removed, ok := c.ledger.RemoveFront()
	if !ok {
		return nil, nil
	}
	c.metrics.LedgerSize(c.ledger.Len())

	if err := c.ledger.Save(ctx); err != nil {
		c.metrics.SaveFailed()
		c.logger.Error("Failed to save session after discard",
			zap.String("session_id", c.ledger.Meta().SessionID),
			zap.Error(err),
		)
		return &removed, err
	}
	return &removed, nil
}

// Reset starts a new, empty session against the current register.
func (c *Context) Reset() ledger.Meta {
	c.mu.Lock()
	defer c.mu.Unlock()

	filename := ""
	if c.index != nil {
		filename = c.index.Filename()
	}
	c.pending = nil
	c.ledger.Reset(c.newMeta(filename, c.ledger.Meta().SessionID))
	c.metrics.LedgerSize(0)
	return c.ledger.Meta()
}

// Report returns the reconciliation report for the current register and ledger.
func (c *Context) Report() (*reconcile.Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index == nil {
		return nil, ErrNoRegister
	}
	return c.cache.Get(c.index, c.ledger), nil
}

// Status summarizes the session.
func (c *Context) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Status{
		SessionID: c.ledger.Meta().SessionID,
		Scanned:   c.ledger.Len(),
	}
	if c.index != nil {
		st.RegisterLoaded = true
		st.RegisterFilename = c.index.Filename()
		st.RegisterRows = c.index.Len()
	}
	if c.pending != nil {
		p := *c.pending
		st.Pending = &p
	}
	if latest, ok := c.ledger.Latest(); ok {
		st.Latest = &latest
	}
	return st
}

// Items returns the ledger entries, newest first.
func (c *Context) Items() []scan.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Items()
}

// Register returns the loaded register, or nil.
func (c *Context) Register() *register.Index {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}
