package panzoom

import "sort"

// ChangeWatcher tracks the live node set and reports added, removed, and
// modified nodes in coalesced batches. The set is rescanned once per update
// tick, so structural changes need no signal of their own; mutation signals
// landing between two ticks collapse into a single modified batch, and
// observers see at most one batch of each kind per tick.
type ChangeWatcher struct {
	stage Stage

	tracked map[uint32]ContentNode
	unsub   map[uint32]func()
	pending map[uint32]struct{}

	// initialDelay defers the first diff by one tick so content added
	// asynchronously right after mount is captured in a single batch.
	initialDelay int
	disposed     bool

	onAdded    func([]uint32)
	onRemoved  func([]uint32)
	onModified func([]uint32)
}

// newChangeWatcher creates a watcher with the first diff scheduled one tick
// out.
func newChangeWatcher(stage Stage) *ChangeWatcher {
	return &ChangeWatcher{
		stage:        stage,
		tracked:      make(map[uint32]ContentNode),
		unsub:        make(map[uint32]func()),
		pending:      make(map[uint32]struct{}),
		initialDelay: 1,
	}
}

// notifyMutated records a node mutation for the next diff pass. Safe to call
// any number of times per tick.
func (w *ChangeWatcher) notifyMutated(id uint32) {
	w.pending[id] = struct{}{}
}

// update runs the coalesced diff pass. Called once per tick by the engine.
func (w *ChangeWatcher) update() {
	if w.disposed {
		return
	}
	if w.initialDelay > 0 {
		w.initialDelay--
		return
	}
	w.diff()
}

// diff rescans the live node set, updates subscriptions, and fires the batch
// callbacks for non-empty sets.
func (w *ChangeWatcher) diff() {
	live := make(map[uint32]ContentNode)
	for _, n := range w.stage.ContentNodes() {
		live[n.ID()] = n
	}

	var added, removed, modified []uint32

	for id, n := range live {
		if _, ok := w.tracked[id]; ok {
			continue
		}
		added = append(added, id)
		w.tracked[id] = n
		w.unsub[id] = w.subscribe(n)
	}

	for id := range w.tracked {
		if _, ok := live[id]; ok {
			continue
		}
		removed = append(removed, id)
		if cancel := w.unsub[id]; cancel != nil {
			cancel()
		}
		delete(w.tracked, id)
		delete(w.unsub, id)
	}

	for id := range w.pending {
		if _, ok := live[id]; ok {
			modified = append(modified, id)
		}
	}
	clear(w.pending)

	sortIDs(added)
	sortIDs(removed)
	sortIDs(modified)

	if len(added) > 0 && w.onAdded != nil {
		w.onAdded(added)
	}
	if len(removed) > 0 && w.onRemoved != nil {
		w.onRemoved(removed)
	}
	if len(modified) > 0 && w.onModified != nil {
		w.onModified(modified)
	}
}

// subscribe wires a node's mutation signal into the pending set.
func (w *ChangeWatcher) subscribe(n ContentNode) func() {
	id := n.ID()
	return n.Subscribe(func() {
		w.notifyMutated(id)
	})
}

// dispose releases every node subscription. A dangling subscription on a
// removed node corrupts future diffs, so teardown must be explicit.
func (w *ChangeWatcher) dispose() {
	w.disposed = true
	for id, cancel := range w.unsub {
		if cancel != nil {
			cancel()
		}
		delete(w.unsub, id)
	}
	clear(w.tracked)
	clear(w.pending)
}

func sortIDs(ids []uint32) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
