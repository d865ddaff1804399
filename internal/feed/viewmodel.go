package feed

import (
	"sort"
	"sync"

	"uniformes/internal/model"
	"uniformes/internal/stats"
)

// State models data readiness. The transition Loading -> Ready happens on
// the first snapshot and is terminal for the session.
type State int

const (
	StateLoading State = iota
	StateReady
)

// ViewModel maintains a locally sorted, read-only projection of the record
// set fed by a Broker subscription. It never mutates the records it holds.
type ViewModel struct {
	mu      sync.RWMutex
	state   State
	records []model.Delivery

	cancel func()
	done   chan struct{}
}

// NewViewModel subscribes to the broker and starts consuming snapshots
func NewViewModel(broker *Broker) *ViewModel {
	ch, cancel := broker.Subscribe()
	vm := &ViewModel{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go vm.run(ch)
	return vm
}

func (vm *ViewModel) run(ch <-chan []model.Delivery) {
	defer close(vm.done)
	for snapshot := range ch {
		sorted := sortNewestFirst(snapshot)
		vm.mu.Lock()
		vm.records = sorted
		vm.state = StateReady
		vm.mu.Unlock()
	}
}

// sortNewestFirst copies and orders a snapshot by timestamp descending,
// ties broken by id so the order is independent of delivery order.
func sortNewestFirst(snapshot []model.Delivery) []model.Delivery {
	sorted := make([]model.Delivery, len(snapshot))
	copy(sorted, snapshot)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.After(sorted[j].Timestamp)
		}
		return sorted[i].ID.String() > sorted[j].ID.String()
	})
	return sorted
}

// State returns the current readiness state
func (vm *ViewModel) State() State {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.state
}

// Records returns a copy of the current newest-first snapshot; callers
// may reorder or truncate it without affecting the projection.
func (vm *ViewModel) Records() []model.Delivery {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	records := make([]model.Delivery, len(vm.records))
	copy(records, vm.records)
	return records
}

// Stats recomputes the aggregate from the current snapshot. Kept as a pure
// recompute rather than a cached field to avoid staleness.
func (vm *ViewModel) Stats() model.AggregatedStats {
	return stats.Aggregate(vm.Records())
}

// Stop releases the subscription and waits for the consumer to drain.
// No state changes happen after Stop returns.
func (vm *ViewModel) Stop() {
	vm.cancel()
	<-vm.done
}
