package papercraft

type operationType int

const (
	opAdd operationType = iota
	opRefresh
	opKill
)

// opQueue holds the entity operations staged between two flushes. Each list keeps
// insertion order and holds an entity at most once.
type opQueue struct {
	addOps     []Entity
	refreshOps []Entity
	killOps    []Entity
	pending    map[operationType]map[int]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pending: map[operationType]map[int]struct{}{
			opAdd:     make(map[int]struct{}),
			opRefresh: make(map[int]struct{}),
			opKill:    make(map[int]struct{}),
		},
	}
}

func (q *opQueue) isPending(typ operationType, entityID int) bool {
	_, ok := q.pending[typ][entityID]
	return ok
}

func (q *opQueue) EnqueueAdd(entity Entity) {
	if q.isPending(opAdd, entity.id) {
		return
	}
	q.pending[opAdd][entity.id] = struct{}{}
	q.addOps = append(q.addOps, entity)
}

// EnqueueRefresh asks for the entity's system membership to be re-evaluated. Entities
// already waiting to be added or killed are evaluated by those operations instead.
func (q *opQueue) EnqueueRefresh(entity Entity) {
	if q.isPending(opAdd, entity.id) || q.isPending(opKill, entity.id) || q.isPending(opRefresh, entity.id) {
		return
	}
	q.pending[opRefresh][entity.id] = struct{}{}
	q.refreshOps = append(q.refreshOps, entity)
}

func (q *opQueue) EnqueueKill(entity Entity) {
	if q.isPending(opKill, entity.id) {
		return
	}
	q.pending[opKill][entity.id] = struct{}{}
	q.killOps = append(q.killOps, entity)
}

// drain hands the staged operations to the caller and leaves the queue empty, so
// operations staged while the caller processes them wait for the next flush.
func (q *opQueue) drain() (adds, refreshes, kills []Entity) {
	adds, refreshes, kills = q.addOps, q.refreshOps, q.killOps
	q.addOps, q.refreshOps, q.killOps = nil, nil, nil
	for _, set := range q.pending {
		clear(set)
	}
	return adds, refreshes, kills
}

func (q *opQueue) Len() (toAdd, toKill int) {
	return len(q.addOps), len(q.killOps)
}
