package acct

// Event is a node state-change accounting record. TimeEnd of "0" means
// the event is still open; purge never deletes such rows (SPEC_FULL.md
// §3 invariants).
type Event struct {
	ClusterNodes string
	NodeName     string
	TimeEnd      string
	TimeStart    string
	Reason       string
	ReasonUID    string
	State        string
	TRES         string
}

// EventColumns is both the SQL SELECT column order for the
// "<cluster>_event_table" query and the wire field order the codec packs
// at the current protocol version. Keeping one slice for both prevents
// the column/wire drift the original job format suffered (SPEC_FULL.md
// §4.1 Supplemented Features).
var EventColumns = []string{
	"cluster_nodes", "node_name", "time_end", "time_start",
	"reason", "reason_uid", "state", "tres",
}

// Values returns the record's fields in EventColumns order.
func (e *Event) Values() []string {
	return []string{
		e.ClusterNodes, e.NodeName, e.TimeEnd, e.TimeStart,
		e.Reason, e.ReasonUID, e.State, e.TRES,
	}
}

// EventFromValues builds an Event from fields in EventColumns order.
func EventFromValues(v []string) Event {
	return Event{
		ClusterNodes: v[0], NodeName: v[1], TimeEnd: v[2], TimeStart: v[3],
		Reason: v[4], ReasonUID: v[5], State: v[6], TRES: v[7],
	}
}
