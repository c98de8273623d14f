package acct

// Reservation is an advance-reservation accounting record.
type Reservation struct {
	Assocs    string
	Flags     string
	ID        string
	Name      string
	Nodes     string
	NodeInx   string
	TimeEnd   string
	TimeStart string
	TRES      string
}

// ReservationColumns is the SQL column order and current-version wire order.
var ReservationColumns = []string{
	"assocs", "flags", "id", "name", "nodes", "node_inx",
	"time_end", "time_start", "tres",
}

func (r *Reservation) Values() []string {
	return []string{
		r.Assocs, r.Flags, r.ID, r.Name, r.Nodes, r.NodeInx,
		r.TimeEnd, r.TimeStart, r.TRES,
	}
}

func ReservationFromValues(v []string) Reservation {
	return Reservation{
		Assocs: v[0], Flags: v[1], ID: v[2], Name: v[3], Nodes: v[4], NodeInx: v[5],
		TimeEnd: v[6], TimeStart: v[7], TRES: v[8],
	}
}
