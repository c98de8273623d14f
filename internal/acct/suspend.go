package acct

// Suspend records a job suspend/resume interval.
type Suspend struct {
	JobDBInx  string
	AssocID   string
	TimeEnd   string
	TimeStart string
}

// SuspendColumns is the SQL column order and current-version wire order.
var SuspendColumns = []string{"job_db_inx", "id_assoc", "time_end", "time_start"}

func (s *Suspend) Values() []string {
	return []string{s.JobDBInx, s.AssocID, s.TimeEnd, s.TimeStart}
}

func SuspendFromValues(v []string) Suspend {
	return Suspend{JobDBInx: v[0], AssocID: v[1], TimeEnd: v[2], TimeStart: v[3]}
}
