package acct

// Job is a completed-job accounting record. TimeSubmit is its time key;
// purge honors the deleted flag for jobs (SPEC_FULL.md §3).
//
// Field order below is the current protocol version's wire/column order.
// Older versions reorder or drop some of these fields on the wire — see
// internal/wire/job.go, which is the only place that is allowed to know
// about the historical drift documented in SPEC_FULL.md §4.1.
type Job struct {
	Account       string
	AllocNodes    string
	AssocID       string
	ArrayJobID    string
	ArrayMaxTasks string
	ArrayTaskID   string
	BlockID       string
	DerivedEC     string
	DerivedES     string
	ExitCode      string
	TimeLimit     string
	TimeEligible  string
	TimeEnd       string
	GID           string
	DBInx         string
	JobID         string
	KillRequid    string
	Name          string
	NodeList      string
	NodeInx       string
	Partition     string
	Priority      string
	QOS           string
	ReqCPUs       string
	ReqMem        string
	ResvID        string
	TimeStart     string
	State         string
	TimeSubmit    string
	TimeSuspended string
	TrackSteps    string
	TRESAlloc     string
	TRESReq       string
	UID           string
	Wckey         string
	WckeyID       string
}

// JobColumns is the SQL column order and current-version wire order.
var JobColumns = []string{
	"account", "alloc_nodes", "id_assoc", "id_array_job", "array_max_tasks",
	"id_array_task", "id_block", "derived_ec", "derived_es", "exit_code",
	"timelimit", "time_eligible", "time_end", "id_group", "job_db_inx",
	"id_job", "kill_requid", "job_name", "nodelist", "node_inx", "partition",
	"priority", "id_qos", "cpus_req", "mem_req", "id_resv", "time_start",
	"state", "time_submit", "time_suspended", "track_steps", "tres_alloc",
	"tres_req", "id_user", "wckey", "id_wckey",
}

func (j *Job) Values() []string {
	return []string{
		j.Account, j.AllocNodes, j.AssocID, j.ArrayJobID, j.ArrayMaxTasks,
		j.ArrayTaskID, j.BlockID, j.DerivedEC, j.DerivedES, j.ExitCode,
		j.TimeLimit, j.TimeEligible, j.TimeEnd, j.GID, j.DBInx,
		j.JobID, j.KillRequid, j.Name, j.NodeList, j.NodeInx, j.Partition,
		j.Priority, j.QOS, j.ReqCPUs, j.ReqMem, j.ResvID, j.TimeStart,
		j.State, j.TimeSubmit, j.TimeSuspended, j.TrackSteps, j.TRESAlloc,
		j.TRESReq, j.UID, j.Wckey, j.WckeyID,
	}
}

func JobFromValues(v []string) Job {
	return Job{
		Account: v[0], AllocNodes: v[1], AssocID: v[2], ArrayJobID: v[3], ArrayMaxTasks: v[4],
		ArrayTaskID: v[5], BlockID: v[6], DerivedEC: v[7], DerivedES: v[8], ExitCode: v[9],
		TimeLimit: v[10], TimeEligible: v[11], TimeEnd: v[12], GID: v[13], DBInx: v[14],
		JobID: v[15], KillRequid: v[16], Name: v[17], NodeList: v[18], NodeInx: v[19], Partition: v[20],
		Priority: v[21], QOS: v[22], ReqCPUs: v[23], ReqMem: v[24], ResvID: v[25], TimeStart: v[26],
		State: v[27], TimeSubmit: v[28], TimeSuspended: v[29], TrackSteps: v[30], TRESAlloc: v[31],
		TRESReq: v[32], UID: v[33], Wckey: v[34], WckeyID: v[35],
	}
}

// ArrayTaskIDNotSet is the sentinel textual default for Job.ArrayTaskID
// when the field is legitimately absent from an older archive — the
// textual form of NO_VAL-1 (SPEC_FULL.md §9).
const ArrayTaskIDNotSet = "4294967294"
