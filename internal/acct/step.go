package acct

// Step is a completed-job-step accounting record. Honors the deleted
// flag like Job (SPEC_FULL.md §3).
type Step struct {
	DBInx         string
	StepID        string
	TimeStart     string
	TimeEnd       string
	TimeSuspended string
	Name          string
	NodeList      string
	NodeInx       string
	State         string
	KillRequid    string
	ExitCode      string
	NodesAlloc    string
	Tasks         string
	TaskDist      string
	UserSec       string
	UserUsec      string
	SysSec        string
	SysUsec       string

	MaxVSize     string
	MaxVSizeTask string
	MaxVSizeNode string
	AveVSize     string

	MaxRSS     string
	MaxRSSTask string
	MaxRSSNode string
	AveRSS     string

	MaxPages     string
	MaxPagesTask string
	MaxPagesNode string
	AvePages     string

	MinCPU     string
	MinCPUTask string
	MinCPUNode string
	AveCPU     string

	ActCPUFreq      string
	ConsumedEnergy  string
	ReqCPUFreqMin   string
	ReqCPUFreqMax   string
	ReqCPUFreqGov   string

	MaxDiskRead     string
	MaxDiskReadTask string
	MaxDiskReadNode string
	AveDiskRead     string

	MaxDiskWrite     string
	MaxDiskWriteTask string
	MaxDiskWriteNode string
	AveDiskWrite     string

	TRESAlloc string
}

// StepColumns is the SQL column order and current-version wire order.
var StepColumns = []string{
	"job_db_inx", "id_step", "time_start", "time_end", "time_suspended",
	"step_name", "nodelist", "node_inx", "state", "kill_requid", "exit_code",
	"nodes_alloc", "task_cnt", "task_dist", "user_sec", "user_usec",
	"sys_sec", "sys_usec",
	"max_vsize", "max_vsize_task", "max_vsize_node", "ave_vsize",
	"max_rss", "max_rss_task", "max_rss_node", "ave_rss",
	"max_pages", "max_pages_task", "max_pages_node", "ave_pages",
	"min_cpu", "min_cpu_task", "min_cpu_node", "ave_cpu",
	"act_cpufreq", "consumed_energy",
	"req_cpufreq_min", "req_cpufreq_max", "req_cpufreq_gov",
	"max_disk_read", "max_disk_read_task", "max_disk_read_node", "ave_disk_read",
	"max_disk_write", "max_disk_write_task", "max_disk_write_node", "ave_disk_write",
	"tres_alloc",
}

func (s *Step) Values() []string {
	return []string{
		s.DBInx, s.StepID, s.TimeStart, s.TimeEnd, s.TimeSuspended,
		s.Name, s.NodeList, s.NodeInx, s.State, s.KillRequid, s.ExitCode,
		s.NodesAlloc, s.Tasks, s.TaskDist, s.UserSec, s.UserUsec,
		s.SysSec, s.SysUsec,
		s.MaxVSize, s.MaxVSizeTask, s.MaxVSizeNode, s.AveVSize,
		s.MaxRSS, s.MaxRSSTask, s.MaxRSSNode, s.AveRSS,
		s.MaxPages, s.MaxPagesTask, s.MaxPagesNode, s.AvePages,
		s.MinCPU, s.MinCPUTask, s.MinCPUNode, s.AveCPU,
		s.ActCPUFreq, s.ConsumedEnergy,
		s.ReqCPUFreqMin, s.ReqCPUFreqMax, s.ReqCPUFreqGov,
		s.MaxDiskRead, s.MaxDiskReadTask, s.MaxDiskReadNode, s.AveDiskRead,
		s.MaxDiskWrite, s.MaxDiskWriteTask, s.MaxDiskWriteNode, s.AveDiskWrite,
		s.TRESAlloc,
	}
}

func StepFromValues(v []string) Step {
	return Step{
		DBInx: v[0], StepID: v[1], TimeStart: v[2], TimeEnd: v[3], TimeSuspended: v[4],
		Name: v[5], NodeList: v[6], NodeInx: v[7], State: v[8], KillRequid: v[9], ExitCode: v[10],
		NodesAlloc: v[11], Tasks: v[12], TaskDist: v[13], UserSec: v[14], UserUsec: v[15],
		SysSec: v[16], SysUsec: v[17],
		MaxVSize: v[18], MaxVSizeTask: v[19], MaxVSizeNode: v[20], AveVSize: v[21],
		MaxRSS: v[22], MaxRSSTask: v[23], MaxRSSNode: v[24], AveRSS: v[25],
		MaxPages: v[26], MaxPagesTask: v[27], MaxPagesNode: v[28], AvePages: v[29],
		MinCPU: v[30], MinCPUTask: v[31], MinCPUNode: v[32], AveCPU: v[33],
		ActCPUFreq: v[34], ConsumedEnergy: v[35],
		ReqCPUFreqMin: v[36], ReqCPUFreqMax: v[37], ReqCPUFreqGov: v[38],
		MaxDiskRead: v[39], MaxDiskReadTask: v[40], MaxDiskReadNode: v[41], AveDiskRead: v[42],
		MaxDiskWrite: v[43], MaxDiskWriteTask: v[44], MaxDiskWriteNode: v[45], AveDiskWrite: v[46],
		TRESAlloc: v[47],
	}
}
