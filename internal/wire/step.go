package wire

import "github.com/clusterwm/acctarchive/internal/acct"

// PackStep appends s in the current wire layout.
func PackStep(buf *Buffer, s *acct.Step) {
	buf.PackStrings(s.Values())
}

// UnpackStep reads one Step encoded at version v. Versions below
// VersionTRES never packed the requested-cpu-frequency fields at all;
// they come back empty rather than synthesized, since there is no
// equivalent legacy value to derive them from.
func UnpackStep(buf *Buffer, v Version) (acct.Step, error) {
	if v < VersionLegacyDBD {
		return acct.Step{}, &UnsupportedVersionError{Kind: "step", Version: v, Reason: "too old to decode"}
	}
	if v < VersionTRES {
		return unpackStepLegacyDBD(buf)
	}
	fields, err := buf.UnpackStrings("step", len(acct.StepColumns))
	if err != nil {
		return acct.Step{}, err
	}
	return acct.StepFromValues(fields), nil
}

func unpackStepLegacyDBD(buf *Buffer) (acct.Step, error) {
	f, err := buf.UnpackStrings("step", 45)
	if err != nil {
		return acct.Step{}, err
	}
	s := acct.Step{
		DBInx: f[0], StepID: f[1], TimeStart: f[2], TimeEnd: f[3], TimeSuspended: f[4],
		Name: f[5], NodeList: f[6], NodeInx: f[7], State: f[8], KillRequid: f[9], ExitCode: f[10],
		NodesAlloc: f[11], Tasks: f[12], TaskDist: f[13], UserSec: f[14], UserUsec: f[15],
		SysSec: f[16], SysUsec: f[17],
		MaxVSize: f[18], MaxVSizeTask: f[19], MaxVSizeNode: f[20], AveVSize: f[21],
		MaxRSS: f[22], MaxRSSTask: f[23], MaxRSSNode: f[24], AveRSS: f[25],
		MaxPages: f[26], MaxPagesTask: f[27], MaxPagesNode: f[28], AvePages: f[29],
		MinCPU: f[30], MinCPUTask: f[31], MinCPUNode: f[32], AveCPU: f[33],
		ActCPUFreq: f[34], ConsumedEnergy: f[35],
		// req_cpufreq_min/max/gov did not exist yet; left zero-valued.
		MaxDiskRead: f[36], MaxDiskReadTask: f[37], MaxDiskReadNode: f[38], AveDiskRead: f[39],
		MaxDiskWrite: f[40], MaxDiskWriteTask: f[41], MaxDiskWriteNode: f[42], AveDiskWrite: f[43],
		TRESAlloc: f[44],
	}
	return s, nil
}
