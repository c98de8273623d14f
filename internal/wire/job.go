package wire

import "github.com/clusterwm/acctarchive/internal/acct"

// PackJob appends j in the current wire layout (acct.JobColumns order,
// partition in its natural position next to node_inx).
func PackJob(buf *Buffer, j *acct.Job) {
	buf.PackStrings(j.Values())
}

// UnpackJob reads one Job encoded at version v.
//
// Versions below VersionSyncedJob pack partition between resvid and
// start instead of next to node_inx — a historical bug this decoder
// reproduces on read rather than silently fixing, since archives written
// with the bug are still on disk and must round-trip (SPEC_FULL.md
// §4.1). Versions below VersionTRES additionally drop req_mem outright
// and pack a single bare cpu count instead of separate tres_alloc/
// tres_req fields.
func UnpackJob(buf *Buffer, v Version) (acct.Job, error) {
	switch {
	case v < VersionLegacyDBD:
		return acct.Job{}, &UnsupportedVersionError{Kind: "job", Version: v, Reason: "too old to decode"}
	case v < VersionTRES:
		return unpackJobLegacyDBD(buf)
	case v < VersionSyncedJob:
		return unpackJobTRES(buf)
	default:
		fields, err := buf.UnpackStrings("job", len(acct.JobColumns))
		if err != nil {
			return acct.Job{}, err
		}
		return acct.JobFromValues(fields), nil
	}
}

// unpackJobTRES reads the VersionTRES layout: full field set, req_mem
// present, tres_alloc/tres_req present, but partition misplaced between
// resvid and start.
func unpackJobTRES(buf *Buffer) (acct.Job, error) {
	f, err := buf.UnpackStrings("job", 36)
	if err != nil {
		return acct.Job{}, err
	}
	j := acct.Job{
		Account: f[0], AllocNodes: f[1], AssocID: f[2], ArrayJobID: f[3], ArrayMaxTasks: f[4],
		ArrayTaskID: f[5], BlockID: f[6], DerivedEC: f[7], DerivedES: f[8], ExitCode: f[9],
		TimeLimit: f[10], TimeEligible: f[11], TimeEnd: f[12], GID: f[13], DBInx: f[14],
		JobID: f[15], KillRequid: f[16], Name: f[17], NodeList: f[18], NodeInx: f[19],
		Priority: f[20], QOS: f[21], ReqCPUs: f[22], ReqMem: f[23], ResvID: f[24],
		Partition: f[25], TimeStart: f[26],
		State: f[27], TimeSubmit: f[28], TimeSuspended: f[29], TrackSteps: f[30],
		TRESAlloc: f[31], TRESReq: f[32], UID: f[33], Wckey: f[34], WckeyID: f[35],
	}
	return j, nil
}

// unpackJobLegacyDBD reads the VersionLegacyDBD layout: req_mem absent,
// tres_alloc/tres_req collapsed into one bare cpu count, partition still
// misplaced between resvid and start.
func unpackJobLegacyDBD(buf *Buffer) (acct.Job, error) {
	f, err := buf.UnpackStrings("job", 34)
	if err != nil {
		return acct.Job{}, err
	}
	tres := synthesizeCPUTRES(f[30])
	j := acct.Job{
		Account: f[0], AllocNodes: f[1], AssocID: f[2], ArrayJobID: f[3], ArrayMaxTasks: f[4],
		ArrayTaskID: f[5], BlockID: f[6], DerivedEC: f[7], DerivedES: f[8], ExitCode: f[9],
		TimeLimit: f[10], TimeEligible: f[11], TimeEnd: f[12], GID: f[13], DBInx: f[14],
		JobID: f[15], KillRequid: f[16], Name: f[17], NodeList: f[18], NodeInx: f[19],
		Priority: f[20], QOS: f[21], ReqCPUs: f[22], ReqMem: "", ResvID: f[23],
		Partition: f[24], TimeStart: f[25],
		State: f[26], TimeSubmit: f[27], TimeSuspended: f[28], TrackSteps: f[29],
		TRESAlloc: tres, TRESReq: tres, UID: f[31], Wckey: f[32], WckeyID: f[33],
	}
	return j, nil
}
