package wire

import "testing"

// packJobTRESFields writes the VersionTRES wire layout by hand: the bug
// places partition between resvid and start instead of next to node_inx.
func packJobTRESFields(buf *Buffer) {
	fields := []string{
		"acct", "2", "17", "0", "0", "4294967294", "", "0:0", "", "0:0",
		"60", "100", "500", "1000", "42",
		"9001", "0", "sim", "node[1-2]", "0-1",
		"100", "normal", "4", "8192", "0",
		"gpu", "110",
		"3", "90", "0", "1",
		"1=4,2=8192", "1=4,2=8192", "2000", "", "0",
	}
	buf.PackStrings(fields)
}

func TestUnpackJob_VersionTRES_PartitionBugPreserved(t *testing.T) {
	buf := NewBuffer(256)
	packJobTRESFields(buf)

	job, err := UnpackJob(buf, VersionTRES)
	if err != nil {
		t.Fatalf("UnpackJob failed: %v", err)
	}
	if job.Partition != "gpu" {
		t.Errorf("Partition = %q, want %q", job.Partition, "gpu")
	}
	if job.ResvID != "0" {
		t.Errorf("ResvID = %q, want %q", job.ResvID, "0")
	}
	if job.TimeStart != "110" {
		t.Errorf("TimeStart = %q, want %q", job.TimeStart, "110")
	}
	if job.ReqMem != "8192" {
		t.Errorf("ReqMem = %q, want %q", job.ReqMem, "8192")
	}
}

func TestUnpackJob_VersionLegacyDBD_SynthesizesTRESAndDropsReqMem(t *testing.T) {
	buf := NewBuffer(256)
	fields := []string{
		"acct", "2", "17", "0", "0", "4294967294", "", "0:0", "", "0:0",
		"60", "100", "500", "1000", "42",
		"9001", "0", "sim", "node[1-2]", "0-1",
		"100", "normal", "4", "0",
		"gpu", "110",
		"3", "90", "0", "1",
		"4", "2000", "", "0",
	}
	buf.PackStrings(fields)

	job, err := UnpackJob(buf, VersionLegacyDBD)
	if err != nil {
		t.Fatalf("UnpackJob failed: %v", err)
	}
	if job.ReqMem != "" {
		t.Errorf("ReqMem = %q, want empty", job.ReqMem)
	}
	if job.TRESAlloc != "1=4" {
		t.Errorf("TRESAlloc = %q, want %q", job.TRESAlloc, "1=4")
	}
	if job.TRESReq != job.TRESAlloc {
		t.Errorf("TRESReq = %q, want equal to TRESAlloc %q", job.TRESReq, job.TRESAlloc)
	}
	if job.Partition != "gpu" {
		t.Errorf("Partition = %q, want %q", job.Partition, "gpu")
	}
}

func TestUnpackJob_PreLegacyRejected(t *testing.T) {
	buf := NewBuffer(16)
	_, err := UnpackJob(buf, VersionPreLegacy)
	if err == nil {
		t.Fatal("expected error unpacking pre-legacy job, got nil")
	}
}

func TestUnpackJob_CurrentVersionRoundTrips(t *testing.T) {
	buf := NewBuffer(256)
	fields := []string{
		"acct", "2", "17", "0", "0", "4294967294", "", "0:0", "", "0:0",
		"60", "100", "500", "1000", "42",
		"9001", "0", "sim", "node[1-2]", "0-1", "gpu",
		"100", "normal", "4", "8192", "0", "110",
		"3", "90", "0", "1",
		"1=4,2=8192", "1=4,2=8192", "2000", "", "0",
	}
	buf.PackStrings(fields)

	job, err := UnpackJob(buf, VersionCurrent)
	if err != nil {
		t.Fatalf("UnpackJob failed: %v", err)
	}
	if job.Partition != "gpu" {
		t.Errorf("Partition = %q, want %q", job.Partition, "gpu")
	}
	if job.NodeInx != "0-1" {
		t.Errorf("NodeInx = %q, want %q", job.NodeInx, "0-1")
	}
}
