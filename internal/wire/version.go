package wire

// Version is the 16-bit protocol-version tag carried as the first field
// of every archive header (SPEC_FULL.md §4.1).
type Version uint16

const (
	// VersionPreLegacy is older than anything this codec can decode. It
	// only exists so the header parser can distinguish "too old" from
	// "corrupt" — every per-kind decoder rejects it with
	// *UnsupportedVersionError.
	VersionPreLegacy Version = 1

	// VersionLegacyDBD is the oldest version this codec actually
	// decodes records at. Jobs at this version omit req_mem entirely;
	// events/reservations carry a bare cpu_count instead of a TRES
	// string; steps carry a short field list with no cpufreq fields.
	VersionLegacyDBD Version = 2

	// VersionTRES introduces the generic TRES field for events,
	// reservations and jobs (req_mem now present), and adds the
	// cpufreq min/max/gov fields to steps. Jobs still pack partition
	// out of order relative to the current layout.
	VersionTRES Version = 3

	// VersionSyncedJob corrects the job field order bug: partition
	// moves back next to the other per-job fields instead of sitting
	// between resvid and start.
	VersionSyncedJob Version = 4

	// VersionCurrent is the only version the packer ever emits.
	VersionCurrent = VersionSyncedJob
)

// Supported reports whether v is within the range this codec understands
// at all (even if a given kind rejects it as too old to decode).
func Supported(v Version) bool {
	return v >= VersionPreLegacy && v <= VersionCurrent
}
