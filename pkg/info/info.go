// Package info reports the installed MINC toolset versions by running
// mincinfo -version and scanning its output. An absent toolchain is an
// expected condition here, never an error: callers get ok=false and a
// zero Version.
package info

import (
	"context"
	"strings"

	"minctasks/pkg/executor"
)

// VersionBinary is the tool queried for the toolset version report.
const VersionBinary = "mincinfo"

// Version holds the four independently reported component versions.
// Fields a given install does not report stay empty.
type Version struct {
	Program string // the mincinfo program itself
	LibMinc string // the libminc library
	NetCDF  string // the NetCDF data-format library
	HDF5    string // the HDF5 storage library
}

// Empty reports whether no component version was found.
func (v Version) Empty() bool {
	return v == Version{}
}

// Lookup runs the version query. ok is false when the binary is missing
// or the query fails; that maps to "no version available" rather than an
// error because probing for an uninstalled toolset is a normal thing to
// do.
func Lookup(ctx context.Context, x *executor.Executor) (v Version, ok bool) {
	return LookupBinary(ctx, x, VersionBinary)
}

// LookupBinary is Lookup against an alternative version-reporting
// binary.
func LookupBinary(ctx context.Context, x *executor.Executor, binary string) (Version, bool) {
	res, err := x.Run(ctx, []string{binary, "-version"})
	if err != nil {
		return Version{}, false
	}
	return ParseVersion(res.Stdout), true
}

// ParseVersion scans the multi-line -version output. Each line is split
// on the first colon; a line whose label contains one of the known
// case-sensitive markers contributes its trimmed value, anything else is
// ignored. Typical input:
//
//	program: 2.2.00
//	libminc: 2.2.00
//	netcdf : 4.1.3
//	HDF5   : 1.8.8
func ParseVersion(out string) Version {
	var v Version
	for _, line := range strings.Split(out, "\n") {
		label, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value := strings.TrimSpace(rest)
		switch {
		case strings.Contains(label, "program"):
			v.Program = value
		case strings.Contains(label, "libminc"):
			v.LibMinc = value
		case strings.Contains(label, "netcdf"):
			v.NetCDF = value
		case strings.Contains(label, "HDF5"):
			v.HDF5 = value
		}
	}
	return v
}
