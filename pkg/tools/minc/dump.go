package minc

import "minctasks/pkg/task"

// Dump describes mincdump, the textual CDL dump of a MINC file. Output
// is the tool's stdout, redirected to foo.txt next to the input.
func Dump() *task.Spec {
	min0, _ := task.Bounded(0, -1)
	return &task.Spec{
		Task:   "dump",
		Binary: "mincdump",
		Params: []task.Param{
			{Name: "input_file", Kind: task.File, Help: "input file", Mandatory: true, Position: -2},
			{Name: "coordinate_data", Flag: "-c", Kind: task.Bool,
				Help: "coordinate variable data and header information", Xor: "coords_or_header"},
			{Name: "header_data", Flag: "-h", Kind: task.Bool,
				Help: "header information only, no data", Xor: "coords_or_header"},
			// -b and -f both take c (C order) or f (Fortran order) and
			// cannot be combined
			{Name: "annotations_brief", Flag: "-b", Kind: task.Enum,
				Help: "brief annotations for C or Fortran indices in data",
				Choices: []string{"c", "f"}, Xor: "annotations"},
			{Name: "annotations_full", Flag: "-f", Kind: task.Enum,
				Help: "full annotations for C or Fortran indices in data",
				Choices: []string{"c", "f"}, Xor: "annotations"},
			{Name: "variables", Flag: "-v", Kind: task.StringList, Sep: ",",
				Help: "output data for specified variables only"},
			{Name: "line_length", Flag: "-l", Kind: task.Int, Min: min0,
				Help: "line length maximum in data section (default 80)"},
			{Name: "netcdf_name", Flag: "-n", Kind: task.String,
				Help: "name for netCDF (default derived from file name)"},
			{Name: "precision", Flag: "-p", Kind: task.IntOrPair,
				Help: "display floating-point values with less precision"},
			// not passed to the tool; overrides where the redirected
			// stdout lands
			{Name: "output_file", Kind: task.File, Help: "output file"},
		},
		Output: task.OutputRule{
			Mode:   task.OutputStdout,
			Suffix: ".txt",
			Param:  "output_file",
			Input:  "input_file",
		},
	}
}
