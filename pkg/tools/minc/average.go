package minc

import "minctasks/pkg/task"

// Average describes mincaverage, which averages any number of input
// volumes into one. Inputs occupy the -2 positional slot as a list, the
// mandatory output path stays last.
func Average() *task.Spec {
	min0, _ := task.Bounded(0, -1)
	return &task.Spec{
		Task:   "average",
		Binary: "mincaverage",
		Params: []task.Param{
			{Name: "input_files", Kind: task.FileList, Help: "input files to average", Mandatory: true, Position: -2},
			{Name: "output_file", Kind: task.File, Help: "output file", Mandatory: true, Position: -1},
			{Name: "two", Flag: "-2", Kind: task.Bool, Help: "create a MINC 2 output file"},
			{Name: "clobber", Flag: "-clobber", Kind: task.Bool, Help: "overwrite existing file", Xor: "clobber"},
			{Name: "no_clobber", Flag: "-noclobber", Kind: task.Bool, Help: "don't overwrite existing file", Xor: "clobber"},
			{Name: "verbose", Flag: "-verbose", Kind: task.Bool, Help: "print out log messages", Xor: "verbosity"},
			{Name: "quiet", Flag: "-quiet", Kind: task.Bool, Help: "do not print out log messages", Xor: "verbosity"},
			{Name: "debug", Flag: "-debug", Kind: task.Bool, Help: "print out debugging messages"},
			{Name: "filelist", Flag: "-filelist", Kind: task.File, Help: "file with list of input file names"},
			{Name: "check_dimensions", Flag: "-check_dimensions", Kind: task.Bool,
				Help: "check that dimension info matches across files", Xor: "check_dimensions"},
			{Name: "no_check_dimensions", Flag: "-nocheck_dimensions", Kind: task.Bool,
				Help: "do not check dimension info", Xor: "check_dimensions"},
			// output volume format: at most one of these
			{Name: "filetype", Flag: "-filetype", Kind: task.Bool, Help: "use data type of first file", Xor: "format"},
			{Name: "format_byte", Flag: "-byte", Kind: task.Bool, Help: "write out byte data", Xor: "format"},
			{Name: "format_short", Flag: "-short", Kind: task.Bool, Help: "write out short integer data", Xor: "format"},
			{Name: "format_int", Flag: "-int", Kind: task.Bool, Help: "write out 32-bit integer data", Xor: "format"},
			{Name: "format_long", Flag: "-long", Kind: task.Bool, Help: "superseded by -int", Xor: "format"},
			{Name: "format_float", Flag: "-float", Kind: task.Bool, Help: "write out single precision floats", Xor: "format"},
			{Name: "format_double", Flag: "-double", Kind: task.Bool, Help: "write out double precision floats", Xor: "format"},
			{Name: "format_signed", Flag: "-signed", Kind: task.Bool, Help: "write signed integer data", Xor: "format"},
			{Name: "format_unsigned", Flag: "-unsigned", Kind: task.Bool, Help: "write unsigned integer data", Xor: "format"},
			{Name: "max_buffer_size_in_kb", Flag: "-max_buffer_size_in_kb", Kind: task.Int, Min: min0,
				Help: "maximum size of internal buffers in kbytes"},
			// the upstream default; kept as a per-field default rather
			// than a required group since the tool accepts neither flag
			{Name: "normalize", Flag: "-normalize", Kind: task.Bool,
				Help: "normalize data sets for mean intensity", Xor: "normalize"},
			{Name: "nonormalize", Flag: "-nonormalize", Kind: task.Bool,
				Help: "do not normalize data sets (default)", Xor: "normalize", Default: true},
			{Name: "voxel_range", Flag: "-range", Kind: task.IntPair,
				Help: "valid range for output data"},
			{Name: "sdfile", Flag: "-sdfile", Kind: task.File,
				Help: "specify an output sd file"},
			{Name: "copy_header", Flag: "-copy_header", Kind: task.Bool,
				Help: "copy all of the header from the first file", Xor: "copy_header"},
			{Name: "no_copy_header", Flag: "-nocopy_header", Kind: task.Bool,
				Help: "do not copy the whole header", Xor: "copy_header"},
			{Name: "avgdim", Flag: "-avgdim", Kind: task.String,
				Help: "specify a dimension along which we wish to average"},
			{Name: "binarize", Flag: "-binarize", Kind: task.Bool,
				Help: "binarize the volume by looking for values in a given range"},
			{Name: "binrange", Flag: "-binrange", Kind: task.FloatPair,
				Help: "specify a range for binarization"},
			{Name: "binvalue", Flag: "-binvalue", Kind: task.Float,
				Help: "specify a target value (+/- 0.5) for binarization"},
			{Name: "weights", Flag: "-weights", Kind: task.StringList, Sep: ",",
				Help: "specify weights for averaging"},
			{Name: "width_weighted", Flag: "-width_weighted", Kind: task.Bool,
				Help: "weight by dimension widths when -avgdim is used", Requires: []string{"avgdim"}},
		},
		Output: task.OutputRule{
			Mode:  task.OutputExplicit,
			Param: "output_file",
			Input: "input_files",
		},
	}
}
