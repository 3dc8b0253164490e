package minc

import "minctasks/pkg/task"

// ToRaw describes minctoraw, which dumps a MINC volume as raw binary
// data on standard output. The artifact is the redirected stdout; with
// no explicit path it lands next to the input as foo.raw.
func ToRaw() *task.Spec {
	return &task.Spec{
		Task:   "toraw",
		Binary: "minctoraw",
		Params: []task.Param{
			{Name: "input_file", Kind: task.File, Help: "input file", Mandatory: true, Position: -2},
			{Name: "write_byte", Flag: "-byte", Kind: task.Bool, Help: "write out data as bytes"},
			{Name: "write_short", Flag: "-short", Kind: task.Bool, Help: "write out data as short integers"},
			{Name: "write_int", Flag: "-int", Kind: task.Bool, Help: "write out data as 32-bit integers"},
			// -long is superseded by -int upstream but still accepted
			{Name: "write_long", Flag: "-long", Kind: task.Bool, Help: "superseded by -int"},
			{Name: "write_float", Flag: "-float", Kind: task.Bool, Help: "write out data as single precision floats"},
			{Name: "write_double", Flag: "-double", Kind: task.Bool, Help: "write out data as double precision floats"},
			{Name: "write_signed", Flag: "-signed", Kind: task.Bool, Help: "write out signed data"},
			{Name: "write_unsigned", Flag: "-unsigned", Kind: task.Bool, Help: "write out unsigned data"},
			{Name: "write_range", Flag: "-range", Kind: task.FloatPair, Help: "range of output values"},
			{Name: "normalize", Flag: "-normalize", Kind: task.Bool, Help: "normalize integer pixel values to file max and min",
				Xor: "normalize", XorRequired: true},
			{Name: "nonormalize", Flag: "-nonormalize", Kind: task.Bool, Help: "turn off pixel normalization",
				Xor: "normalize", XorRequired: true},
			// not passed to the tool; overrides where the redirected
			// stdout lands
			{Name: "output_file", Kind: task.File, Help: "output file"},
		},
		Output: task.OutputRule{
			Mode:   task.OutputStdout,
			Suffix: ".raw",
			Param:  "output_file",
			Input:  "input_file",
		},
	}
}
