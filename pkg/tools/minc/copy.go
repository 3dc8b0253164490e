package minc

import "minctasks/pkg/task"

// Copy describes minccopy, which copies image values from one MINC file
// into another existing one. The upstream man page warns it is meant for
// scripts like mincedit rather than general use; the wrapper exposes it
// anyway for compatibility.
func Copy() *task.Spec {
	return &task.Spec{
		Task:   "copy",
		Binary: "minccopy",
		Params: []task.Param{
			{Name: "input_file", Kind: task.File, Help: "input file to copy", Mandatory: true, Position: -2},
			{Name: "output_file", Kind: task.File, Help: "output file", Mandatory: true, Position: -1},
			{Name: "pixel_values", Flag: "-pixel_values", Kind: task.Bool, Help: "copy pixel values as is", Xor: "values"},
			// real_values is the tool's documented default; keep emitting
			// it explicitly unless pixel_values was chosen
			{Name: "real_values", Flag: "-real_values", Kind: task.Bool, Help: "copy real pixel intensities (default)",
				Xor: "values", Default: true},
		},
		Output: task.OutputRule{
			Mode:  task.OutputExplicit,
			Param: "output_file",
			Input: "input_file",
		},
	}
}
