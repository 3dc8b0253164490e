package minc

import "minctasks/pkg/task"

// Convert describes mincconvert, which rewrites a volume between MINC 1
// and MINC 2 container formats. The output path is a mandatory trailing
// positional; the tool never derives one.
func Convert() *task.Spec {
	min0, max9 := task.Bounded(0, 9)
	minChunk, _ := task.Bounded(0, -1)
	return &task.Spec{
		Task:   "convert",
		Binary: "mincconvert",
		Params: []task.Param{
			{Name: "input_file", Kind: task.File, Help: "input file for converting", Mandatory: true, Position: -2},
			{Name: "output_file", Kind: task.File, Help: "output file", Mandatory: true, Position: -1},
			{Name: "clobber", Flag: "-clobber", Kind: task.Bool, Help: "overwrite existing file"},
			{Name: "two", Flag: "-2", Kind: task.Bool, Help: "create a MINC 2 output file"},
			{Name: "template", Flag: "-template", Kind: task.Bool, Help: "create a template file"},
			{Name: "compression", Flag: "-compress", Kind: task.Int, Help: "compression level, 0 (disabled) to 9 (maximum)",
				Min: min0, Max: max9},
			{Name: "chunk", Flag: "-chunk", Kind: task.Int, Help: "target block size for chunking", Min: minChunk},
		},
		Output: task.OutputRule{
			Mode:  task.OutputExplicit,
			Param: "output_file",
			Input: "input_file",
		},
	}
}
