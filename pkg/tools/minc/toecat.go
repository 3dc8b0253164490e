package minc

import "minctasks/pkg/task"

// ToEcat describes minctoecat, which exports a MINC volume to the ECAT7
// format. The output positional is optional; when unset the path is
// derived from the input as foo.v and injected into the command line.
func ToEcat() *task.Spec {
	return &task.Spec{
		Task:   "toecat",
		Binary: "minctoecat",
		Params: []task.Param{
			{Name: "input_file", Kind: task.File, Help: "input file to convert", Mandatory: true, Position: -2},
			{Name: "output_file", Kind: task.File, Help: "output file", Position: -1},
			{Name: "ignore_patient_variable", Flag: "-ignore_patient_variable", Kind: task.Bool,
				Help: "ignore information from the minc patient variable"},
			{Name: "ignore_study_variable", Flag: "-ignore_study_variable", Kind: task.Bool,
				Help: "ignore information from the minc study variable"},
			{Name: "ignore_acquisition_variable", Flag: "-ignore_acquisition_variable", Kind: task.Bool,
				Help: "ignore information from the minc acquisition variable"},
			{Name: "ignore_ecat_acquisition_variable", Flag: "-ignore_ecat_acquisition_variable", Kind: task.Bool,
				Help: "ignore information from the minc ecat_acquisition variable"},
			{Name: "ignore_ecat_main", Flag: "-ignore_ecat_main", Kind: task.Bool,
				Help: "ignore information from the minc ecat-main variable"},
			{Name: "ignore_ecat_subheader_variable", Flag: "-ignore_ecat_subheader_variable", Kind: task.Bool,
				Help: "ignore information from the minc ecat-subhdr variable"},
			{Name: "no_decay_corr_fctr", Flag: "-no_decay_corr_fctr", Kind: task.Bool,
				Help: "do not compute the decay correction factors"},
			{Name: "voxels_as_integers", Flag: "-label", Kind: task.Bool,
				Help: "treat voxel values as integers, set scale and calibration factors to unity"},
		},
		Output: task.OutputRule{
			Mode:   task.OutputGenerated,
			Suffix: ".v",
			Param:  "output_file",
			Input:  "input_file",
		},
	}
}
