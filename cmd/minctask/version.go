package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"minctasks/pkg/info"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "report the installed MINC toolset versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := info.Lookup(cmd.Context(), a.runner.Exec)

			if a.jsonOut {
				return printJSON(struct {
					Available bool          `json:"available"`
					Version   *info.Version `json:"version,omitempty"`
				}{Available: ok, Version: versionOrNil(v, ok)})
			}
			if !ok {
				fmt.Println("no version available")
				return nil
			}
			fmt.Printf("program: %s\n", v.Program)
			fmt.Printf("libminc: %s\n", v.LibMinc)
			fmt.Printf("netcdf:  %s\n", v.NetCDF)
			fmt.Printf("HDF5:    %s\n", v.HDF5)
			return nil
		},
	}
}

func versionOrNil(v info.Version, ok bool) *info.Version {
	if !ok {
		return nil
	}
	return &v
}
