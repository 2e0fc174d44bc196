package main

import (
	"fmt"

	"github.com/muesli/coral"

	"github.com/muesli/leddy"
)

var (
	devicesCmd = &coral.Command{
		Use:   "devices",
		Short: "lists connected keyboards",
		RunE: func(cmd *coral.Command, args []string) error {
			devs, err := leddy.Devices()
			if err != nil {
				return err
			}
			if len(devs) == 0 {
				return leddy.ErrNoDevice
			}

			for _, d := range devs {
				model := leddy.GeometryFor(d.ProductID == leddy.ProductCompact).Name
				fmt.Printf("%s\t%04x:%04x\t%s\t%s\n", d.Path, d.VendorID, d.ProductID, model, d.Serial)
			}
			return nil
		},
	}
)

func init() {
	RootCmd.AddCommand(devicesCmd)
}
