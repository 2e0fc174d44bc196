package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/muesli/coral"
	_ "golang.org/x/image/bmp"

	"github.com/muesli/leddy/software"
)

var (
	imageCmd = &coral.Command{
		Use:   "image <file>",
		Short: "shows an image, scaled down to the key grid",
		Args:  coral.ExactArgs(1),
		RunE: func(cmd *coral.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}

			kbd, err := openKeyboard()
			if err != nil {
				return err
			}
			defer kbd.Close()

			return software.ShowImage(kbd, img)
		},
	}
)

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return img, nil
}

func init() {
	RootCmd.AddCommand(imageCmd)
}
