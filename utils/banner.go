package utils

import "github.com/common-nighthawk/go-figure"

func DrawBanner() {
	figure.NewFigure("aws manager", "", true).Print()
}
