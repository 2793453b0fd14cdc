package main

import (
	"github.com/elC0mpa/aws-manager/cmd"
	"github.com/elC0mpa/aws-manager/utils"
)

func main() {
	utils.DrawBanner()
	cmd.Execute()
}
