package utils

import (
	"time"

	"github.com/briandowns/spinner"
)

var loadingSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func StartSpinner() {
	loadingSpinner.Start()
}

func StopSpinner() {
	loadingSpinner.Stop()
}
