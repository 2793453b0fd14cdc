package awscloudformation

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// CloudFormation reports both "stack does not exist" and "nothing to update"
// as ValidationError with prose messages; no distinct structured code exists
// for either condition. When a structured code is present it is checked
// first, and only then the known message substrings. Tests pin both
// substrings so an SDK message change shows up as a test failure.

const (
	missingStackMessage = "does not exist"
	noUpdatesMessage    = "No updates are to be performed"
)

func isStackMissing(err error) bool {
	return matchesValidationMessage(err, missingStackMessage)
}

func isNoUpdates(err error) bool {
	return matchesValidationMessage(err, noUpdatesMessage)
}

func matchesValidationMessage(err error, substring string) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() != "ValidationError" {
		return false
	}
	return strings.Contains(err.Error(), substring)
}
