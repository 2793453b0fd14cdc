package model

import "time"

// AccountInfo represents the identity of the authenticated AWS account
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}

// Ec2Instance represents one EC2 instance flattened out of its reservation
type Ec2Instance struct {
	ID               string
	Name             string
	Type             string
	State            string
	AvailabilityZone string
	LaunchTime       *time.Time
}

// S3Bucket represents one S3 bucket with its resolved region
type S3Bucket struct {
	Name         string
	Region       string
	CreationDate *time.Time
}

// RdsInstance represents one RDS database instance
type RdsInstance struct {
	Identifier string
	Class      string
	Engine     string
	Status     string
	MultiAZ    bool
}

// LambdaFunction represents one Lambda function
type LambdaFunction struct {
	Name         string
	Runtime      string
	LastModified string
}

// KindFailure records a resource kind whose listing failed
type KindFailure struct {
	Kind string
	Err  error
}

// InventoryReport aggregates every resource kind the account was queried for.
// A kind that could not be listed shows up in Failures instead of aborting
// the whole report.
type InventoryReport struct {
	Instances []Ec2Instance
	Buckets   []S3Bucket
	Databases []RdsInstance
	Functions []LambdaFunction
	Failures  []KindFailure
}

// Empty reports whether no resource of any kind was found
func (r *InventoryReport) Empty() bool {
	return len(r.Instances) == 0 && len(r.Buckets) == 0 &&
		len(r.Databases) == 0 && len(r.Functions) == 0
}
