package response

// AccountInfo represents the authenticated account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// Ec2Instance represents one EC2 instance
type Ec2Instance struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	State            string `json:"state"`
	AvailabilityZone string `json:"availability_zone"`
	LaunchTime       string `json:"launch_time,omitempty"`
}

// S3Bucket represents one S3 bucket
type S3Bucket struct {
	Name         string `json:"name"`
	Region       string `json:"region"`
	CreationDate string `json:"creation_date,omitempty"`
}

// RdsInstance represents one RDS database instance
type RdsInstance struct {
	Identifier string `json:"identifier"`
	Class      string `json:"class"`
	Engine     string `json:"engine"`
	Status     string `json:"status"`
	MultiAZ    bool   `json:"multi_az"`
}

// LambdaFunction represents one Lambda function
type LambdaFunction struct {
	Name         string `json:"name"`
	Runtime      string `json:"runtime"`
	LastModified string `json:"last_modified"`
}

// KindWarning reports a resource kind whose listing failed
type KindWarning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// InventoryReport aggregates every queried resource kind
type InventoryReport struct {
	Instances []Ec2Instance    `json:"ec2_instances"`
	Buckets   []S3Bucket       `json:"s3_buckets"`
	Databases []RdsInstance    `json:"rds_instances"`
	Functions []LambdaFunction `json:"lambda_functions"`
	Warnings  []KindWarning    `json:"warnings,omitempty"`
}

// MonthCost represents the aggregated current-month cost
type MonthCost struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// UsageRow represents usage accumulated by one service
type UsageRow struct {
	Service string  `json:"service"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
}
