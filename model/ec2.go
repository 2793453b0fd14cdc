package model

// Ec2AllocationSpec describes an instance launch request. Optional fields
// are pointers or nil slices so an omitted field never reaches the provider
// as an empty value.
type Ec2AllocationSpec struct {
	ImageID          string
	InstanceType     string
	KeyName          *string
	SecurityGroupIDs []string
	SubnetID         *string
	Count            int32
	NameTag          *string
}
