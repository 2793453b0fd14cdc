package response

import (
	"time"

	"github.com/elC0mpa/aws-manager/model"
)

const timestampLayout = time.RFC3339

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertInventoryReport converts model.InventoryReport to response.InventoryReport
func ConvertInventoryReport(report *model.InventoryReport) *InventoryReport {
	if report == nil {
		return nil
	}

	resp := &InventoryReport{
		Instances: []Ec2Instance{},
		Buckets:   []S3Bucket{},
		Databases: []RdsInstance{},
		Functions: []LambdaFunction{},
	}

	for _, instance := range report.Instances {
		launched := ""
		if instance.LaunchTime != nil {
			launched = instance.LaunchTime.Format(timestampLayout)
		}
		resp.Instances = append(resp.Instances, Ec2Instance{
			ID:               instance.ID,
			Name:             instance.Name,
			Type:             instance.Type,
			State:            instance.State,
			AvailabilityZone: instance.AvailabilityZone,
			LaunchTime:       launched,
		})
	}

	for _, bucket := range report.Buckets {
		created := ""
		if bucket.CreationDate != nil {
			created = bucket.CreationDate.Format(timestampLayout)
		}
		resp.Buckets = append(resp.Buckets, S3Bucket{
			Name:         bucket.Name,
			Region:       bucket.Region,
			CreationDate: created,
		})
	}

	for _, db := range report.Databases {
		resp.Databases = append(resp.Databases, RdsInstance{
			Identifier: db.Identifier,
			Class:      db.Class,
			Engine:     db.Engine,
			Status:     db.Status,
			MultiAZ:    db.MultiAZ,
		})
	}

	for _, fn := range report.Functions {
		resp.Functions = append(resp.Functions, LambdaFunction{
			Name:         fn.Name,
			Runtime:      fn.Runtime,
			LastModified: fn.LastModified,
		})
	}

	for _, failure := range report.Failures {
		resp.Warnings = append(resp.Warnings, KindWarning{
			Kind:    failure.Kind,
			Message: failure.Err.Error(),
		})
	}

	return resp
}

// ConvertUsageRows converts model usage rows to response rows
func ConvertUsageRows(rows []model.UsageRow) []UsageRow {
	resp := make([]UsageRow, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, UsageRow{
			Service: row.Service,
			Amount:  row.Amount,
			Unit:    row.Unit,
		})
	}
	return resp
}
