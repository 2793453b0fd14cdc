package utils

import (
	"fmt"

	"github.com/elC0mpa/aws-manager/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const timestampLayout = "2006-01-02 15:04"

// Lifecycle states shown when reporting active resources; terminated and
// shutting-down instances are left out at this layer, not in the reader.
var reportableInstanceStates = map[string]bool{
	"pending":  true,
	"running":  true,
	"stopping": true,
	"stopped":  true,
}

// DrawInventory renders one table per resource kind, a warning line per kind
// that could not be listed, and a notice when nothing is allocated at all.
func DrawInventory(accountID string, report *model.InventoryReport, highlight string) {
	PrintHeader("Active Resources", highlight)
	if accountID != "" {
		fmt.Printf("Account ID: %s\n", text.FgBlue.Sprint(accountID))
	}

	drew := drawEc2Table(report.Instances, highlight)
	drew = drawS3Table(report.Buckets, highlight) || drew
	drew = drawRdsTable(report.Databases, highlight) || drew
	drew = drawLambdaTable(report.Functions, highlight) || drew

	for _, failure := range report.Failures {
		PrintWarn(fmt.Sprintf("%s: %v", failure.Kind, failure.Err))
	}

	if !drew {
		PrintInfo("No resource is allocated")
	}
}

func drawEc2Table(instances []model.Ec2Instance, highlight string) bool {
	var rows []table.Row
	for _, instance := range instances {
		if !reportableInstanceStates[instance.State] {
			continue
		}
		launched := ""
		if instance.LaunchTime != nil {
			launched = instance.LaunchTime.Format(timestampLayout)
		}
		rows = append(rows, table.Row{
			instance.ID, instance.Name, instance.Type, instance.State, instance.AvailabilityZone, launched,
		})
	}
	if len(rows) == 0 {
		return false
	}

	drawTable("EC2 Instances", table.Row{"InstanceId", "Name", "Type", "State", "AZ", "LaunchTime"}, rows, highlight)
	return true
}

func drawS3Table(buckets []model.S3Bucket, highlight string) bool {
	var rows []table.Row
	for _, bucket := range buckets {
		created := ""
		if bucket.CreationDate != nil {
			created = bucket.CreationDate.Format(timestampLayout)
		}
		rows = append(rows, table.Row{bucket.Name, bucket.Region, created})
	}
	if len(rows) == 0 {
		return false
	}

	drawTable("S3 Buckets", table.Row{"Name", "Region", "Created"}, rows, highlight)
	return true
}

func drawRdsTable(databases []model.RdsInstance, highlight string) bool {
	var rows []table.Row
	for _, db := range databases {
		rows = append(rows, table.Row{db.Identifier, db.Engine, db.Class, db.Status, db.MultiAZ})
	}
	if len(rows) == 0 {
		return false
	}

	drawTable("RDS Instances", table.Row{"Identifier", "Engine", "Class", "Status", "MultiAZ"}, rows, highlight)
	return true
}

func drawLambdaTable(functions []model.LambdaFunction, highlight string) bool {
	var rows []table.Row
	for _, fn := range functions {
		rows = append(rows, table.Row{fn.Name, fn.Runtime, fn.LastModified})
	}
	if len(rows) == 0 {
		return false
	}

	drawTable("Lambda Functions", table.Row{"Name", "Runtime", "LastModified"}, rows, highlight)
	return true
}

func drawTable(title string, header table.Row, rows []table.Row, highlight string) {
	tw := table.Table{}
	tw.SetTitle("%s", HighlightColor(highlight).Sprint(title))
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	tw.SetStyle(table.StyleRounded)
	fmt.Println(tw.Render())
}
