package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/elC0mpa/aws-manager/model"
	svc "github.com/elC0mpa/aws-manager/service"
	awscloudformation "github.com/elC0mpa/aws-manager/service/aws/cloudformation"
	"github.com/elC0mpa/aws-manager/utils"
	"github.com/spf13/cobra"
)

var (
	deployStackName    string
	deployTemplateFile string
	deployParams       []string
	deployCapabilities []string
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy infrastructure templates",
}

var deployTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Create or update a CloudFormation stack from a template file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Local validation happens before any provider call
		parameters, err := parseStackParameters(deployParams)
		if err != nil {
			return err
		}

		body, err := os.ReadFile(deployTemplateFile)
		if err != nil {
			return svc.InvalidArgumentf("cannot read template file %q: %v", deployTemplateFile, err)
		}

		awsCfg, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		utils.StartSpinner()
		stackID, err := awscloudformation.NewService(awsCfg).EnsureStack(ctx, model.StackInput{
			Name:         deployStackName,
			TemplateBody: string(body),
			Parameters:   parameters,
			Capabilities: deployCapabilities,
		})
		utils.StopSpinner()
		if err != nil {
			return err
		}

		utils.PrintInfo(fmt.Sprintf("Stack ready: %s", stackID))
		return nil
	},
}

// parseStackParameters turns repeated KEY=VALUE options into a parameter map
func parseStackParameters(params []string) (map[string]string, error) {
	parameters := map[string]string{}
	for _, param := range params {
		key, value, found := strings.Cut(param, "=")
		if !found || key == "" {
			return nil, svc.InvalidArgumentf("invalid --param %q, expected KEY=VALUE", param)
		}
		parameters[key] = value
	}
	return parameters, nil
}

func init() {
	deployTemplateCmd.Flags().StringVar(&deployStackName, "stack-name", "", "CloudFormation stack name")
	deployTemplateCmd.Flags().StringVar(&deployTemplateFile, "template-file", "", "Path to .yaml or .json template")
	deployTemplateCmd.Flags().StringArrayVar(&deployParams, "param", nil, "Template parameter as KEY=VALUE. Repeat for multiple.")
	deployTemplateCmd.Flags().StringArrayVar(&deployCapabilities, "capability", nil, "Capability, e.g., CAPABILITY_IAM, CAPABILITY_NAMED_IAM")
	_ = deployTemplateCmd.MarkFlagRequired("stack-name")
	_ = deployTemplateCmd.MarkFlagRequired("template-file")

	deployCmd.AddCommand(deployTemplateCmd)
	rootCmd.AddCommand(deployCmd)
}
