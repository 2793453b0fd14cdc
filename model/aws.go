package model

// AWS-specific models

// StackInput describes the desired state of one CloudFormation stack.
// TemplateBody is opaque raw text, passed through unparsed.
type StackInput struct {
	Name         string
	TemplateBody string
	Parameters   map[string]string
	Capabilities []string
}
