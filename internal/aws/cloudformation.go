package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// GetStackOutputs returns the output key/value pairs of a deployed stack.
func (c *Client) GetStackOutputs(ctx context.Context, stackName string) (map[string]string, error) {
	describeInput := &cloudformation.DescribeStacksInput{
		StackName: &stackName,
	}

	result, err := c.CloudFormation.DescribeStacks(ctx, describeInput)
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", stackName, err)
	}

	if len(result.Stacks) == 0 {
		return nil, fmt.Errorf("stack %s not found", stackName)
	}

	outputs := make(map[string]string)
	for _, output := range result.Stacks[0].Outputs {
		if output.OutputKey != nil && output.OutputValue != nil {
			outputs[*output.OutputKey] = *output.OutputValue
		}
	}

	return outputs, nil
}
