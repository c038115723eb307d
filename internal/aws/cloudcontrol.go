package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudcontrol"
)

const distributionType = "AWS::CloudFront::Distribution"

// Distribution is the live state of a deployed CloudFront distribution.
type Distribution struct {
	ID         string
	DomainName string
	Status     string
}

// GetDistribution fetches a live distribution through the Cloud Control API.
func (c *Client) GetDistribution(ctx context.Context, distributionID string) (*Distribution, error) {
	typeName := distributionType
	input := &cloudcontrol.GetResourceInput{
		TypeName:   &typeName,
		Identifier: &distributionID,
	}

	result, err := c.CloudControl.GetResource(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution %s: %w", distributionID, err)
	}

	var properties map[string]interface{}
	if result.ResourceDescription != nil && result.ResourceDescription.Properties != nil {
		err = json.Unmarshal([]byte(*result.ResourceDescription.Properties), &properties)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal distribution properties: %w", err)
		}
	}

	dist := &Distribution{ID: distributionID}
	if v, ok := properties["DomainName"].(string); ok {
		dist.DomainName = v
	}
	if v, ok := properties["Status"].(string); ok {
		dist.Status = v
	}

	return dist, nil
}
