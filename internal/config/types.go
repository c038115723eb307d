package config

import "fmt"

// ServiceSpec is the deployment service file. Only the fields the builder
// needs are typed; the custom block stays a raw tree because user
// configuration is sparse and free-form.
type ServiceSpec struct {
	Service   string                 `yaml:"service"`
	Provider  ProviderSpec           `yaml:"provider"`
	Custom    map[string]interface{} `yaml:"custom"`
	Resources map[string]interface{} `yaml:"resources"`
}

type ProviderSpec struct {
	Stage  string `yaml:"stage"`
	Region string `yaml:"region"`
}

// APIName follows the API Gateway naming convention.
func (s *ServiceSpec) APIName() string {
	return fmt.Sprintf("%s-%s", s.Stage(), s.Service)
}

// StackName follows the CloudFormation stack naming convention.
func (s *ServiceSpec) StackName() string {
	return fmt.Sprintf("%s-%s", s.Service, s.Stage())
}

func (s *ServiceSpec) Stage() string {
	if s.Provider.Stage == "" {
		return "dev"
	}
	return s.Provider.Stage
}
