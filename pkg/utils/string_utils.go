package utils

import "fmt"

// InstanceWithScenarioName returns the scenario-scoped name of an instance.
// The naming convention is `<instance>-<scenario>`.
func InstanceWithScenarioName(instanceName string, scenarioName string) string {
	return fmt.Sprintf("%s-%s", instanceName, scenarioName)
}
