package commands

import (
	"cudactl/internal/alternatives"
	"cudactl/internal/config"
	"cudactl/internal/switcher"
)

// loadManager builds the switch manager over the loaded toolkit table and
// the real alternatives registry.
func loadManager() (*switcher.Manager, error) {
	table, err := config.Load()
	if err != nil {
		return nil, err
	}
	return switcher.New(table, alternatives.NewExec()), nil
}
