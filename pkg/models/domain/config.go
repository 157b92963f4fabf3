package domain

import "fmt"

// ConfigProfile names a config file registered in the profile registry.
type ConfigProfile struct {
	Name string
	// Path is the location of the connector config file the profile points to.
	Path string
}

func (c ConfigProfile) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.Path)
}
