package commands

import (
	"context"

	"autogensummary/internal/application"
)

// UnsupportedRenderer is the only renderer name the generator refuses.
// Hosts use it to exercise their compatibility check.
const UnsupportedRenderer = "not-supported"

// SupportsRendererCommand reports whether a host renderer is supported
type SupportsRendererCommand struct {
	Renderer string
}

// NewSupportsRendererCommand creates a new SupportsRendererCommand
func NewSupportsRendererCommand(renderer string) *SupportsRendererCommand {
	return &SupportsRendererCommand{Renderer: renderer}
}

// Validate checks if the supports operation is valid
func (c *SupportsRendererCommand) Validate() error {
	return application.ValidateRequired("renderer", c.Renderer)
}

// Execute runs the supports command
func (c *SupportsRendererCommand) Execute(ctx context.Context) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	return c.Renderer != UnsupportedRenderer, nil
}
