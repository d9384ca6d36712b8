package gateway

import (
	"context"
	"fmt"
)

// ModelList is the generation models the upstream service offers.
type ModelList struct {
	Models       []string `json:"models"`
	DefaultModel string   `json:"default_model"`
}

type modelsWireResponse struct {
	Success      bool     `json:"success"`
	Models       []string `json:"models"`
	DefaultModel string   `json:"default_model"`
	Error        string   `json:"error,omitempty"`
}

// ListModels fetches the available models. There is no synthesis here;
// callers fall back to the configured default model on error.
func (c *Client) ListModels(ctx context.Context) (*ModelList, error) {
	var resp modelsWireResponse
	if err := c.get(ctx, EndpointModels, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("generator model listing failed: %s", resp.Error)
	}
	return &ModelList{Models: resp.Models, DefaultModel: resp.DefaultModel}, nil
}
