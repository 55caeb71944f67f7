package api

import (
	"context"

	"cvmatch/pkg/models"
)

// History fetches past match results, newest first
func (c *Client) History(ctx context.Context) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := c.getJSON(ctx, "/api/matches/history/", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SupportedFormats fetches the service's upload policy
func (c *Client) SupportedFormats(ctx context.Context) (*models.FormatInfo, error) {
	var info models.FormatInfo
	if err := c.getJSON(ctx, "/api/supported-formats/", &info); err != nil {
		return nil, err
	}
	return &info, nil
}
