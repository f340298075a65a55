package models

import (
	"encoding/json"

	"github.com/ryo246912/ghnova/pkg/request"
)

// Output wraps the status and validators under "metadata".
type Output struct {
	Data     json.RawMessage  `json:"data"`
	Metadata request.Metadata `json:"metadata"`
}

// FlatOutput puts the status and validators next to the data.
type FlatOutput struct {
	Data         json.RawMessage `json:"data"`
	StatusCode   int             `json:"status_code"`
	ETag         *string         `json:"etag"`
	LastModified *string         `json:"last_modified"`
}

// NewOutput builds the metadata-wrapped form of resp.
func NewOutput(resp *request.Response) Output {
	return Output{Data: resp.Data, Metadata: resp.Metadata()}
}

// NewFlatOutput builds the flat form of resp.
func NewFlatOutput(resp *request.Response) FlatOutput {
	return FlatOutput{
		Data:         resp.Data,
		StatusCode:   resp.StatusCode,
		ETag:         resp.ETag,
		LastModified: resp.LastModified,
	}
}
