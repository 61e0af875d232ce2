package api

import "github.com/ytget/callshot/internal/model"

// GenerateRequest is the body of POST /generate
type GenerateRequest struct {
	Prompt       string            `json:"prompt"`
	Style        string            `json:"style,omitempty"`
	Width        int               `json:"width,omitempty"`
	Height       int               `json:"height,omitempty"`
	Theme        string            `json:"theme,omitempty"`
	HeaderTitle  string            `json:"headerTitle,omitempty"`
	TimeDisplay  string            `json:"timeDisplay,omitempty"`
	BatteryLevel *int              `json:"batteryLevel,omitempty"`
	ShowSearch   *bool             `json:"showSearch,omitempty"`
	Calls        []model.CallEntry `json:"calls,omitempty"`
}

// GenerateResponse is the result of POST /generate
type GenerateResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url,omitempty"`
	Message  string `json:"message"`
}

// Style is a rendering style offered by the service
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// StylesResponse is the result of GET /styles
type StylesResponse struct {
	Styles []Style `json:"styles"`
}

// CallType describes a call direction as the service labels it
type CallType struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CallTypesResponse is the result of GET /call-types
type CallTypesResponse struct {
	CallTypes []CallType `json:"call_types"`
}

// HealthResponse is the result of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
