package model

import "testing"

func TestExportStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   ExportStatus
		expected bool
	}{
		{ExportStatusPending, true},
		{ExportStatusRendering, true},
		{ExportStatusCompleted, false},
		{ExportStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("ExportStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestExportStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   ExportStatus
		expected bool
	}{
		{ExportStatusPending, false},
		{ExportStatusRendering, false},
		{ExportStatusCompleted, true},
		{ExportStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("ExportStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestExportStatus_String(t *testing.T) {
	if ExportStatusRendering.String() != "Rendering" {
		t.Errorf("ExportStatus.String() = %s, expected Rendering", ExportStatusRendering.String())
	}
}
