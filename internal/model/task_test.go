package model

import (
	"testing"
	"time"
)

func TestFileName(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	tests := []struct {
		scenario string
		state    string
		expected string
	}{
		{"telegram-calls", "", "telegram-calls-1700000000123.png"},
		{"call-screen", "busy", "call-screen-busy-1700000000123.png"},
		{"call-screen", "incoming", "call-screen-incoming-1700000000123.png"},
	}

	for _, test := range tests {
		result := FileName(test.scenario, test.state, at)
		if result != test.expected {
			t.Errorf("FileName(%q, %q) = %q, expected %q", test.scenario, test.state, result, test.expected)
		}
	}
}

func TestExportTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		task     ExportTask
		expected string
	}{
		{ExportTask{Scenario: "telegram-calls"}, "telegram-calls"},
		{ExportTask{Scenario: "call-screen", State: "busy"}, "call-screen (busy)"},
		{ExportTask{Scenario: "call-screen", OutputPath: "/tmp/out/call-screen-busy-1.png"}, "call-screen-busy-1.png"},
	}

	for _, test := range tests {
		result := test.task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() = %q, expected %q", result, test.expected)
		}
	}
}

func TestExportTask_GetSizeString(t *testing.T) {
	task := &ExportTask{}
	if task.GetSizeString() != "—" {
		t.Errorf("Expected placeholder for unknown size, got %q", task.GetSizeString())
	}

	task.Width, task.Height = 750, 1624
	if task.GetSizeString() != "750x1624" {
		t.Errorf("Expected 750x1624, got %q", task.GetSizeString())
	}
}

func TestExportTask_Duration(t *testing.T) {
	start := time.Now()
	task := &ExportTask{StartedAt: start}
	if task.Duration() != 0 {
		t.Errorf("Expected zero duration for running task, got %v", task.Duration())
	}

	task.FinishedAt = start.Add(1500 * time.Millisecond)
	if task.Duration() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s, got %v", task.Duration())
	}
}
