package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockQuietResult struct {
	Rows int `json:"rows"`
}

func (m mockQuietResult) QuietString() string {
	return fmt.Sprintf("%d", m.Rows)
}

type mockHumanResult struct {
	Name string
}

func (m mockHumanResult) PrintHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "human: %s\n", m.Name)
	return err
}

type mockPlainResult struct {
	Name  string
	Value int
}

// captureStream redirects os.Stdout or os.Stderr while fn runs
func captureStream(t *testing.T, stream **os.File, fn func()) string {
	t.Helper()

	old := *stream
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	*stream = w

	fn()

	_ = w.Close()
	*stream = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	output := captureStream(t, &os.Stdout, func() {
		formatter := &OutputFormatter{JSON: true}
		if err := formatter.Success(mockQuietResult{Rows: 42}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	if !result["success"].(bool) {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]interface{})
	if data["rows"] != float64(42) {
		t.Errorf("Expected data.rows to be 42, got %v", data["rows"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name     string
		json     bool
		data     interface{}
		expected string
	}{
		{name: "quieter", data: mockQuietResult{Rows: 7}, expected: "7\n"},
		{name: "quiet wins over json", json: true, data: mockQuietResult{Rows: 3}, expected: "3\n"},
		{name: "falls back to human form", data: mockHumanResult{Name: "x"}, expected: "human: x\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			output := captureStream(t, &os.Stdout, func() {
				formatter := &OutputFormatter{JSON: tt.json, Quiet: true}
				if err := formatter.Success(tt.data); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
			})
			if output != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, output)
			}
		})
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		contains string
	}{
		{name: "human printer", data: mockHumanResult{Name: "wine"}, contains: "human: wine"},
		{name: "plain struct", data: mockPlainResult{Name: "wine", Value: 5}, contains: "Name:wine"},
		{name: "nil data", data: nil, contains: "<nil>"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			output := captureStream(t, &os.Stdout, func() {
				formatter := &OutputFormatter{}
				if err := formatter.Success(tt.data); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
			})
			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got %q", tt.contains, output)
			}
		})
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{name: "standard error", code: "DATA_ERROR", message: "bad cell"},
		{name: "with suggestion", code: "NOT_FOUND", message: "missing file", suggestion: "pass --red"},
		{name: "special characters", code: "VALIDATION_ERROR", message: "value \"rose\"\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			output := captureStream(t, &os.Stdout, func() {
				formatter := &OutputFormatter{JSON: true}
				if err := formatter.ErrorWithSuggestion(tt.code, tt.message, tt.suggestion); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
			})

			var result map[string]interface{}
			if err := json.Unmarshal([]byte(output), &result); err != nil {
				t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
			}
			if result["success"].(bool) {
				t.Error("Expected success to be false")
			}

			errorData := result["error"].(map[string]interface{})
			if errorData["code"] != tt.code {
				t.Errorf("Expected error code '%s', got '%s'", tt.code, errorData["code"])
			}
			if errorData["message"] != tt.message {
				t.Errorf("Expected message '%s', got '%s'", tt.message, errorData["message"])
			}

			got, hasSuggestion := errorData["suggestion"]
			if tt.suggestion == "" && hasSuggestion {
				t.Error("Expected no suggestion field")
			}
			if tt.suggestion != "" && got != tt.suggestion {
				t.Errorf("Expected suggestion '%s', got '%v'", tt.suggestion, got)
			}
		})
	}
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	var stdout string
	stderr := captureStream(t, &os.Stderr, func() {
		stdout = captureStream(t, &os.Stdout, func() {
			formatter := &OutputFormatter{}
			if err := formatter.ErrorWithSuggestion("NOT_FOUND", "missing file", "pass --red"); err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	})

	if stdout != "" {
		t.Errorf("Expected nothing on stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "❌ Error: missing file") {
		t.Errorf("Expected error line on stderr, got %q", stderr)
	}
	if !strings.Contains(stderr, "💡 Suggestion: pass --red") {
		t.Errorf("Expected suggestion line on stderr, got %q", stderr)
	}
}

func TestOutputFormatter_ErrorCallsErrorWithSuggestion(t *testing.T) {
	stderr := captureStream(t, &os.Stderr, func() {
		formatter := &OutputFormatter{}
		_ = formatter.Error("DATA_ERROR", "bad cell")
	})

	if !strings.Contains(stderr, "bad cell") {
		t.Errorf("Expected message on stderr, got %q", stderr)
	}
	if strings.Contains(stderr, "Suggestion") {
		t.Errorf("Expected no suggestion, got %q", stderr)
	}
}
