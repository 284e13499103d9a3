package model

import (
	"errors"
	"testing"
)

func TestResultState_IsFinished(t *testing.T) {
	tests := []struct {
		state    ResultState
		expected bool
	}{
		{ResultIdle, false},
		{ResultLoading, false},
		{ResultError, true},
		{ResultEmpty, true},
		{ResultReady, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("ResultState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestResultState_String(t *testing.T) {
	state := ResultLoading
	expected := "Loading"
	result := state.String()

	if result != expected {
		t.Errorf("ResultState.String() = %s, expected %s", result, expected)
	}
}

func TestDeriveResultState(t *testing.T) {
	failure := errors.New("API Error: 500")

	tests := []struct {
		name     string
		searched bool
		status   FetchStatus
		count    int
		expected ResultState
	}{
		{"nothing submitted", false, FetchStatus{}, 0, ResultIdle},
		{"loading wins over empty", true, FetchStatus{Loading: true}, 0, ResultLoading},
		{"loading wins over stale results", true, FetchStatus{Loading: true}, 3, ResultLoading},
		{"error wins over empty", true, FetchStatus{Err: failure}, 0, ResultError},
		{"error before first search", false, FetchStatus{Err: failure}, 0, ResultError},
		{"zero matches", true, FetchStatus{}, 0, ResultEmpty},
		{"matches", true, FetchStatus{}, 2, ResultReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveResultState(tt.searched, tt.status, tt.count)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
