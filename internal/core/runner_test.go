package core

import (
	"errors"
	"fmt"
	"testing"
)

type fakeExitErr struct{ code int }

func (e fakeExitErr) Error() string { return "exit status" }
func (e fakeExitErr) ExitCode() int { return e.code }

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{"child exited 100", fakeExitErr{code: 100}, 100},
		{"child exited 2", fakeExitErr{code: 2}, 2},
		{"wrapped exit error", fmt.Errorf("install: %w", fakeExitErr{code: 7}), 7},
		{"signal death reports -1", fakeExitErr{code: -1}, 1},
		{"start failure has no status", errors.New("exec: not found"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
