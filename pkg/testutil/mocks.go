package testutil

import (
	"context"
	"io"

	"github.com/EbonJaeger/soltools/pkg/runner"
	"github.com/stretchr/testify/mock"
)

// MockRunner is a mock implementation of runner.Runner.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, cmd runner.Command) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// Commands returns every command passed to Run, in call order.
func (m *MockRunner) Commands() []runner.Command {
	var cmds []runner.Command
	for _, call := range m.Calls {
		if call.Method == "Run" {
			cmds = append(cmds, call.Arguments.Get(1).(runner.Command))
		}
	}
	return cmds
}

// MockVCSClient is a mock implementation of vcs.Client.
type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) Clone(ctx context.Context, url, path string, progress io.Writer) error {
	args := m.Called(ctx, url, path, progress)
	return args.Error(0)
}

func (m *MockVCSClient) Init(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
