package git

import (
	"fmt"
	"strings"
)

// MockClient is a Client that records calls instead of spawning
// processes. Tests can fail selected operations by name.
type MockClient struct {
	Calls  []string
	FailOn map[string]error
}

// NewMockClient creates a mock gateway that succeeds on every call
func NewMockClient() *MockClient {
	return &MockClient{FailOn: make(map[string]error)}
}

func (m *MockClient) record(op string, args ...string) error {
	call := op
	if len(args) > 0 {
		call = fmt.Sprintf("%s %s", op, strings.Join(args, " "))
	}
	m.Calls = append(m.Calls, call)
	if err, ok := m.FailOn[op]; ok {
		return err
	}
	return nil
}

func (m *MockClient) Init() error                        { return m.record("init") }
func (m *MockClient) SetDefaultBranch(name string) error { return m.record("branch", name) }
func (m *MockClient) AddRemote(name, url string) error   { return m.record("remote", name, url) }
func (m *MockClient) StageAll() error                    { return m.record("stage") }
func (m *MockClient) Commit(message string) error        { return m.record("commit", message) }
func (m *MockClient) Push(remote, branch string) error   { return m.record("push", remote, branch) }
func (m *MockClient) Pull() error                        { return m.record("pull") }
