package namespace_test

import (
	"github.com/0glabs/zk-cli/node"
	"github.com/stretchr/testify/mock"
)

// MockClient implements node.Client for tests that need to inject failures.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Children(path string) ([]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockClient) Stat(path string) (*node.Stat, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*node.Stat), args.Error(1)
}

func (m *MockClient) Get(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockClient) Set(path string, data []byte) error {
	return m.Called(path, data).Error(0)
}

func (m *MockClient) Create(path string, data []byte, acl []node.ACL, mode node.CreateMode) (string, error) {
	args := m.Called(path, data, acl, mode)
	return args.String(0), args.Error(1)
}

func (m *MockClient) Delete(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockClient) Close() {
	m.Called()
}
