package database

import "github.com/sisu-network/zeyes/types"

type MockDb struct {
	InitFunc                     func() error
	SaveOperationFunc            func(op *types.TrackedOperation) error
	UpdateOperationFunc          func(op *types.TrackedOperation) error
	LoadOperationFunc            func(kind, identifier string) (*types.TrackedOperation, error)
	LoadUnfinishedOperationsFunc func() ([]*types.TrackedOperation, error)
}

func (mock *MockDb) Init() error {
	if mock.InitFunc != nil {
		return mock.InitFunc()
	}

	return nil
}

func (mock *MockDb) SaveOperation(op *types.TrackedOperation) error {
	if mock.SaveOperationFunc != nil {
		return mock.SaveOperationFunc(op)
	}

	return nil
}

func (mock *MockDb) UpdateOperation(op *types.TrackedOperation) error {
	if mock.UpdateOperationFunc != nil {
		return mock.UpdateOperationFunc(op)
	}

	return nil
}

func (mock *MockDb) LoadOperation(kind, identifier string) (*types.TrackedOperation, error) {
	if mock.LoadOperationFunc != nil {
		return mock.LoadOperationFunc(kind, identifier)
	}

	return nil, nil
}

func (mock *MockDb) LoadUnfinishedOperations() ([]*types.TrackedOperation, error) {
	if mock.LoadUnfinishedOperationsFunc != nil {
		return mock.LoadUnfinishedOperationsFunc()
	}

	return nil, nil
}
